package throttler

import (
	"context"
	"declension/sources/features"
	"declension/sources/platform"
	"declension/sources/tracing"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Throttler struct {
	client   *redis.Client
	config   *ThrottlerConfig
	features *features.FeatureManager
	log      *tracing.Logger
	ctx      context.Context
}

func NewThrottler(client *redis.Client, config *ThrottlerConfig, features *features.FeatureManager, log *tracing.Logger) *Throttler {
	ctx := context.Background()
	return &Throttler{client: client, config: config, features: features, log: log, ctx: ctx}
}

// IsAllowed admits one request per client within the configured window.
// Redis failures let the request through.
func (x *Throttler) IsAllowed(client string) bool {
	if x.client == nil || x.config.Limit <= 0 {
		return true
	}

	if !x.features.IsEnabledOrDefault(features.FeatureApiThrottling, true) {
		x.log.D("Throttling disabled by feature flag")
		return true
	}

	ctx, cancel := platform.ContextTimeout(x.ctx)
	defer cancel()

	key := fmt.Sprintf("throttle:%s", client)

	success, err := x.client.SetNX(ctx, key, time.Now().Unix(), x.config.Limit).Result()
	if err != nil {
		x.log.E("Error setting throttle key", tracing.ThrottleKey, key, tracing.InnerError, err)
		return true
	}

	return success
}
