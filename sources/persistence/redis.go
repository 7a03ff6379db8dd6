package persistence

import (
	"declension/sources/configuration"
	"declension/sources/tracing"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// NewRedis returns nil when redis is disabled, the throttler treats that as "always allow".
func NewRedis(config *configuration.Config, log *tracing.Logger) *redis.Client {
	if !config.Redis.Enabled {
		log.I("Redis disabled, throttling is off")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:                  config.Redis.Host + ":" + strconv.Itoa(config.Redis.Port),
		Password:              config.Redis.Password,
		DB:                    config.Redis.DB,
		MaxRetries:            config.Redis.MaxRetries,
		DialTimeout:           config.Redis.DialTimeout,
		ContextTimeoutEnabled: true,
	})

	log.I("Redis client initialized successfully", "addr", rdb.Options().Addr)
	return rdb
}
