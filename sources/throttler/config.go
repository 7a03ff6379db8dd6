package throttler

import (
	"declension/sources/configuration"
	"declension/sources/platform"
	"time"
)

type ThrottlerConfig struct {
	Limit time.Duration
}

// NewThrottlerConfig lets REQUEST_THROTTLE_LIMIT override the file setting.
func NewThrottlerConfig(config *configuration.Config) *ThrottlerConfig {
	return &ThrottlerConfig{Limit: platform.GetAsDuration("REQUEST_THROTTLE_LIMIT", config.Throttler.Limit.String())}
}
