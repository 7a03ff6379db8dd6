package features

import (
	"declension/sources/configuration"
	"declension/sources/platform"
	"time"
)

type FeatureConfig struct {
	Enabled           bool
	UnleashAPIURL     string
	UnleashInstanceID string
	UnleashAppName    string
	RefreshInterval   time.Duration
}

func NewFeatureConfig(config *configuration.Config) *FeatureConfig {
	return &FeatureConfig{
		Enabled:           config.Features.Enabled,
		UnleashAPIURL:     platform.Get("UNLEASH_API_URL", config.Features.UnleashAPIURL),
		UnleashInstanceID: platform.Get("UNLEASH_INSTANCE_ID", config.Features.UnleashInstanceID),
		UnleashAppName:    "declension",
		RefreshInterval:   config.Features.RefreshInterval,
	}
}
