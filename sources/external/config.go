package external

import (
	"declension/sources/configuration"
	"declension/sources/platform"
)

type OutsidersConfig struct {
	ApiPort                int
	StartupPort            int
	SystemMetricsPort      int
	ApplicationMetricsPort int
}

// NewOutsidersConfig takes ports from the config file, OUTSIDERS_* variables win.
func NewOutsidersConfig(config *configuration.Config) *OutsidersConfig {
	return &OutsidersConfig{
		ApiPort:                platform.GetAsInt("OUTSIDERS_API_PORT", config.Service.ApiPort),
		StartupPort:            platform.GetAsInt("OUTSIDERS_STARTUP_PORT", config.Service.StartupPort),
		SystemMetricsPort:      platform.GetAsInt("OUTSIDERS_SYSTEM_METRICS_PORT", config.Service.SystemMetricsPort),
		ApplicationMetricsPort: platform.GetAsInt("OUTSIDERS_APPLICATION_METRICS_PORT", config.Service.ApplicationMetricsPort),
	}
}
