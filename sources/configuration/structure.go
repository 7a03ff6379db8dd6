package configuration

import (
	"time"
)

type Config struct {
	Service    ServiceConfig    `yaml:"service"`
	Redis      RedisConfig      `yaml:"redis"`
	Throttler  ThrottlerConfig  `yaml:"throttler"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Features   FeaturesConfig   `yaml:"features"`
}

type ServiceConfig struct {
	ApiPort                int `yaml:"api_port"`
	StartupPort            int `yaml:"startup_port"`
	SystemMetricsPort      int `yaml:"system_metrics_port"`
	ApplicationMetricsPort int `yaml:"application_metrics_port"`
}

type RedisConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	MaxRetries  int           `yaml:"max_retries"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

type ThrottlerConfig struct {
	Limit time.Duration `yaml:"limit"`
}

type DictionaryConfig struct {
	// Path points to an extra TOML word list merged over the embedded one.
	Path string `yaml:"path"`
}

type FeaturesConfig struct {
	Enabled           bool          `yaml:"enabled"`
	UnleashAPIURL     string        `yaml:"unleash_api_url"`
	UnleashInstanceID string        `yaml:"unleash_instance_id"`
	RefreshInterval   time.Duration `yaml:"refresh_interval"`
}

// Default is used when no configuration file exists.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			ApiPort:                10000,
			StartupPort:            10001,
			SystemMetricsPort:      10002,
			ApplicationMetricsPort: 10003,
		},
		Redis: RedisConfig{
			Host:        "redis",
			Port:        6379,
			MaxRetries:  5,
			DialTimeout: 5 * time.Second,
		},
		Throttler: ThrottlerConfig{
			Limit: time.Second,
		},
		Features: FeaturesConfig{
			UnleashInstanceID: "declension",
			RefreshInterval:   15 * time.Second,
		},
	}
}
