package configuration

import (
	"declension/sources/platform"
	"declension/sources/tracing"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var envPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::([^}]*))?\}`)

// NewYaml reads the configuration from CONFIG_PATH (default: config.yaml) over
// the Default values. A missing file leaves the defaults untouched.
func NewYaml(log *tracing.Logger) (*Config, error) {
	defer tracing.ProfilePoint(log, "Configuration loaded", "configuration.load")()

	return Load(log, platform.Get("CONFIG_PATH", "config.yaml"))
}

func Load(log *tracing.Logger, filePath string) (*Config, error) {
	config := Default()

	log.I("reading configuration", "path", filePath)

	content, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		log.W("configuration file not found, using defaults", "path", filePath)
		return config, nil
	}
	if err != nil {
		log.E("failed to read configuration file", tracing.InnerError, err, "path", filePath)
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	if err := yaml.Unmarshal([]byte(expandEnv(string(content))), config); err != nil {
		log.E("failed to parse configuration file", tracing.InnerError, err, "path", filePath)
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	return config, nil
}

// expandEnv replaces ${VAR} or ${VAR:default} with environment values.
// An unset ${VAR} without a default becomes an empty string.
func expandEnv(content string) string {
	return envPattern.ReplaceAllStringFunc(content, func(match string) string {
		matches := envPattern.FindStringSubmatch(match)
		if value, exists := os.LookupEnv(matches[1]); exists {
			return value
		}
		return matches[2]
	})
}
