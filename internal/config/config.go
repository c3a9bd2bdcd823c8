package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "WW2SITE_"

// envKeys maps flattened environment names to their nested config keys.
// Keys not listed here are used as-is after lowercasing.
var envKeys = map[string]string{
	"server_port":              "server.port",
	"server_allow_all_origins": "server.allow_all_origins",
	"log_level":                "log.level",
	"log_format":               "log.format",
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (WW2SITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// WW2SITE_SERVER_PORT -> server.port, WW2SITE_OUTPUT_DIR -> output_dir.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if nested, ok := envKeys[key]; ok {
		return nested
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[LogFormat]bool{
	LogFormatText: true,
	LogFormatJSON: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 0-65535", c.Server.Port)
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
