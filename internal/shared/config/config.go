package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/promodesk/social-publisher/internal/modules/publish/domain"
	"github.com/promodesk/social-publisher/internal/shared/retry"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	HTTPPort    string        `koanf:"http_port"`
	StoragePath string        `koanf:"storage_path"`
	AppEnv      domain.AppEnv `koanf:"app_env"`

	// Platform API roots, overridable for local stubs and tests.
	// Empty values select each client's production default.
	TelegramAPIURL string `koanf:"telegram_api_url"`
	VKAPIURL       string `koanf:"vk_api_url"`
	GraphAPIURL    string `koanf:"graph_api_url"`

	RetryMaxAttempts int `koanf:"retry_max_attempts"`
	RetryBaseDelayMS int `koanf:"retry_base_delay_ms"`
	RetryMaxDelayMS  int `koanf:"retry_max_delay_ms"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	// Use lo.Find to find the first existing config file
	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("storage_path") {
		k.Set("storage_path", "./data")
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}
	if !k.Exists("retry_max_attempts") {
		k.Set("retry_max_attempts", 3)
	}
	if !k.Exists("retry_base_delay_ms") {
		k.Set("retry_base_delay_ms", 1000)
	}
	if !k.Exists("retry_max_delay_ms") {
		k.Set("retry_max_delay_ms", 10000)
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// Parse AppEnv from string if needed
	if appEnvStr := k.String("app_env"); appEnvStr != "" {
		if env, err := domain.ParseAppEnv(appEnvStr); err == nil {
			cfg.AppEnv = env
		} else {
			cfg.AppEnv = domain.AppEnvProduction
		}
	} else {
		cfg.AppEnv = domain.AppEnvProduction
	}

	return &cfg, nil
}

// RetryPolicy converts the configured retry knobs into a retry.Policy
func (c *Config) RetryPolicy() retry.Policy {
	policy := retry.Default()
	if c.RetryMaxAttempts > 0 {
		policy.MaxAttempts = c.RetryMaxAttempts
	}
	if c.RetryBaseDelayMS > 0 {
		policy.BaseDelay = time.Duration(c.RetryBaseDelayMS) * time.Millisecond
	}
	if c.RetryMaxDelayMS > 0 {
		policy.MaxDelay = time.Duration(c.RetryMaxDelayMS) * time.Millisecond
	}
	return policy
}
