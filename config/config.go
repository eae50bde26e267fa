package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// SIGNALWIRE_SAFETY_ALLOW_SMS for safety.allow_sms.
const EnvPrefix = "SIGNALWIRE"

// credential keys read the short variable names used by SignalWire tooling
var credentialEnv = map[string]string{
	"signalwire.space_name": "SIGNALWIRE_SPACE_NAME",
	"signalwire.project_id": "SIGNALWIRE_PROJECT_ID",
	"signalwire.api_key":    "SIGNALWIRE_API_KEY",
	"signalwire.timeout":    "SIGNALWIRE_TIMEOUT",
	"signalwire.base_url":   "SIGNALWIRE_BASE_URL",
}

// Load loads the configuration from a .env file, an optional config file and
// the environment, in increasing order of precedence. An explicit configPath
// must exist; otherwise a missing file is not an error.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range credentialEnv {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".swire"))
		}
		v.AddConfigPath("/etc/swire/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key is registered so
// that AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	// SignalWire defaults
	v.SetDefault("signalwire.space_name", "")
	v.SetDefault("signalwire.project_id", "")
	v.SetDefault("signalwire.api_key", "")
	v.SetDefault("signalwire.timeout", 30*time.Second)
	v.SetDefault("signalwire.base_url", "")

	// Safety defaults
	v.SetDefault("safety.dry_run", false)
	v.SetDefault("safety.allow_purchase", false)
	v.SetDefault("safety.allow_sms", false)
	v.SetDefault("safety.allow_delete", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	// SMS defaults
	v.SetDefault("sms.sid_file", ".signalwire_sms_sid")
	v.SetDefault("sms.default_from", "")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.SignalWire.SpaceName == "" {
		return fmt.Errorf("signalwire.space_name is required")
	}
	if cfg.SignalWire.ProjectID == "" {
		return fmt.Errorf("signalwire.project_id is required")
	}
	if cfg.SignalWire.APIKey == "" || cfg.SignalWire.APIKey == "your-api-key-here" {
		return fmt.Errorf("signalwire.api_key must be set to a valid API key")
	}
	if cfg.SignalWire.Timeout < 0 {
		return fmt.Errorf("signalwire.timeout must not be negative: %s", cfg.SignalWire.Timeout)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	for name, expression := range cfg.Filter {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter preset %q is empty", name)
		}
	}

	return nil
}
