package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	SignalWire SignalWireConfig `mapstructure:"signalwire"`
	Safety     SafetyConfig     `mapstructure:"safety"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Filter     FilterConfig     `mapstructure:"filter"`
	SMS        SMSConfig        `mapstructure:"sms"`
}

// SignalWireConfig holds the space and project credentials
type SignalWireConfig struct {
	SpaceName string        `mapstructure:"space_name"`
	ProjectID string        `mapstructure:"project_id"`
	APIKey    string        `mapstructure:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
	// BaseURL overrides https://{space_name}.signalwire.com
	BaseURL string `mapstructure:"base_url"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// SafetyConfig gates the commands that cost money or destroy data
type SafetyConfig struct {
	DryRun        bool `mapstructure:"dry_run"`
	AllowPurchase bool `mapstructure:"allow_purchase"`
	AllowSMS      bool `mapstructure:"allow_sms"`
	AllowDelete   bool `mapstructure:"allow_delete"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// SMSConfig holds defaults for the sms commands
type SMSConfig struct {
	SIDFile     string `mapstructure:"sid_file"`
	DefaultFrom string `mapstructure:"default_from"`
}
