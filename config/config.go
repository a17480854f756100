package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Intake    IntakeConfig
	Storage   StorageConfig
	Payment   PaymentConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds the product-list endpoint configuration
type CatalogConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	PageSize int    `mapstructure:"page_size"`
}

// IntakeConfig holds the order-intake endpoint configuration
type IntakeConfig struct {
	URL string `mapstructure:"url"`
}

// StorageConfig holds the local key-value store configuration.
// An empty path selects the in-memory store.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// PaymentConfig holds the outbound hand-off link configuration
type PaymentConfig struct {
	PayPalHandle   string `mapstructure:"paypal_handle"`
	WhatsAppNumber string `mapstructure:"whatsapp_number"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP   int `mapstructure:"per_ip"`
	Catalog int `mapstructure:"catalog"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/amoremio/")

	// Environment variable settings
	v.SetEnvPrefix("AMOREMIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Catalog defaults. The base URL has no sensible default; an empty
	// default keeps the key visible to Unmarshal for env-only setups.
	v.SetDefault("catalog.base_url", "")
	v.SetDefault("catalog.page_size", 24)
	v.SetDefault("intake.url", "")

	// Storage defaults: empty path keeps everything in memory
	v.SetDefault("storage.path", "")

	// Payment defaults
	v.SetDefault("payment.paypal_handle", "amoremioflorist")
	v.SetDefault("payment.whatsapp_number", "593986681447")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.catalog", 60)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required (set AMOREMIO_CATALOG_BASE_URL)")
	}

	if config.Catalog.PageSize <= 0 {
		return fmt.Errorf("catalog page size must be positive, got: %d", config.Catalog.PageSize)
	}

	return nil
}
