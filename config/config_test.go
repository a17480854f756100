package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("AMOREMIO_SERVER_PORT")
		os.Unsetenv("AMOREMIO_SERVER_ENVIRONMENT")
		os.Unsetenv("AMOREMIO_CATALOG_BASE_URL")
		os.Unsetenv("AMOREMIO_CATALOG_PAGE_SIZE")
		os.Unsetenv("AMOREMIO_INTAKE_URL")
		os.Unsetenv("AMOREMIO_STORAGE_PATH")
		os.Unsetenv("AMOREMIO_PAYMENT_PAYPAL_HANDLE")
		os.Unsetenv("AMOREMIO_PAYMENT_WHATSAPP_NUMBER")
		os.Unsetenv("AMOREMIO_RATELIMIT_PER_IP")
		os.Unsetenv("AMOREMIO_RATELIMIT_CATALOG")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required catalog URL
		os.Setenv("AMOREMIO_CATALOG_BASE_URL", "https://script.example.com/exec")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Catalog.PageSize != 24 {
			t.Errorf("Catalog.PageSize = %d, want 24", cfg.Catalog.PageSize)
		}
		if cfg.Payment.PayPalHandle != "amoremioflorist" {
			t.Errorf("Payment.PayPalHandle = %s, want amoremioflorist", cfg.Payment.PayPalHandle)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Catalog != 60 {
			t.Errorf("RateLimit.Catalog = %d, want 60", cfg.RateLimit.Catalog)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("AMOREMIO_SERVER_PORT", "9090")
		os.Setenv("AMOREMIO_SERVER_ENVIRONMENT", "production")
		os.Setenv("AMOREMIO_CATALOG_BASE_URL", "https://custom.example.com/exec")
		os.Setenv("AMOREMIO_CATALOG_PAGE_SIZE", "12")
		os.Setenv("AMOREMIO_INTAKE_URL", "https://intake.example.com/exec")
		os.Setenv("AMOREMIO_STORAGE_PATH", "/tmp/amoremio-store")
		os.Setenv("AMOREMIO_RATELIMIT_PER_IP", "200")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Catalog.BaseURL != "https://custom.example.com/exec" {
			t.Errorf("Catalog.BaseURL = %s, want custom URL", cfg.Catalog.BaseURL)
		}
		if cfg.Catalog.PageSize != 12 {
			t.Errorf("Catalog.PageSize = %d, want 12", cfg.Catalog.PageSize)
		}
		if cfg.Intake.URL != "https://intake.example.com/exec" {
			t.Errorf("Intake.URL = %s, want intake URL", cfg.Intake.URL)
		}
		if cfg.Storage.Path != "/tmp/amoremio-store" {
			t.Errorf("Storage.Path = %s, want /tmp/amoremio-store", cfg.Storage.Path)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
	})

	t.Run("fails without catalog base URL", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing catalog URL")
		}
	})

	t.Run("fails on non-positive page size", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("AMOREMIO_CATALOG_BASE_URL", "https://script.example.com/exec")
		os.Setenv("AMOREMIO_CATALOG_PAGE_SIZE", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for zero page size")
		}
	})
}
