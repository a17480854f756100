package main

import (
	"fmt"
	"log"
	"os"

	"github.com/amoremio/backend/config"
	httpDelivery "github.com/amoremio/backend/internal/delivery/http"
	"github.com/amoremio/backend/internal/domain"
	"github.com/amoremio/backend/internal/infrastructure/sheets"
	"github.com/amoremio/backend/internal/infrastructure/storage"
	"github.com/amoremio/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Amore Mio Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog source: %s", cfg.Catalog.BaseURL)

	// Initialize infrastructure dependencies. Storage first: both the
	// cart and the catalog cache live in the same key-value store.
	var store domain.KeyValueStore
	if cfg.Storage.Path != "" {
		localStore, err := storage.NewLocalStore(cfg.Storage.Path)
		if err != nil {
			log.Fatalf("Failed to open local storage at %s: %v", cfg.Storage.Path, err)
		}
		store = localStore
		log.Printf("Storage: local files at %s", cfg.Storage.Path)
	} else {
		store = storage.NewMemoryStore()
		log.Printf("Storage: in-memory (cart resets on restart)")
	}

	sheetClient := sheets.NewClient(cfg.Catalog.BaseURL, cfg.Intake.URL, cfg.RateLimit.Catalog)

	if cfg.Intake.URL == "" {
		log.Printf("WARNING: order intake URL not configured - orders will not be recorded")
	}

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(sheetClient, store)
	cartService := usecase.NewCartService(store)
	checkoutService := usecase.NewCheckoutService(
		cartService,
		sheetClient,
		cfg.Payment.PayPalHandle,
		cfg.Payment.WhatsAppNumber,
	)

	log.Printf("Catalog: page size %d, upstream limit %d req/min",
		cfg.Catalog.PageSize, cfg.RateLimit.Catalog)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, cartService, checkoutService, cfg.Catalog.PageSize)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
