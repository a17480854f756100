package usecase

import (
	"context"
	"encoding/json"
	"log"

	"github.com/amoremio/backend/internal/domain"
	"github.com/amoremio/backend/internal/infrastructure/sheets"
)

// catalogCacheKey is the fixed storage key for the last successful
// catalog fetch.
const catalogCacheKey = "catalog"

// CatalogService loads the product catalog from the remote sheet,
// classifies it, and keeps the last good copy in the key-value store so
// detail lookups do not need a network round trip.
type CatalogService struct {
	client domain.CatalogClient
	store  domain.KeyValueStore
}

// NewCatalogService creates a catalog service with dependencies
func NewCatalogService(client domain.CatalogClient, store domain.KeyValueStore) *CatalogService {
	return &CatalogService{
		client: client,
		store:  store,
	}
}

// LoadCatalog fetches the product list, classifies every product, and
// refreshes the cache. Any failure yields an empty catalog plus the
// underlying error for logging; callers always receive something they
// can render.
func (s *CatalogService) LoadCatalog(ctx context.Context) ([]domain.Product, error) {
	records, err := s.client.FetchProducts(ctx)
	if err != nil {
		log.Printf("[CATALOG] load failed: %v", err)
		return []domain.Product{}, err
	}

	products := sheets.MapProducts(records)
	for i := range products {
		products[i].Category = Classify(products[i].Identity)
	}

	s.writeCache(products)
	return products, nil
}

// CachedCatalog returns the last cached product list. Absent or corrupt
// cache content is a cache miss, never an error.
func (s *CatalogService) CachedCatalog() []domain.Product {
	data, err := s.store.Get(catalogCacheKey)
	if err != nil {
		return nil
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Printf("[CATALOG] discarding corrupt cache: %v", err)
		return nil
	}
	return products
}

// GetProduct resolves a single product by raw identity, preferring the
// cache and falling back to a live fetch. The found product is enriched
// with narrative fields. Returns ErrProductNotFound after both sources
// miss.
func (s *CatalogService) GetProduct(ctx context.Context, rawID string) (*domain.Product, error) {
	identity := domain.NormalizeIdentity(rawID)
	if identity == "" {
		return nil, domain.ErrProductNotFound
	}

	if product := findByIdentity(s.CachedCatalog(), identity); product != nil {
		enriched := Enrich(*product)
		return &enriched, nil
	}

	products, err := s.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	product := findByIdentity(products, identity)
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	enriched := Enrich(*product)
	return &enriched, nil
}

// writeCache persists the catalog best-effort. Serialization or storage
// failures are logged and swallowed; a stale or missing cache only costs
// a refetch.
func (s *CatalogService) writeCache(products []domain.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		log.Printf("[CATALOG] cache encode failed: %v", err)
		return
	}
	if err := s.store.Set(catalogCacheKey, data); err != nil {
		log.Printf("[CATALOG] cache write failed: %v", err)
	}
}

func findByIdentity(products []domain.Product, identity string) *domain.Product {
	for i := range products {
		if products[i].Identity == identity {
			return &products[i]
		}
	}
	return nil
}
