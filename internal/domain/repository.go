package domain

import "context"

// CatalogClient defines the interface for fetching the product list from
// the spreadsheet-backed endpoint.
type CatalogClient interface {
	FetchProducts(ctx context.Context) ([]ProductRecord, error)
}

// OrderIntake defines the interface for delivering an order payload to
// the intake endpoint. Delivery is best-effort: callers are allowed to
// log the error and proceed.
type OrderIntake interface {
	SubmitOrder(ctx context.Context, order Order) error
}

// KeyValueStore is the flat JSON blob store backing the cart and the
// catalog cache. Reads of absent keys return ErrKeyNotFound; consumers
// are responsible for tolerating corrupt blobs.
type KeyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
