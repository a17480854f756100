package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned when no product matches an identity,
	// after both the cache and a live fetch have been consulted.
	ErrProductNotFound = errors.New("product not found")

	// ErrCatalogUnavailable is returned when the catalog endpoint cannot
	// be reached or returns an unusable response.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrCartEmpty is returned when checkout is attempted on an empty cart.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrKeyNotFound is returned by the key-value store for absent keys.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidRequest is returned when request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request parameters")
)

// ValidationError reports the first checkout form field that failed
// validation. Checkout fails closed: nothing is submitted until the user
// corrects the field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field missing or invalid: %s", e.Field)
}
