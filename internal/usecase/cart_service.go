package usecase

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/amoremio/backend/internal/domain"
)

// cartStorageKey is the fixed storage key for the cart line items.
const cartStorageKey = "cart"

// CartService manages the ordered list of cart line items persisted in
// the key-value store. All operations tolerate corrupt or missing storage
// by treating it as an empty cart. Mutations notify subscribers so open
// views and the navigation badge stay current without polling.
type CartService struct {
	store domain.KeyValueStore

	mu          sync.Mutex
	subscribers []func(items []domain.CartItem)
}

// NewCartService creates a cart service backed by the given store.
func NewCartService(store domain.KeyValueStore) *CartService {
	return &CartService{store: store}
}

// Subscribe registers a callback invoked after every cart mutation with
// the new line-item list.
func (s *CartService) Subscribe(fn func(items []domain.CartItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Items returns the current cart lines in insertion order. Corrupt stored
// JSON reads as an empty cart, never an error.
func (s *CartService) Items() []domain.CartItem {
	data, err := s.store.Get(cartStorageKey)
	if err != nil {
		return []domain.CartItem{}
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("[CART] discarding corrupt cart: %v", err)
		return []domain.CartItem{}
	}

	// Lines persisted without a quantity count as one.
	for i := range items {
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
	}
	return items
}

// Add appends a new line for the product, with the line's preset
// quantity when it carries one and quantity one otherwise. Adding the
// same product twice creates two lines; the cart never merges by
// identity.
func (s *CartService) Add(line domain.CartItem) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	items := s.Items()
	items = append(items, line)
	s.save(items)
}

// SetQuantity updates the quantity of the line at index. A quantity of
// zero or less removes the line. An out-of-range index is a no-op.
func (s *CartService) SetQuantity(index, quantity int) {
	if quantity <= 0 {
		s.Remove(index)
		return
	}

	items := s.Items()
	if index < 0 || index >= len(items) {
		return
	}
	items[index].Quantity = quantity
	s.save(items)
}

// Remove deletes the line at index. An out-of-range index is a no-op.
func (s *CartService) Remove(index int) {
	items := s.Items()
	if index < 0 || index >= len(items) {
		return
	}
	items = append(items[:index], items[index+1:]...)
	s.save(items)
}

// Total sums price * quantity over all lines. Missing prices were already
// coerced to zero at the boundary, so they contribute nothing.
func (s *CartService) Total() float64 {
	var total float64
	for _, item := range s.Items() {
		total += item.Subtotal()
	}
	return total
}

// Count returns the sum of line quantities. The badge and every "items in
// cart" display use this same number.
func (s *CartService) Count() int {
	var count int
	for _, item := range s.Items() {
		count += item.Quantity
	}
	return count
}

// save persists the cart and notifies subscribers. A storage failure is
// logged but does not panic a rendering path.
func (s *CartService) save(items []domain.CartItem) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("[CART] encode failed: %v", err)
		return
	}
	if err := s.store.Set(cartStorageKey, data); err != nil {
		log.Printf("[CART] save failed: %v", err)
		return
	}

	s.mu.Lock()
	subscribers := make([]func([]domain.CartItem), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(items)
	}
}
