package services

import (
	"log"
	"sync"

	"business-directory-platform/internal/models"

	"github.com/google/uuid"
)

// CartBackend is the persistence slot behind a CartStore. Implementations
// load and save the whole cart in one operation, so concurrent writers are
// last-writer-wins at full-cart granularity and readers never observe a
// partially written item.
type CartBackend interface {
	// Load returns the persisted cart. An absent slot yields an empty
	// cart and a nil error; a non-nil error means storage is unavailable.
	Load() ([]models.CartItem, error)

	// Save replaces the persisted cart with the given items.
	Save(items []models.CartItem) error
}

// MemoryCartBackend is an in-memory cart backend used in tests and as the
// degraded fallback when durable storage is unavailable.
type MemoryCartBackend struct {
	mu    sync.Mutex
	items []models.CartItem
}

// NewMemoryCartBackend creates a new in-memory cart backend
func NewMemoryCartBackend() *MemoryCartBackend {
	return &MemoryCartBackend{}
}

// Load returns the stored cart items
func (b *MemoryCartBackend) Load() ([]models.CartItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := make([]models.CartItem, len(b.items))
	copy(items, b.items)
	return items, nil
}

// Save replaces the stored cart items
func (b *MemoryCartBackend) Save(items []models.CartItem) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = make([]models.CartItem, len(items))
	copy(b.items, items)
	return nil
}

// CartStore owns the session-scoped cart. It is the only component that
// mutates cart contents; every mutation persists the full cart first and
// then emits exactly one cart-changed notification, so observers that
// re-read on notification always see the new state.
//
// If the backend becomes unavailable the store degrades to an in-memory
// cart for the rest of the session instead of failing the page.
type CartStore struct {
	mu       sync.Mutex
	backend  CartBackend
	notifier *CartNotifier
	degraded bool
	fallback []models.CartItem
}

// NewCartStore creates a new cart store over the given backend. The notifier
// may be shared with any number of display surfaces; a nil notifier disables
// broadcasting.
func NewCartStore(backend CartBackend, notifier *CartNotifier) *CartStore {
	return &CartStore{
		backend:  backend,
		notifier: notifier,
	}
}

// Items returns the current cart line items in insertion order. It never
// fails; an absent, corrupt, or unavailable backend reads as an empty cart.
func (s *CartStore) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add appends the item to the end of the cart, persists, and notifies.
// An empty item ID is assigned a collision-resistant one. The store does
// not deduplicate; suppressing redundant adds for an item already in the
// cart is the calling surface's responsibility.
func (s *CartStore) Add(item models.CartItem) (models.CartItem, error) {
	if err := item.Validate(); err != nil {
		return models.CartItem{}, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	s.mu.Lock()
	items := append(s.load(), item)
	s.save(items)
	s.mu.Unlock()

	s.notify()
	return item, nil
}

// Remove deletes the line item with the given id, persists, and notifies.
// Removing an id not in the cart is a no-op, not an error, but still
// persists and notifies like any other mutation.
func (s *CartStore) Remove(id string) {
	s.mu.Lock()
	items := s.load()
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.save(kept)
	s.mu.Unlock()

	s.notify()
}

// Clear empties the cart, persists, and notifies
func (s *CartStore) Clear() {
	s.mu.Lock()
	s.save([]models.CartItem{})
	s.mu.Unlock()

	s.notify()
}

// Count returns the number of line items in the cart
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.load())
}

// Total returns the sum of line item prices. There is no quantity field,
// so the total is a plain sum.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.load() {
		total += item.Price
	}
	return total
}

// Contains reports whether the cart already holds the given report for the
// given company. Calling surfaces use this to suppress duplicate adds.
func (s *CartStore) Contains(companyID, itemName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.load() {
		if item.CompanyID == companyID && item.ItemName == itemName {
			return true
		}
	}
	return false
}

// Degraded reports whether the store has fallen back to non-persisted memory
func (s *CartStore) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// load reads the cart, re-reading the backend on every call so concurrent
// tabs sharing the same storage reconcile instead of serving a stale
// snapshot. Callers must hold s.mu.
func (s *CartStore) load() []models.CartItem {
	if s.degraded {
		items := make([]models.CartItem, len(s.fallback))
		copy(items, s.fallback)
		return items
	}

	items, err := s.backend.Load()
	if err != nil {
		log.Printf("Cart storage unavailable, degrading to in-memory cart: %v", err)
		s.degraded = true
		return []models.CartItem{}
	}
	return items
}

// save writes the full cart. A failed write degrades the store to memory
// for the rest of the session; mutations never surface storage errors to
// the caller. Callers must hold s.mu.
func (s *CartStore) save(items []models.CartItem) {
	if s.degraded {
		s.fallback = items
		return
	}

	if err := s.backend.Save(items); err != nil {
		log.Printf("Cart storage unavailable, degrading to in-memory cart: %v", err)
		s.degraded = true
		s.fallback = items
	}
}

func (s *CartStore) notify() {
	if s.notifier != nil {
		s.notifier.Notify()
	}
}
