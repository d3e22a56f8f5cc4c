package services

import (
	"encoding/json"
	"fmt"
	"net/http"

	"business-directory-platform/internal/models"

	"github.com/gorilla/sessions"
)

// cartSessionKey is the single named slot holding the serialized cart
const cartSessionKey = "mena-cart"

// SessionCartBackend persists the cart as JSON inside the visitor's cookie
// session, scoping it to one browser profile for the lifetime of the session.
// It is bound to one request/response pair; handlers construct one per request.
type SessionCartBackend struct {
	store sessions.Store
	w     http.ResponseWriter
	r     *http.Request
}

// NewSessionCartBackend creates a cart backend bound to the given request
func NewSessionCartBackend(store sessions.Store, w http.ResponseWriter, r *http.Request) *SessionCartBackend {
	return &SessionCartBackend{
		store: store,
		w:     w,
		r:     r,
	}
}

// Load reads the cart from the session slot. An absent slot or one that
// fails to parse reads as an empty cart, never an error.
func (b *SessionCartBackend) Load() ([]models.CartItem, error) {
	session, err := b.store.Get(b.r, "session")
	if err != nil {
		// A session that cannot be decoded starts over empty
		return nil, nil
	}

	raw, ok := session.Values[cartSessionKey].(string)
	if !ok || raw == "" {
		return nil, nil
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, nil
	}
	return items, nil
}

// Save serializes the full cart into the session slot in one write
func (b *SessionCartBackend) Save(items []models.CartItem) error {
	session, err := b.store.Get(b.r, "session")
	if err != nil {
		session, err = b.store.New(b.r, "session")
		if err != nil {
			return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
		}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	session.Values[cartSessionKey] = string(data)
	if err := session.Save(b.r, b.w); err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return nil
}
