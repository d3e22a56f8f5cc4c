package handlers

import (
	"net/http"

	"business-directory-platform/internal/models"
	"business-directory-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// CartHandler handles the shopping cart page and the header cart badge
type CartHandler struct {
	store    sessions.Store
	notifier *services.CartNotifier
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store sessions.Store, notifier *services.CartNotifier) *CartHandler {
	return &CartHandler{
		store:    store,
		notifier: notifier,
	}
}

// cartStore builds the session-backed cart store for this request
func (h *CartHandler) cartStore(w http.ResponseWriter, r *http.Request) *services.CartStore {
	return services.NewCartStore(services.NewSessionCartBackend(h.store, w, r), h.notifier)
}

// ViewCart handles GET /api/cart
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cartStore(w, r)
	items := cart.Items()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":   items,
		"count":   len(items),
		"summary": models.NewCartSummary(cart.Total()),
	})
}

// CartCount handles GET /api/cart/count, the header badge endpoint
func (h *CartHandler) CartCount(w http.ResponseWriter, r *http.Request) {
	cart := h.cartStore(w, r)

	respondJSON(w, http.StatusOK, map[string]int{
		"count": cart.Count(),
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}. Removing an item that is
// no longer in the cart succeeds quietly; the response reflects current
// contents either way.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cart := h.cartStore(w, r)
	cart.Remove(id)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   cart.Count(),
		"summary": models.NewCartSummary(cart.Total()),
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cartStore(w, r)
	cart.Clear()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   0,
		"summary": models.NewCartSummary(0),
	})
}
