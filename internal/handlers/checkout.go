package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"business-directory-platform/internal/models"
	"business-directory-platform/internal/services"

	"github.com/gorilla/sessions"
)

// CheckoutHandler handles the guest checkout flow: email collection, code
// verification, and the payment handoff
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	store           sessions.Store
	notifier        *services.CartNotifier
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *services.CheckoutService, store sessions.Store, notifier *services.CartNotifier) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		store:           store,
		notifier:        notifier,
	}
}

// cartStore builds the session-backed cart store for this request
func (h *CheckoutHandler) cartStore(w http.ResponseWriter, r *http.Request) *services.CartStore {
	return services.NewCartStore(services.NewSessionCartBackend(h.store, w, r), h.notifier)
}

// sessionState is the checkout state echoed back to the page
type sessionState struct {
	Stage        models.CheckoutStage `json:"stage"`
	Email        string               `json:"email,omitempty"`
	AttemptError string               `json:"attempt_error,omitempty"`
	TotalAmount  float64              `json:"total_amount"`
}

func stateOf(sess *models.VerificationSession) sessionState {
	return sessionState{
		Stage:        sess.Stage,
		Email:        sess.Email,
		AttemptError: sess.AttemptError,
		TotalAmount:  sess.TotalAmount,
	}
}

// StartCheckout handles POST /api/checkout. It opens a fresh verification
// session for the current cart total (including tax).
func (h *CheckoutHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	cart := h.cartStore(w, r)
	if cart.Count() == 0 {
		respondError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	summary := models.NewCartSummary(cart.Total())
	sess := h.checkoutService.BeginCheckout(summary.Total)

	if err := h.checkoutService.SaveSessionTo(w, r, sess); err != nil {
		log.Printf("Failed to save checkout session: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to start checkout")
		return
	}

	respondJSON(w, http.StatusCreated, stateOf(sess))
}

// submitEmailRequest is the body of an email submission
type submitEmailRequest struct {
	Email string `json:"email"`
}

// SubmitEmail handles POST /api/checkout/email
func (h *CheckoutHandler) SubmitEmail(w http.ResponseWriter, r *http.Request) {
	sess, err := h.checkoutService.SessionFrom(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "No active checkout session")
		return
	}

	var req submitEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.checkoutService.SubmitEmail(r.Context(), sess, req.Email)
	h.persistSession(w, r, sess)
	if err != nil {
		h.respondFlowError(w, r, sess, err)
		return
	}

	respondJSON(w, http.StatusOK, stateOf(sess))
}

// submitCodeRequest is the body of a code submission
type submitCodeRequest struct {
	Code string `json:"code"`
}

// SubmitCode handles POST /api/checkout/code
func (h *CheckoutHandler) SubmitCode(w http.ResponseWriter, r *http.Request) {
	sess, err := h.checkoutService.SessionFrom(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "No active checkout session")
		return
	}

	var req submitCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.checkoutService.SubmitCode(sess, req.Code)
	h.persistSession(w, r, sess)
	if err != nil {
		h.respondFlowError(w, r, sess, err)
		return
	}

	respondJSON(w, http.StatusOK, stateOf(sess))
}

// ResendCode handles POST /api/checkout/resend
func (h *CheckoutHandler) ResendCode(w http.ResponseWriter, r *http.Request) {
	sess, err := h.checkoutService.SessionFrom(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "No active checkout session")
		return
	}

	err = h.checkoutService.ResendCode(r.Context(), sess)
	h.persistSession(w, r, sess)
	if err != nil {
		h.respondFlowError(w, r, sess, err)
		return
	}

	respondJSON(w, http.StatusOK, stateOf(sess))
}

// Back handles POST /api/checkout/back, returning to email entry
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	sess, err := h.checkoutService.SessionFrom(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "No active checkout session")
		return
	}

	if err := h.checkoutService.Back(sess); err != nil {
		h.respondFlowError(w, r, sess, err)
		return
	}
	h.persistSession(w, r, sess)

	respondJSON(w, http.StatusOK, stateOf(sess))
}

// CancelCheckout handles DELETE /api/checkout. Closing the flow discards the
// verification session; a new attempt starts from scratch.
func (h *CheckoutHandler) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	if err := h.checkoutService.ClearSessionFrom(w, r); err != nil {
		log.Printf("Failed to clear checkout session: %v", err)
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ConfirmPayment handles POST /api/checkout/confirm. On the visitor's
// acknowledgment of the confirmation screen, the verified email and order
// total are handed to the payment gateway exactly once.
func (h *CheckoutHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	sess, err := h.checkoutService.SessionFrom(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "No active checkout session")
		return
	}

	redirect, err := h.checkoutService.ConfirmPayment(r.Context(), sess)
	if err != nil {
		if errors.Is(err, models.ErrInvalidStage) {
			respondError(w, http.StatusConflict, "Checkout is not ready for payment")
			return
		}
		log.Printf("Payment handoff failed: %v", err)
		respondError(w, http.StatusBadGateway, "Failed to initiate payment")
		return
	}
	h.persistSession(w, r, sess)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"redirect": redirect,
	})
}

// persistSession writes the session back, keeping attempt errors visible
// across requests. Persistence failures are logged, not surfaced; the flow
// state still rides in the response.
func (h *CheckoutHandler) persistSession(w http.ResponseWriter, r *http.Request, sess *models.VerificationSession) {
	if err := h.checkoutService.SaveSessionTo(w, r, sess); err != nil {
		log.Printf("Failed to save checkout session: %v", err)
	}
}

// respondFlowError maps controller errors to HTTP responses
func (h *CheckoutHandler) respondFlowError(w http.ResponseWriter, r *http.Request, sess *models.VerificationSession, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidEmailFormat), errors.Is(err, models.ErrInvalidOrExpiredCode):
		respondJSON(w, http.StatusUnprocessableEntity, stateOf(sess))
	case errors.Is(err, models.ErrInvalidStage):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(r.Context().Err(), context.Canceled):
		// Client tore down the checkout mid-flight; nothing to report
	default:
		log.Printf("Checkout flow error: %v", err)
		respondError(w, http.StatusBadGateway, "Failed to send verification code")
	}
}
