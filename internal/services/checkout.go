package services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"business-directory-platform/internal/models"
	"business-directory-platform/internal/utils"

	"github.com/gorilla/sessions"
)

// checkoutSessionKey is the session slot holding the serialized checkout state
const checkoutSessionKey = "checkout_session"

// CheckoutService drives a visitor through guest email verification and the
// handoff to the payment gateway. Each checkout attempt is a short-lived
// state machine over a VerificationSession:
//
//	collecting_email -> awaiting_code -> verified
//
// Code issuance goes through the email collaborator under a bounded,
// cancellable context; a torn-down attempt discards in-flight work without
// mutating the session.
type CheckoutService struct {
	store       sessions.Store
	sender      CodeSender
	payments    PaymentServiceInterface
	sendTimeout time.Duration
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(store sessions.Store, sender CodeSender, payments PaymentServiceInterface, sendTimeout time.Duration) *CheckoutService {
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &CheckoutService{
		store:       store,
		sender:      sender,
		payments:    payments,
		sendTimeout: sendTimeout,
	}
}

// BeginCheckout starts a fresh checkout attempt for the given order total
func (s *CheckoutService) BeginCheckout(totalAmount float64) *models.VerificationSession {
	return models.NewVerificationSession(totalAmount)
}

// SubmitEmail validates the email and, on success, issues a verification
// code, hands it to the out-of-band delivery collaborator, and advances the
// session to awaiting_code. A rejected email keeps the session in
// collecting_email with AttemptError set; the caller may retry in place.
func (s *CheckoutService) SubmitEmail(ctx context.Context, sess *models.VerificationSession, email string) error {
	if sess.Stage != models.StageCollectingEmail {
		return models.ErrInvalidStage
	}
	sess.AttemptError = ""

	if err := models.ValidateEmail(email); err != nil {
		sess.AttemptError = err.Error()
		sess.UpdatedAt = time.Now()
		return err
	}

	code, err := s.issueCode(ctx, email)
	if err != nil {
		return err
	}

	sess.Email = email
	sess.IssuedCode = code
	sess.Stage = models.StageAwaitingCode
	sess.UpdatedAt = time.Now()
	return nil
}

// SubmitCode checks the entered code against the most recently issued one.
// A mismatch keeps the session in awaiting_code with AttemptError set and
// does not invalidate the issued code (retries are unlimited; only a resend
// supersedes a code). The exact issued code advances the session to
// verified, discarding the code and retaining the email.
func (s *CheckoutService) SubmitCode(sess *models.VerificationSession, code string) error {
	if sess.Stage != models.StageAwaitingCode {
		return models.ErrInvalidStage
	}
	sess.AttemptError = ""
	sess.UpdatedAt = time.Now()

	if !models.IsWellFormedCode(code) || subtle.ConstantTimeCompare([]byte(code), []byte(sess.IssuedCode)) != 1 {
		sess.AttemptError = models.ErrInvalidOrExpiredCode.Error()
		return models.ErrInvalidOrExpiredCode
	}

	sess.Stage = models.StageVerified
	sess.IssuedCode = ""
	return nil
}

// ResendCode reissues a fresh code to the session's email and clears any
// attempt error. The previous code no longer validates. The stage is
// unchanged.
func (s *CheckoutService) ResendCode(ctx context.Context, sess *models.VerificationSession) error {
	if sess.Stage != models.StageAwaitingCode {
		return models.ErrInvalidStage
	}

	code, err := s.issueCode(ctx, sess.Email)
	if err != nil {
		return err
	}

	sess.IssuedCode = code
	sess.AttemptError = ""
	sess.UpdatedAt = time.Now()
	return nil
}

// Back returns an awaiting_code session to email entry. The issued code is
// discarded; the email is kept for re-display.
func (s *CheckoutService) Back(sess *models.VerificationSession) error {
	if sess.Stage != models.StageAwaitingCode {
		return models.ErrInvalidStage
	}
	sess.Stage = models.StageCollectingEmail
	sess.IssuedCode = ""
	sess.AttemptError = ""
	sess.UpdatedAt = time.Now()
	return nil
}

// ConfirmPayment hands the verified email and order total to the payment
// collaborator and returns the redirect. The handoff happens once and
// exactly once per successful verification; a second confirmation attempt
// is rejected. A failed gateway call leaves the session confirmable so the
// visitor can retry.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, sess *models.VerificationSession) (*CheckoutRedirect, error) {
	if sess.Stage != models.StageVerified {
		return nil, models.ErrInvalidStage
	}
	if sess.HandedOff {
		return nil, models.ErrInvalidStage
	}

	redirect, err := s.payments.InitiateCheckout(ctx, sess.Email, sess.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to initiate payment: %w", err)
	}

	sess.HandedOff = true
	sess.UpdatedAt = time.Now()
	return redirect, nil
}

// issueCode generates a fresh code and delivers it under the send timeout.
// If the caller's context is cancelled mid-flight the code is discarded and
// no session state changes; the late result never reaches a torn-down view.
func (s *CheckoutService) issueCode(ctx context.Context, email string) (string, error) {
	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return "", err
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	if err := s.sender.SendVerificationCode(sendCtx, email, code); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("failed to send verification code: %w", err)
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	log.Printf("Checkout: verification code issued for %s", email)
	return code, nil
}

// SaveSessionTo saves the checkout session into the visitor's cookie session
func (s *CheckoutService) SaveSessionTo(w http.ResponseWriter, r *http.Request, sess *models.VerificationSession) error {
	session, err := s.store.Get(r, "session")
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}

	session.Values[checkoutSessionKey] = string(data)
	return session.Save(r, w)
}

// SessionFrom retrieves the active checkout session, if any
func (s *CheckoutService) SessionFrom(r *http.Request) (*models.VerificationSession, error) {
	session, err := s.store.Get(r, "session")
	if err != nil {
		return nil, models.ErrNoCheckoutSession
	}

	raw, ok := session.Values[checkoutSessionKey].(string)
	if !ok || raw == "" {
		return nil, models.ErrNoCheckoutSession
	}

	var sess models.VerificationSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, models.ErrNoCheckoutSession
	}
	return &sess, nil
}

// ClearSessionFrom discards the checkout session. Closing the checkout
// mid-attempt requires starting verification over.
func (s *CheckoutService) ClearSessionFrom(w http.ResponseWriter, r *http.Request) error {
	session, err := s.store.Get(r, "session")
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	delete(session.Values, checkoutSessionKey)
	return session.Save(r, w)
}
