package models

import (
	"regexp"
	"time"
)

// CheckoutStage represents a stage in the guest checkout flow
type CheckoutStage string

const (
	StageCollectingEmail CheckoutStage = "collecting_email"
	StageAwaitingCode    CheckoutStage = "awaiting_code"
	StageVerified        CheckoutStage = "verified"
)

var (
	// Email validation regex
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// Verification codes are exactly six numeric digits
	codeRegex = regexp.MustCompile(`^[0-9]{6}$`)
)

// ValidateEmail validates an email address against the standard address pattern
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

// IsWellFormedCode reports whether the value has the shape of a verification code
func IsWellFormedCode(code string) bool {
	return codeRegex.MatchString(code)
}

// VerificationSession represents the ephemeral state of one guest checkout
// attempt. It lives only for the duration of the attempt; closing the checkout
// discards it and a new attempt starts from scratch.
//
// An issued code is never invalidated by time or by wrong guesses, only a
// resend supersedes it. Abuse of code issuance is bounded by rate limiting at
// the transport layer instead.
type VerificationSession struct {
	Email        string        `json:"email"`
	Stage        CheckoutStage `json:"stage"`
	IssuedCode   string        `json:"issued_code,omitempty"`
	AttemptError string        `json:"attempt_error,omitempty"`
	TotalAmount  float64       `json:"total_amount"`
	HandedOff    bool          `json:"handed_off"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// NewVerificationSession creates a fresh checkout session for the given order total
func NewVerificationSession(totalAmount float64) *VerificationSession {
	now := time.Now()
	return &VerificationSession{
		Stage:       StageCollectingEmail,
		TotalAmount: totalAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
