package models

import "errors"

// Common errors used throughout the application
var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrReportNotFound       = errors.New("report not found")
	ErrInvalidEmailFormat   = errors.New("invalid email format")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired verification code")
	ErrInvalidStage         = errors.New("operation not valid in current checkout stage")
	ErrStorageUnavailable   = errors.New("cart storage unavailable")
	ErrInvalidInput         = errors.New("invalid input")
	ErrNoCheckoutSession    = errors.New("no active checkout session")
)
