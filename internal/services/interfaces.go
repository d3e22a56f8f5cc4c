package services

import (
	"context"
	"time"

	"business-directory-platform/internal/models"
)

// CompanyServiceInterface defines the interface for the company directory
type CompanyServiceInterface interface {
	SearchCompanies(query, country string) []*models.Company
	GetCompanyByID(id string) (*models.Company, error)
	PremiumReports() []*models.PremiumReport
	GetReportByID(id string) (*models.PremiumReport, error)
}

// CodeSender delivers a verification code to a visitor out-of-band
type CodeSender interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}

// EmailServiceInterface defines the interface for email services
type EmailServiceInterface interface {
	CodeSender
	SendInvestigationAck(ctx context.Context, email, companyName, country string) error
	SendCustomReportAck(ctx context.Context, email, companyName, description string) error
	TestConnection() error
}

// CheckoutRedirect represents the payment gateway handoff returned to the
// visitor after verification
type CheckoutRedirect struct {
	Reference   string    `json:"reference"`
	RedirectURL string    `json:"redirect_url"`
	Email       string    `json:"email"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// PaymentServiceInterface defines the interface for payment services
type PaymentServiceInterface interface {
	InitiateCheckout(ctx context.Context, email string, totalAmount float64) (*CheckoutRedirect, error)
	TestConnection() error
}
