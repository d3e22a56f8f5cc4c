package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"business-directory-platform/internal/config"
)

// MockPaymentService provides a mock payment service that can optionally use Paystack
type MockPaymentService struct {
	paystackService *PaystackService
	usePaystack     bool
}

// NewMockPaymentService creates a new mock payment service with Paystack support
func NewMockPaymentService(paystackConfig *config.PaystackConfig) *MockPaymentService {
	service := &MockPaymentService{
		usePaystack: false,
	}

	if paystackConfig != nil && paystackConfig.SecretKey != "" && paystackConfig.PublicKey != "" {
		service.paystackService = NewPaystackService(PaystackConfig{
			SecretKey:   paystackConfig.SecretKey,
			PublicKey:   paystackConfig.PublicKey,
			Environment: paystackConfig.Environment,
			CallbackURL: paystackConfig.CallbackURL,
		})
		service.usePaystack = true
		log.Printf("Payment service: Using Paystack API (%s environment)", paystackConfig.Environment)
	} else {
		log.Println("Payment service: Using mock (no Paystack credentials provided)")
	}

	return service
}

// InitiateCheckout hands the verified email and order total to the gateway
// and returns the payment redirect
func (s *MockPaymentService) InitiateCheckout(ctx context.Context, email string, totalAmount float64) (*CheckoutRedirect, error) {
	if s.usePaystack && s.paystackService != nil {
		return s.paystackService.InitiateCheckout(ctx, email, totalAmount)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Mock implementation - fabricate a redirect
	reference := fmt.Sprintf("mock_pay_%d", time.Now().UnixNano())

	log.Printf("Mock Payment: Initiating checkout of $%.2f for %s", totalAmount, email)

	return &CheckoutRedirect{
		Reference:   reference,
		RedirectURL: fmt.Sprintf("https://pay.example.com/checkout/%s", reference),
		Email:       email,
		Amount:      totalAmount,
		CreatedAt:   time.Now(),
	}, nil
}

// TestConnection tests the payment service connection
func (s *MockPaymentService) TestConnection() error {
	if s.usePaystack && s.paystackService != nil {
		return s.paystackService.TestConnection()
	}

	// Mock always works
	return nil
}
