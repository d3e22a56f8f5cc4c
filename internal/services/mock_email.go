package services

import (
	"context"
	"log"

	"business-directory-platform/internal/config"
)

// MockEmailService provides a mock email service that can optionally use Resend
type MockEmailService struct {
	resendService *ResendEmailService
	useResend     bool
}

// NewMockEmailService creates a new mock email service
func NewMockEmailService(resendConfig *config.ResendConfig) *MockEmailService {
	service := &MockEmailService{
		useResend: false,
	}

	// If Resend config is provided and has API key, use Resend
	if resendConfig != nil && resendConfig.APIKey != "" {
		service.resendService = NewResendEmailService(ResendConfig{
			APIKey:    resendConfig.APIKey,
			FromEmail: resendConfig.FromEmail,
			FromName:  resendConfig.FromName,
		})
		service.useResend = true
		log.Println("Email service: Using Resend API")
	} else {
		log.Println("Email service: Using mock (no Resend API key provided)")
	}

	return service
}

// SendVerificationCode delivers a checkout verification code
func (s *MockEmailService) SendVerificationCode(ctx context.Context, email, code string) error {
	if s.useResend && s.resendService != nil {
		return s.resendService.SendVerificationCode(ctx, email, code)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Mock implementation - just log
	log.Printf("Mock Email: Verification code sent to %s: %s", email, code)
	return nil
}

// SendInvestigationAck acknowledges a fresh investigation request
func (s *MockEmailService) SendInvestigationAck(ctx context.Context, email, companyName, country string) error {
	if s.useResend && s.resendService != nil {
		return s.resendService.SendInvestigationAck(ctx, email, companyName, country)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Mock implementation - just log
	log.Printf("Mock Email: Investigation request for %q (%s) acknowledged to %s", companyName, country, email)
	return nil
}

// SendCustomReportAck acknowledges a custom report request
func (s *MockEmailService) SendCustomReportAck(ctx context.Context, email, companyName, description string) error {
	if s.useResend && s.resendService != nil {
		return s.resendService.SendCustomReportAck(ctx, email, companyName, description)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Mock implementation - just log
	log.Printf("Mock Email: Custom report request for %q acknowledged to %s", companyName, email)
	return nil
}

// TestConnection tests the email service connection
func (s *MockEmailService) TestConnection() error {
	if s.useResend && s.resendService != nil {
		return s.resendService.TestConnection()
	}

	// Mock always works
	return nil
}
