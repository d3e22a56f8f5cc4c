package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ResendConfig represents Resend email service configuration
type ResendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// ResendEmailService handles email sending via Resend API
type ResendEmailService struct {
	config ResendConfig
	client *http.Client
}

// NewResendEmailService creates a new Resend email service
func NewResendEmailService(config ResendConfig) *ResendEmailService {
	return &ResendEmailService{
		config: config,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ResendEmailRequest represents the request structure for Resend API
type ResendEmailRequest struct {
	From    string      `json:"from"`
	To      []string    `json:"to"`
	Subject string      `json:"subject"`
	HTML    string      `json:"html,omitempty"`
	Text    string      `json:"text,omitempty"`
	Tags    []ResendTag `json:"tags,omitempty"`
}

// ResendTag represents a tag for email categorization
type ResendTag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// getFromField constructs the from field properly
func (s *ResendEmailService) getFromField() string {
	if s.config.FromName != "" {
		return fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	}
	return s.config.FromEmail
}

// SendVerificationCode sends a checkout verification code via Resend
func (s *ResendEmailService) SendVerificationCode(ctx context.Context, email, code string) error {
	htmlContent := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Verification Code</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #002b5c; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .code { font-size: 32px; letter-spacing: 8px; font-weight: bold; text-align: center; padding: 16px; background-color: #fff; border: 1px solid #ddd; border-radius: 4px; margin: 20px 0; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Verify Your Email</h1>
        </div>
        <div class="content">
            <p>Use the following code to continue your guest checkout:</p>

            <div class="code">%s</div>

            <p>No registration is required. Enter this code on the checkout page to confirm your email address.</p>
            <p>If you didn't start a checkout, you can safely ignore this email.</p>
        </div>
        <div class="footer">
            <p>MENA Business Directory</p>
        </div>
    </div>
</body>
</html>`, code)

	textContent := fmt.Sprintf(`Verify Your Email

Use the following code to continue your guest checkout: %s

No registration is required. Enter this code on the checkout page to confirm your email address.

If you didn't start a checkout, you can safely ignore this email.

MENA Business Directory`, code)

	request := ResendEmailRequest{
		From:    s.getFromField(),
		To:      []string{email},
		Subject: "Your verification code",
		HTML:    htmlContent,
		Text:    textContent,
		Tags: []ResendTag{
			{Name: "category", Value: "checkout_verification"},
		},
	}

	return s.sendEmail(ctx, request)
}

// SendInvestigationAck acknowledges a fresh investigation request via Resend
func (s *ResendEmailService) SendInvestigationAck(ctx context.Context, email, companyName, country string) error {
	htmlContent := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Investigation Request Received</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #002b5c; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Investigation Request Received</h1>
        </div>
        <div class="content">
            <p>We received your request for a fresh investigation of:</p>
            <p><strong>%s</strong> (%s)</p>
            <p>Our research team will review the request and contact you at this address with the findings and a quotation.</p>
        </div>
        <div class="footer">
            <p>MENA Business Directory</p>
        </div>
    </div>
</body>
</html>`, companyName, country)

	textContent := fmt.Sprintf(`Investigation Request Received

We received your request for a fresh investigation of: %s (%s)

Our research team will review the request and contact you at this address with the findings and a quotation.

MENA Business Directory`, companyName, country)

	request := ResendEmailRequest{
		From:    s.getFromField(),
		To:      []string{email},
		Subject: "Investigation request received",
		HTML:    htmlContent,
		Text:    textContent,
		Tags: []ResendTag{
			{Name: "category", Value: "investigation_request"},
		},
	}

	return s.sendEmail(ctx, request)
}

// SendCustomReportAck acknowledges a custom report request via Resend
func (s *ResendEmailService) SendCustomReportAck(ctx context.Context, email, companyName, description string) error {
	htmlContent := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Custom Report Request Received</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #002b5c; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .request { background-color: #fff; border: 1px solid #ddd; border-radius: 4px; padding: 16px; margin: 20px 0; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Custom Report Request Received</h1>
        </div>
        <div class="content">
            <p>We received your custom report request for:</p>
            <p><strong>%s</strong></p>
            <div class="request">%s</div>
            <p>Our team will assess your requirements and send you an email with the full cost, estimated turnaround time, and a secure payment link. After successful payment, the report is delivered to this address.</p>
        </div>
        <div class="footer">
            <p>MENA Business Directory</p>
        </div>
    </div>
</body>
</html>`, companyName, description)

	textContent := fmt.Sprintf(`Custom Report Request Received

We received your custom report request for: %s

Your request:
%s

Our team will assess your requirements and send you an email with the full cost, estimated turnaround time, and a secure payment link. After successful payment, the report is delivered to this address.

MENA Business Directory`, companyName, description)

	request := ResendEmailRequest{
		From:    s.getFromField(),
		To:      []string{email},
		Subject: "Custom report request received",
		HTML:    htmlContent,
		Text:    textContent,
		Tags: []ResendTag{
			{Name: "category", Value: "custom_report_request"},
		},
	}

	return s.sendEmail(ctx, request)
}

// sendEmail sends an email request to the Resend API
func (s *ResendEmailService) sendEmail(ctx context.Context, request ResendEmailRequest) error {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errorResp ResendErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errorResp); err != nil {
			return fmt.Errorf("failed to send email, status: %d", resp.StatusCode)
		}
		return fmt.Errorf("failed to send email: %s", errorResp.Message)
	}

	var response ResendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// TestConnection tests the email service connection
func (s *ResendEmailService) TestConnection() error {
	request := ResendEmailRequest{
		From:    s.getFromField(),
		To:      []string{"test@example.com"}, // This won't actually send
		Subject: "Test Connection",
		Text:    "This is a test email to validate API connection",
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal test request: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create test request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send test request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == 401 {
		return fmt.Errorf("invalid API key")
	}

	return nil
}
