package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"business-directory-platform/internal/utils"
)

// PaystackService handles payment initialization via the Paystack API. The
// checkout hands it a verified email and an order total; Paystack returns
// the hosted payment page the visitor is redirected to.
type PaystackService struct {
	config  PaystackConfig
	client  *http.Client
	baseURL string
}

// PaystackConfig represents Paystack payment service configuration
type PaystackConfig struct {
	SecretKey   string
	PublicKey   string
	Environment string // "test" or "live"
	CallbackURL string
}

// NewPaystackService creates a new Paystack payment service
func NewPaystackService(config PaystackConfig) *PaystackService {
	return &PaystackService{
		config:  config,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://api.paystack.co",
	}
}

// TransactionRequest represents a payment initialization request
type TransactionRequest struct {
	Email       string            `json:"email"`
	Amount      int               `json:"amount"` // smallest currency unit
	Currency    string            `json:"currency"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// TransactionResponse represents the response from transaction initialization
type TransactionResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    TransactionData `json:"data"`
}

// TransactionData contains the transaction initialization data
type TransactionData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// PaystackError represents an error response from Paystack
type PaystackError struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (e *PaystackError) Error() string {
	return fmt.Sprintf("Paystack Error: %s", e.Message)
}

// InitiateCheckout initializes a transaction for the verified visitor and
// returns the redirect to the hosted payment page
func (s *PaystackService) InitiateCheckout(ctx context.Context, email string, totalAmount float64) (*CheckoutRedirect, error) {
	token, err := utils.GenerateSecureToken(12)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction reference: %w", err)
	}
	reference := fmt.Sprintf("DIR-%s", token)

	req := &TransactionRequest{
		Email:       email,
		Amount:      int(math.Round(totalAmount * 100)),
		Currency:    "USD",
		Reference:   reference,
		CallbackURL: s.config.CallbackURL,
		Metadata: map[string]string{
			"environment": s.config.Environment,
		},
	}

	resp, err := s.initializeTransaction(ctx, req)
	if err != nil {
		return nil, err
	}

	return &CheckoutRedirect{
		Reference:   resp.Data.Reference,
		RedirectURL: resp.Data.AuthorizationURL,
		Email:       email,
		Amount:      totalAmount,
		CreatedAt:   time.Now(),
	}, nil
}

// initializeTransaction initializes a payment transaction with Paystack
func (s *PaystackService) initializeTransaction(ctx context.Context, req *TransactionRequest) (*TransactionResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction request: %w", err)
	}

	initURL := s.baseURL + "/transaction/initialize"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", initURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+s.config.SecretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send transaction request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var paystackErr PaystackError
		if err := json.NewDecoder(resp.Body).Decode(&paystackErr); err != nil {
			return nil, fmt.Errorf("transaction initialization failed, status: %d", resp.StatusCode)
		}
		return nil, &paystackErr
	}

	var txResp TransactionResponse
	if err := json.NewDecoder(resp.Body).Decode(&txResp); err != nil {
		return nil, fmt.Errorf("failed to decode transaction response: %w", err)
	}

	if !txResp.Status {
		return nil, fmt.Errorf("transaction initialization rejected: %s", txResp.Message)
	}

	return &txResp, nil
}

// TestConnection tests the payment service connection
func (s *PaystackService) TestConnection() error {
	req, err := http.NewRequest("GET", s.baseURL+"/transaction", nil)
	if err != nil {
		return fmt.Errorf("failed to create test request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.config.SecretKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send test request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == 401 {
		return fmt.Errorf("invalid secret key")
	}

	return nil
}
