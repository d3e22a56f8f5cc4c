package models

import "fmt"

// TaxRate is the flat tax rate applied to the cart subtotal
const TaxRate = 0.05

// CartItem represents a single premium report line item in the shopping cart.
// Company fields are copied by value at add time so later catalog changes do
// not rewrite items already in the cart.
type CartItem struct {
	ID          string         `json:"id"`
	CompanyID   string         `json:"company_id"`
	CompanyName string         `json:"company_name"`
	ItemName    string         `json:"item_name"`
	Price       float64        `json:"price"`
	Language    ReportLanguage `json:"language,omitempty"`
}

// Validate validates the cart item data. Failures wrap ErrInvalidInput so
// callers can map them uniformly.
func (item *CartItem) Validate() error {
	if item.CompanyID == "" {
		return fmt.Errorf("%w: company id is required", ErrInvalidInput)
	}
	if item.CompanyName == "" {
		return fmt.Errorf("%w: company name is required", ErrInvalidInput)
	}
	if item.ItemName == "" {
		return fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if item.Language != "" && !IsValidReportLanguage(item.Language) {
		return fmt.Errorf("%w: unknown report language", ErrInvalidInput)
	}
	return nil
}

// CartSummary represents the pricing breakdown shown on the cart page
type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// NewCartSummary computes the pricing summary for the given subtotal
func NewCartSummary(subtotal float64) CartSummary {
	tax := subtotal * TaxRate
	return CartSummary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
