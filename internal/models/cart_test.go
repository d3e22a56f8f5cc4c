package models

import (
	"errors"
	"math"
	"testing"
)

func TestCartItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    CartItem
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid item",
			item: CartItem{
				ID:          "item-1",
				CompanyID:   "1",
				CompanyName: "Emirates Steel Industries",
				ItemName:    "Business Activities",
				Price:       25,
			},
			wantErr: false,
		},
		{
			name: "valid item with language",
			item: CartItem{
				CompanyID:   "1",
				CompanyName: "Emirates Steel Industries",
				ItemName:    "Media Report",
				Price:       85,
				Language:    LanguageBoth,
			},
			wantErr: false,
		},
		{
			name: "valid item with zero price",
			item: CartItem{
				CompanyID:   "1",
				CompanyName: "Emirates Steel Industries",
				ItemName:    "Sample Report",
				Price:       0,
			},
			wantErr: false,
		},
		{
			name: "missing company id",
			item: CartItem{
				CompanyName: "Emirates Steel Industries",
				ItemName:    "Business Activities",
				Price:       25,
			},
			wantErr: true,
			errMsg:  "invalid input: company id is required",
		},
		{
			name: "missing company name",
			item: CartItem{
				CompanyID: "1",
				ItemName:  "Business Activities",
				Price:     25,
			},
			wantErr: true,
			errMsg:  "invalid input: company name is required",
		},
		{
			name: "missing item name",
			item: CartItem{
				CompanyID:   "1",
				CompanyName: "Emirates Steel Industries",
				Price:       25,
			},
			wantErr: true,
			errMsg:  "invalid input: item name is required",
		},
		{
			name: "negative price",
			item: CartItem{
				CompanyID:   "1",
				CompanyName: "Emirates Steel Industries",
				ItemName:    "Business Activities",
				Price:       -5,
			},
			wantErr: true,
			errMsg:  "invalid input: price cannot be negative",
		},
		{
			name: "unknown language",
			item: CartItem{
				CompanyID:   "1",
				CompanyName: "Emirates Steel Industries",
				ItemName:    "Media Report",
				Price:       50,
				Language:    "french",
			},
			wantErr: true,
			errMsg:  "invalid input: unknown report language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected error wrapping ErrInvalidInput, got %v", err)
				}
				if err.Error() != tt.errMsg {
					t.Errorf("expected error %q, got %q", tt.errMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewCartSummary(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		wantTax  float64
		wantTot  float64
	}{
		{name: "empty cart", subtotal: 0, wantTax: 0, wantTot: 0},
		{name: "single item", subtotal: 25, wantTax: 1.25, wantTot: 26.25},
		{name: "scenario cart", subtotal: 85, wantTax: 4.25, wantTot: 89.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := NewCartSummary(tt.subtotal)
			if summary.Subtotal != tt.subtotal {
				t.Errorf("expected subtotal %v, got %v", tt.subtotal, summary.Subtotal)
			}
			if math.Abs(summary.Tax-tt.wantTax) > 1e-9 {
				t.Errorf("expected tax %v, got %v", tt.wantTax, summary.Tax)
			}
			if math.Abs(summary.Total-tt.wantTot) > 1e-9 {
				t.Errorf("expected total %v, got %v", tt.wantTot, summary.Total)
			}
		})
	}
}
