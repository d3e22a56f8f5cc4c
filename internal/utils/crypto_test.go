package utils

import (
	"testing"
	"unicode"
)

func TestGenerateVerificationCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateVerificationCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != VerificationCodeLength {
			t.Fatalf("expected %d digits, got %q", VerificationCodeLength, code)
		}
		for _, r := range code {
			if !unicode.IsDigit(r) {
				t.Fatalf("expected numeric code, got %q", code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("expected generated codes to vary")
	}
}

func TestGenerateSecureToken(t *testing.T) {
	token1, err := GenerateSecureToken(16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	token2, err := GenerateSecureToken(16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token1 == "" || token1 == token2 {
		t.Error("expected distinct non-empty tokens")
	}
}

func TestMaskRegistrationNumber(t *testing.T) {
	tests := []struct {
		name string
		crn  string
		want string
	}{
		{name: "standard crn", crn: "CN-1234567", want: "xxxxxx4567"},
		{name: "short value unchanged", crn: "1234", want: "1234"},
		{name: "empty", crn: "", want: ""},
		{name: "five characters", crn: "AB123", want: "xB123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskRegistrationNumber(tt.crn); got != tt.want {
				t.Errorf("MaskRegistrationNumber(%q) = %q, want %q", tt.crn, got, tt.want)
			}
		})
	}
}
