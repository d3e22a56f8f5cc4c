package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
)

// VerificationCodeLength is the number of digits in a verification code
const VerificationCodeLength = 6

// GenerateVerificationCode generates a cryptographically random numeric
// verification code of VerificationCodeLength digits
func GenerateVerificationCode() (string, error) {
	var sb strings.Builder
	for i := 0; i < VerificationCodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate verification code: %w", err)
		}
		sb.WriteString(n.String())
	}
	return sb.String(), nil
}

// GenerateSecureToken generates a cryptographically secure random token
func GenerateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// MaskRegistrationNumber masks all but the last four characters of a company
// registration number before it is shown publicly
func MaskRegistrationNumber(crn string) string {
	if len(crn) <= 4 {
		return crn
	}
	return strings.Repeat("x", len(crn)-4) + crn[len(crn)-4:]
}
