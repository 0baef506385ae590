package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// GenerateOTP returns a 6-digit numeric activation/reset code.
func GenerateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// IsValidOTP reports whether code is exactly six numeric digits. Codes
// failing this check are rejected before any database lookup.
func IsValidOTP(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// GenerateUUID returns a random UUID string, used for backup ids and
// upload public ids.
func GenerateUUID() string {
	return uuid.NewString()
}
