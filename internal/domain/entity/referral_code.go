package entity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	errs "github.com/fundedpeak/portal-api/internal/domain/error"
)

// ReferralCodeLength is the fixed length of a referral code
const ReferralCodeLength = 8

// GenerateReferralCode produces a random referral code of 8 uppercase hex
// characters. Uniqueness is enforced by the users table; callers retry on
// collision.
func GenerateReferralCode() (string, error) {
	buf := make([]byte, ReferralCodeLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// IsValidReferralCode reports whether a string has the shape of a referral
// code: exactly 8 uppercase hex characters.
func IsValidReferralCode(code string) bool {
	if len(code) != ReferralCodeLength {
		return false
	}
	for _, c := range code {
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
