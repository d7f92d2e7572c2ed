package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferralCode(t *testing.T) {
	t.Run("generates valid codes", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			code, err := GenerateReferralCode()
			assert.NoError(t, err)
			assert.Len(t, code, ReferralCodeLength)
			assert.True(t, IsValidReferralCode(code), "generated code %q should validate", code)
		}
	})

	t.Run("codes differ between calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			code, err := GenerateReferralCode()
			assert.NoError(t, err)
			assert.False(t, seen[code], "code %q generated twice", code)
			seen[code] = true
		}
	})
}

func TestIsValidReferralCode(t *testing.T) {
	assert.True(t, IsValidReferralCode("A1B2C3D4"))
	assert.True(t, IsValidReferralCode("00000000"))
	assert.True(t, IsValidReferralCode("FFFFFFFF"))

	assert.False(t, IsValidReferralCode(""))
	assert.False(t, IsValidReferralCode("A1B2C3D"))   // too short
	assert.False(t, IsValidReferralCode("A1B2C3D45")) // too long
	assert.False(t, IsValidReferralCode("a1b2c3d4"))  // lowercase
	assert.False(t, IsValidReferralCode("G1B2C3D4"))  // outside hex range
	assert.False(t, IsValidReferralCode("A1B2 3D4"))
}
