package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/fundedpeak/portal-api/internal/domain/error"
)

// Monetary values are carried as int64 cents everywhere inside the domain.
// Strings with at most two decimal places are the only accepted wire format.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount validates a string amount and converts it to cents.
// Handles the decimal point positionally instead of going through floats:
// - "10"    -> 1000
// - "10.5"  -> 1050
// - "10.50" -> 1050
// Returns an error for negative values, malformed numbers, or more than
// two decimal places.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		// No decimal point
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			// Like "10."
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ParsePositiveAmount is ParseAmount with a strictly-positive requirement.
// Used for challenge prices and withdrawal amounts where zero is invalid.
func ParsePositiveAmount(amount string) (int64, error) {
	cents, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}
	return cents, nil
}

// FormatCents converts an amount in cents to a decimal string with exactly
// two decimal places. 1015 becomes "10.15", -50 becomes "-0.50".
func FormatCents(cents int64) string {
	isNegative := cents < 0
	if isNegative {
		cents = -cents
	}

	amountStr := strconv.FormatInt(cents, 10)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// RewardCents computes a percentage of a price in cents with integer
// truncation. An odd-cent price never rounds the reward up.
func RewardCents(priceCents int64, percent int64) int64 {
	return priceCents * percent / 100
}
