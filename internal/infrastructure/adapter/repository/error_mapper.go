package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	errs "github.com/fundedpeak/portal-api/internal/domain/error"
)

// mapUserWriteError classifies a failed user insert or update by the
// violated unique index, so callers can distinguish a retryable referral
// code collision from a real duplicate account
func mapUserWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyMessage(err) {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "referral_code"):
			return errs.ErrDuplicateReferralCode
		default:
			return errs.ErrDuplicateUser
		}
	}
	return mapDatabaseError(err)
}

// mapReferralWriteError classifies a failed referral insert
func mapReferralWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyMessage(err) {
		return errs.ErrDuplicateReferral
	}
	return mapDatabaseError(err)
}

// mapDatabaseError translates driver-level failures into domain errors
func mapDatabaseError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.ErrConstraintViolation
	case strings.Contains(msg, "foreign key"),
		strings.Contains(msg, "violates check constraint"):
		return errs.ErrConstraintViolation
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "broken pipe"):
		return errs.ErrDatabaseConnection
	default:
		return err
	}
}

// isDuplicateKeyMessage covers drivers that report unique violations
// without the gorm sentinel (postgres error 23505)
func isDuplicateKeyMessage(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "sqlstate 23505") ||
		strings.Contains(msg, "unique constraint")
}
