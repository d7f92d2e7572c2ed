package user

import (
	coreport "github.com/fundedpeak/portal-api/internal/domain/port/core"
	"github.com/fundedpeak/portal-api/internal/domain/port/persistence"
)

// maxCodeAttempts bounds referral-code regeneration on unique-index
// collision before signup fails explicitly
const maxCodeAttempts = 5

// Service implements account operations: signup, login, profile lookup
type Service struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a user service
func NewService(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
