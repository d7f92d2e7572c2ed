package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	domainerr "github.com/fundedpeak/portal-api/internal/domain/error"
	coreport "github.com/fundedpeak/portal-api/internal/domain/port/core"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/api/dto"
	"github.com/fundedpeak/portal-api/internal/infrastructure/auth"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	userUseCase     usecase.UserUseCase
	referralUseCase usecase.ReferralUseCase
	tokens          *auth.Manager
	logger          coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	userUseCase usecase.UserUseCase,
	referralUseCase usecase.ReferralUseCase,
	tokens *auth.Manager,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		userUseCase:     userUseCase,
		referralUseCase: referralUseCase,
		tokens:          tokens,
		logger:          logger,
	}
}

// Register handles the POST /auth/register endpoint. A referral code in
// the payload creates a pending referral; an unusable code is reported in
// the log but does not fail the signup.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUsername),
			Message: "username and walletAddress are required",
		})
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), usecase.RegisterRequest{
		Username:      req.Username,
		WalletAddress: req.WalletAddress,
		Password:      req.Password,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		if errors.Is(err, domainerr.ErrDuplicateUser) {
			statusCode = http.StatusConflict
			errorMessage = "Username or wallet address already registered"
		} else if domainerr.IsValidationError(err) {
			statusCode = http.StatusBadRequest
			errorMessage = err.Error()
		}

		h.logger.Error("Error registering user", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	if req.ReferralCode != "" {
		if _, err := h.referralUseCase.RegisterReferral(c.Request.Context(), req.ReferralCode, user.ID); err != nil {
			h.logger.Warn("Referral code not applied at signup", map[string]any{
				"user_id": user.ID,
				"code":    req.ReferralCode,
				"error":   err.Error(),
			})
		}
	}

	token, err := h.tokens.IssueToken(user.ID, user.IsAdmin)
	if err != nil {
		h.logger.Error("Error issuing token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Token:   token,
		User:    toUserProfile(user),
	})
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
			Message: "walletAddress and password are required",
		})
		return
	}

	user, err := h.userUseCase.Login(c.Request.Context(), req.WalletAddress, req.Password)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		if errors.Is(err, domainerr.ErrInvalidCredentials) {
			statusCode = http.StatusUnauthorized
			errorMessage = "Invalid wallet address or password"
		}

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	token, err := h.tokens.IssueToken(user.ID, user.IsAdmin)
	if err != nil {
		h.logger.Error("Error issuing token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   token,
		User:    toUserProfile(user),
	})
}

// toUserProfile maps a user entity to its public DTO
func toUserProfile(user *entity.User) dto.UserProfile {
	return dto.UserProfile{
		ID:            user.ID,
		Username:      user.Username,
		WalletAddress: user.WalletAddress,
		ReferralCode:  user.ReferralCode,
		WalletBalance: user.FormattedBalance(),
		IsAdmin:       user.IsAdmin,
	}
}
