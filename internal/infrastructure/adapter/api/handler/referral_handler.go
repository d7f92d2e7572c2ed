package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	domainerr "github.com/fundedpeak/portal-api/internal/domain/error"
	coreport "github.com/fundedpeak/portal-api/internal/domain/port/core"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/api/dto"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/api/middleware"
)

// ReferralHandler handles referral-related HTTP requests
type ReferralHandler struct {
	referralUseCase usecase.ReferralUseCase
	walletUseCase   usecase.WalletUseCase
	logger          coreport.Logger
}

// NewReferralHandler creates a new referral handler instance
func NewReferralHandler(
	referralUseCase usecase.ReferralUseCase,
	walletUseCase usecase.WalletUseCase,
	logger coreport.Logger,
) *ReferralHandler {
	return &ReferralHandler{
		referralUseCase: referralUseCase,
		walletUseCase:   walletUseCase,
		logger:          logger,
	}
}

// UseReferralCode handles the POST /referral/use endpoint. The endpoint is
// public: it is called during signup before the new user has a token.
func (h *ReferralHandler) UseReferralCode(c *gin.Context) {
	var req dto.UseReferralCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidReferralCode),
			Message: "userId and referralCode are required",
		})
		return
	}

	registration, err := h.referralUseCase.RegisterReferral(c.Request.Context(), req.ReferralCode, req.UserID)
	if err != nil {
		statusCode := http.StatusBadRequest
		errorMessage := err.Error()

		switch {
		case errors.Is(err, domainerr.ErrDuplicateReferral):
			errorMessage = "A referral is already recorded for this user"
		case errors.Is(err, domainerr.ErrInvalidReferralCode):
			statusCode = http.StatusNotFound
			errorMessage = "Referral code not found"
		case errors.Is(err, domainerr.ErrSelfReferral):
			errorMessage = "You cannot use your own referral code"
		case !domainerr.IsValidationError(err):
			statusCode = http.StatusInternalServerError
			errorMessage = "Internal server error"
			h.logger.Error("Error registering referral", map[string]any{
				"user_id": req.UserID,
				"code":    req.ReferralCode,
				"error":   err.Error(),
			})
		}

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.UseReferralCodeResponse{
		Success:          true,
		Message:          "Referral recorded",
		ReferrerUsername: registration.ReferrerUsername,
	})
}

// GetReferralCode handles the GET /referral/code endpoint
func (h *ReferralHandler) GetReferralCode(c *gin.Context) {
	userID := middleware.AuthUserID(c)

	info, err := h.referralUseCase.GetReferralCode(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, userID, "Error getting referral code", err)
		return
	}

	c.JSON(http.StatusOK, dto.ReferralCodeResponse{
		Success:       true,
		ReferralCode:  info.ReferralCode,
		ReferralLink:  info.ReferralLink,
		WalletBalance: info.WalletBalance,
	})
}

// GetReferralStats handles the GET /referral/stats endpoint
func (h *ReferralHandler) GetReferralStats(c *gin.Context) {
	userID := middleware.AuthUserID(c)

	stats, err := h.referralUseCase.GetReferralStats(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, userID, "Error getting referral stats", err)
		return
	}

	c.JSON(http.StatusOK, dto.ReferralStatsResponse{
		Success: true,
		Stats:   stats,
	})
}

// ListReferrals handles the GET /referral/list endpoint
func (h *ReferralHandler) ListReferrals(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	referrals, pagination, err := h.referralUseCase.ListReferrals(c.Request.Context(), userID, page, limit)
	if err != nil {
		h.respondError(c, userID, "Error listing referrals", err)
		return
	}

	c.JSON(http.StatusOK, dto.ReferralListResponse{
		Success:    true,
		Referrals:  referrals,
		Pagination: pagination,
	})
}

// ListRewardTransactions handles the GET /referral/transactions endpoint:
// the caller's money movement from the referral program, rewards and the
// withdrawals that spend them
func (h *ReferralHandler) ListRewardTransactions(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	types := []entity.TransactionType{entity.TypeReferralReward, entity.TypeWithdrawal}
	transactions, pagination, err := h.walletUseCase.ListTransactions(c.Request.Context(), userID, types, page, limit)
	if err != nil {
		h.respondError(c, userID, "Error listing reward transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Success:      true,
		Transactions: transactions,
		Pagination:   pagination,
	})
}

// GetLeaderboard handles the GET /referral/leaderboard endpoint
func (h *ReferralHandler) GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	rows, err := h.referralUseCase.GetReferralLeaderboard(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Error getting leaderboard", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.LeaderboardResponse{
		Success:     true,
		Leaderboard: rows,
	})
}

// ProcessReward handles the POST /referral/process-reward endpoint, called
// by the challenge purchase flow after payment settles. Admin only.
func (h *ReferralHandler) ProcessReward(c *gin.Context) {
	var req dto.ProcessRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "userId and challengePrice are required",
		})
		return
	}

	result, err := h.referralUseCase.ProcessReferralReward(c.Request.Context(), req.UserID, req.ChallengePrice)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		if domainerr.IsValidationError(err) {
			statusCode = http.StatusBadRequest
			errorMessage = err.Error()
		}

		h.logger.Error("Error processing referral reward", map[string]any{
			"user_id": req.UserID,
			"error":   err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ProcessRewardResponse{
		Success:          true,
		Rewarded:         result.Rewarded,
		Message:          result.Message,
		ReferrerUsername: result.ReferrerUsername,
		RewardAmount:     result.RewardAmount,
	})
}

// respondError maps a usecase error to an HTTP response for the
// authenticated referral endpoints
func (h *ReferralHandler) respondError(c *gin.Context, userID uint64, logMessage string, err error) {
	statusCode := http.StatusInternalServerError
	errorMessage := "Internal server error"

	if errors.Is(err, domainerr.ErrUserNotFound) {
		statusCode = http.StatusNotFound
		errorMessage = "User not found"
	}

	h.logger.Error(logMessage, map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: errorMessage,
	})
}
