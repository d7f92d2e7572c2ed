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

// WalletHandler handles wallet-related HTTP requests
type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(
	walletUseCase usecase.WalletUseCase,
	logger coreport.Logger,
) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

// GetBalance handles the GET /wallet/balance endpoint
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID := middleware.AuthUserID(c)

	balance, err := h.walletUseCase.GetBalance(c.Request.Context(), userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		if errors.Is(err, domainerr.ErrUserNotFound) {
			statusCode = http.StatusNotFound
			errorMessage = "User not found"
		}

		h.logger.Error("Error getting wallet balance", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Success:       true,
		WalletBalance: balance.WalletBalance,
		Currency:      balance.Currency,
	})
}

// RequestWithdrawal handles the POST /wallet/withdraw endpoint
func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	userID := middleware.AuthUserID(c)

	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "amount and method are required",
		})
		return
	}

	result, err := h.walletUseCase.RequestWithdrawal(c.Request.Context(), userID, usecase.WithdrawalRequest{
		Amount:         req.Amount,
		Method:         req.Method,
		AccountDetails: req.AccountDetails,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		switch {
		case domainerr.IsInsufficientBalanceError(err):
			statusCode = http.StatusBadRequest
			errorMessage = "Insufficient wallet balance"
		case errors.Is(err, domainerr.ErrUserNotFound):
			statusCode = http.StatusNotFound
			errorMessage = "User not found"
		case domainerr.IsValidationError(err):
			statusCode = http.StatusBadRequest
			errorMessage = err.Error()
		default:
			h.logger.Error("Error requesting withdrawal", map[string]any{
				"user_id": userID,
				"amount":  req.Amount,
				"error":   err.Error(),
			})
		}

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.WithdrawalResponse{
		Success:          true,
		Message:          "Withdrawal request recorded",
		TransactionID:    result.TransactionID,
		WithdrawalAmount: result.WithdrawalAmount,
		NewBalance:       result.NewBalance,
	})
}

// ListTransactions handles the GET /wallet/transactions endpoint
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	var types []entity.TransactionType
	if typeFilter := c.Query("type"); typeFilter != "" {
		types = append(types, entity.TransactionType(typeFilter))
	}

	transactions, pagination, err := h.walletUseCase.ListTransactions(c.Request.Context(), userID, types, page, limit)
	if err != nil {
		h.logger.Error("Error listing transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Success:      true,
		Transactions: transactions,
		Pagination:   pagination,
	})
}

// ProcessWithdrawal handles the POST /wallet/admin/process-withdrawal/:transactionId
// endpoint. Admin only.
func (h *WalletHandler) ProcessWithdrawal(c *gin.Context) {
	referenceID := c.Param("transactionId")

	var req dto.ProcessWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidTransactionStatus),
			Message: "status is required",
		})
		return
	}

	result, err := h.walletUseCase.ProcessWithdrawal(c.Request.Context(), referenceID, req.Status, req.AdminNote)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		switch {
		case errors.Is(err, domainerr.ErrTransactionNotFound):
			statusCode = http.StatusNotFound
			errorMessage = "Transaction not found"
		case errors.Is(err, domainerr.ErrNotAWithdrawal):
			statusCode = http.StatusBadRequest
			errorMessage = "Transaction is not a withdrawal"
		case errors.Is(err, domainerr.ErrInvalidTransactionStatus):
			statusCode = http.StatusBadRequest
			errorMessage = "Invalid withdrawal status"
		case domainerr.IsValidationError(err):
			statusCode = http.StatusBadRequest
			errorMessage = err.Error()
		default:
			h.logger.Error("Error processing withdrawal", map[string]any{
				"transaction_id": referenceID,
				"error":          err.Error(),
			})
		}

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ProcessWithdrawalResponse{
		Success:       true,
		Message:       "Withdrawal status updated",
		TransactionID: result.TransactionID,
		Status:        result.Status,
		Metadata:      result.Metadata,
	})
}
