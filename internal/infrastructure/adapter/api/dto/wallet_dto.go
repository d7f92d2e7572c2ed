package dto

import "github.com/fundedpeak/portal-api/internal/domain/port/usecase"

// BalanceResponse is the wallet balance view
type BalanceResponse struct {
	Success       bool   `json:"success"`
	WalletBalance string `json:"walletBalance"`
	Currency      string `json:"currency"`
}

// WithdrawalRequest is the payload for POST /wallet/withdraw
type WithdrawalRequest struct {
	Amount         string `json:"amount" binding:"required"`
	Method         string `json:"method" binding:"required"`
	AccountDetails string `json:"accountDetails"`
}

// WithdrawalResponse reports a recorded withdrawal request
type WithdrawalResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	TransactionID    string `json:"transactionId"`
	WithdrawalAmount string `json:"withdrawalAmount"`
	NewBalance       string `json:"newBalance"`
}

// TransactionListResponse is a page of the caller's ledger history
type TransactionListResponse struct {
	Success      bool                      `json:"success"`
	Transactions []usecase.TransactionItem `json:"transactions"`
	Pagination   *usecase.Page             `json:"pagination"`
}

// ProcessWithdrawalRequest is the admin payload for settling a withdrawal
type ProcessWithdrawalRequest struct {
	Status    string `json:"status" binding:"required"`
	AdminNote string `json:"adminNote"`
}

// ProcessWithdrawalResponse reports the status transition
type ProcessWithdrawalResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	TransactionID string         `json:"transactionId"`
	Status        string         `json:"status"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}
