package dto

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Username      string `json:"username" binding:"required"`
	WalletAddress string `json:"walletAddress" binding:"required"`
	Password      string `json:"password"`
	ReferralCode  string `json:"referralCode"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	Password      string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token and the user's public profile
type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}

// UserProfile is the public view of a user account
type UserProfile struct {
	ID            uint64 `json:"id"`
	Username      string `json:"username"`
	WalletAddress string `json:"walletAddress"`
	ReferralCode  string `json:"referralCode"`
	WalletBalance string `json:"walletBalance"`
	IsAdmin       bool   `json:"isAdmin"`
}
