package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/fundedpeak/portal-api/internal/domain/port/core"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/api/handler"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/api/middleware"
	"github.com/fundedpeak/portal-api/internal/infrastructure/auth"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	referralHandler *handler.ReferralHandler,
	walletHandler *handler.WalletHandler,
	tokens *auth.Manager,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes (public)
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	// Referral routes
	referralRoutes := router.Group("/referral")
	{
		// Called during signup, before the new user has a token
		referralRoutes.POST("/use", referralHandler.UseReferralCode)
		referralRoutes.GET("/leaderboard", referralHandler.GetLeaderboard)

		authed := referralRoutes.Group("")
		authed.Use(middleware.RequireAuth(tokens))
		{
			authed.GET("/code", referralHandler.GetReferralCode)
			authed.GET("/stats", referralHandler.GetReferralStats)
			authed.GET("/transactions", referralHandler.ListRewardTransactions)
			authed.GET("/list", referralHandler.ListReferrals)
		}

		admin := referralRoutes.Group("")
		admin.Use(middleware.RequireAuth(tokens), middleware.RequireAdmin())
		{
			admin.POST("/process-reward", referralHandler.ProcessReward)
		}
	}

	// Wallet routes
	walletRoutes := router.Group("/wallet")
	walletRoutes.Use(middleware.RequireAuth(tokens))
	{
		walletRoutes.GET("/balance", walletHandler.GetBalance)
		walletRoutes.POST("/withdraw", walletHandler.RequestWithdrawal)
		walletRoutes.GET("/transactions", walletHandler.ListTransactions)

		admin := walletRoutes.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/process-withdrawal/:transactionId", walletHandler.ProcessWithdrawal)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
