package walletRoutes

import (
	userController "nexus/controllers/user"
	walletController "nexus/controllers/wallet"
	"nexus/middleware"
	walletValidator "nexus/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Get("/user/:email", middleware.JWTMiddleware, userController.GetUserByEmail)
	apiGroup.Post("/transaction", walletValidator.SubmitTransaction(), middleware.JWTMiddleware, walletController.SubmitTransaction)

	walletGroup := apiGroup.Group("/wallet")
	walletGroup.Get("/balance", middleware.JWTMiddleware, walletController.GetWalletBalance)
	walletGroup.Get("/history", middleware.JWTMiddleware, walletController.GetWalletHistory)
	walletGroup.Get("/deposit-address", middleware.JWTMiddleware, walletController.GetDepositAddress)
}
