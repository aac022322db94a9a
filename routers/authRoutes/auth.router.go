package authRoutes

import (
	authController "nexus/controllers/auth"
	"nexus/middleware"
	authValidator "nexus/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Post("/register", authValidator.Register(), authController.Register)
	apiGroup.Post("/login", authValidator.Login(), authController.Login)
	apiGroup.Get("/login/history", middleware.JWTMiddleware, authController.LoginHistoryList)
}
