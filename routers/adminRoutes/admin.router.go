package adminRoutes

import (
	adminController "nexus/controllers/admin"
	"nexus/middleware"
	adminValidator "nexus/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin")

	adminGroup.Get("/pending", middleware.JWTMiddleware, middleware.AdminOnly, adminController.PendingRequests)
	adminGroup.Get("/users", middleware.JWTMiddleware, middleware.AdminOnly, adminController.UserList)
	adminGroup.Post("/decide", adminValidator.Decide(), middleware.JWTMiddleware, middleware.AdminOnly, adminController.Decide)
}
