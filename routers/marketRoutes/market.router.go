package marketRoutes

import (
	marketController "nexus/controllers/market"

	"github.com/gofiber/fiber/v2"
)

func SetupMarketRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Public read, the auth screen shows the ticker too
	apiGroup.Get("/market", marketController.GetMarkets)
}
