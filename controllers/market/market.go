package marketController

import (
	"nexus/database"
	"nexus/middleware"
	"nexus/models"

	"github.com/gofiber/fiber/v2"
)

// GetMarkets returns the cached ticker, best rank first. The cache is
// refreshed in the background; an upstream outage just serves the last
// good snapshot.
func GetMarkets(c *fiber.Ctx) error {
	var quotes []models.MarketQuote
	if err := database.Database.Db.
		Order("rank ASC").
		Find(&quotes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch market data!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Market data fetched!", quotes)
}
