package userController

import (
	"errors"

	"nexus/database"
	"nexus/middleware"
	"nexus/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetUserByEmail returns the account profile and current balance for
// an email. Polled by the dashboard, so non-admin callers only ever
// see their own account.
func GetUserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	callerEmail, _ := c.Locals("userEmail").(string)
	callerRole, _ := c.Locals("userRole").(string)

	if callerRole != models.RoleAdmin && callerEmail != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	var user models.User
	err := database.Database.Db.
		Where("email = ? AND is_deleted = false", email).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	user.Sanitize()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", user)
}
