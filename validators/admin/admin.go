package adminValidator

import (
	"nexus/middleware"

	"github.com/gofiber/fiber/v2"
)

// Decide validates an approve/reject decision
func Decide() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID       uint   `json:"id"`
			Decision string `json:"decision"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ID == 0 {
			errors["id"] = "Request ID is required!"
		}
		if reqData.Decision != "approved" && reqData.Decision != "rejected" {
			errors["decision"] = "Decision must be approved or rejected!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDecision", reqData)
		return c.Next()
	}
}
