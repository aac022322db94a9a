package walletValidator

import (
	"nexus/middleware"
	"nexus/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitTransaction validates a deposit or withdraw request.
//
// Evidence is deliberately lenient here: a deposit without a receipt
// image or a withdrawal without an address is still accepted, the
// admin just sees the gap when reviewing.
func SubmitTransaction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Type          string  `json:"type"`
			Amount        float64 `json:"amount"`
			WalletAddress string  `json:"walletAddress"`
			ProofImage    string  `json:"proofImage"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Type != string(models.TransactionTypeDeposit) && reqData.Type != string(models.TransactionTypeWithdraw) {
			errors["type"] = "Type must be deposit or withdraw!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransaction", reqData)
		return c.Next()
	}
}
