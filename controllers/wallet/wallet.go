package walletController

import (
	"time"

	"nexus/config"
	"nexus/database"
	"nexus/middleware"
	"nexus/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetWalletBalance returns user's current wallet balance
func GetWalletBalance(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet balance fetched!", fiber.Map{
		"balance":  user.Balance,
		"currency": "USDT",
	})
}

// SubmitTransaction records a deposit or withdraw request in PENDING
// state. Nothing touches the balance here; that happens only when an
// admin approves the request.
func SubmitTransaction(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedTransaction").(*struct {
		Type          string  `json:"type"`
		Amount        float64 `json:"amount"`
		WalletAddress string  `json:"walletAddress"`
		ProofImage    string  `json:"proofImage"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	transaction := models.Transaction{
		Reference:       uuid.NewString(),
		UserID:          user.ID,
		UserEmail:       user.Email,
		Type:            models.TransactionType(reqData.Type),
		Amount:          reqData.Amount,
		WalletAddress:   reqData.WalletAddress,
		ProofImage:      reqData.ProofImage,
		Status:          models.TransactionStatusPending,
		TransactionDate: time.Now(),
	}

	if err := database.Database.Db.Create(&transaction).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request submitted! Waiting for admin approval.", fiber.Map{
		"transactionId": transaction.ID,
		"reference":     transaction.Reference,
		"type":          transaction.Type,
		"amount":        transaction.Amount,
		"status":        transaction.Status,
	})
}

// GetWalletHistory returns user's own transaction requests, newest first
func GetWalletHistory(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	txnType := c.Query("type") // deposit, withdraw

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	query := db.Model(&models.Transaction{}).Where("user_id = ? AND is_deleted = false", userId)

	if txnType != "" {
		query = query.Where("type = ?", txnType)
	}

	var total int64
	query.Count(&total)

	var transactions []models.Transaction
	if err := query.
		Order("transaction_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet history fetched!", fiber.Map{
		"transactions":   transactions,
		"currentBalance": user.Balance,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetDepositAddress returns the vault address users send funds to
func GetDepositAddress(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Deposit address fetched!", fiber.Map{
		"address": config.AppConfig.VaultAddress,
		"network": "TRC20",
	})
}
