package adminController

import (
	"errors"
	"log"

	"nexus/database"
	"nexus/middleware"
	"nexus/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Decision outcomes that are business rejections, not store failures.
var (
	errAlreadyDecided    = errors.New("request already decided")
	errInsufficientFunds = errors.New("insufficient funds")
	errOwnerMissing      = errors.New("owner account missing")
)

// PendingRequests returns all pending transaction requests, newest first
func PendingRequests(c *fiber.Ctx) error {
	var pending []models.Transaction
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = false", models.TransactionStatusPending).
		Order("transaction_date DESC").
		Find(&pending).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending requests fetched!", pending)
}

// UserList returns all regular (non-admin) accounts with balances.
// Credential fields are blanked before the records leave the API.
func UserList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&models.User{}).
		Where("is_deleted = ? AND role != ?", false, models.RoleAdmin).
		Count(&total)

	var users []models.User
	if err := db.
		Where("is_deleted = ? AND role != ?", false, models.RoleAdmin).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	for i := range users {
		users[i].Sanitize()
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list fetched!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// Decide resolves a pending request into APPROVED or REJECTED.
//
// Approval of a deposit credits the owner, approval of a withdrawal
// debits the owner only when the balance covers the amount. The status
// flip is guarded by "status = PENDING" inside the same transaction as
// the balance write, so a racing second decision loses the guard and
// no balance change is ever applied twice. An uncovered withdrawal
// rolls the whole transaction back and the request stays PENDING.
func Decide(c *fiber.Ctx) error {
	adminId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedDecision").(*struct {
		ID       uint   `json:"id"`
		Decision string `json:"decision"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var txn models.Transaction
	if err := db.Where("id = ? AND is_deleted = false", reqData.ID).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Request not found!", nil)
		}
		log.Printf("Error loading transaction %d: %v", reqData.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load request!", nil)
	}

	if txn.Status != models.TransactionStatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Request already decided!", nil)
	}

	if reqData.Decision == "rejected" {
		return reject(c, adminId, txn.ID)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Flip the status first. Zero rows means someone else decided
		// this request between our read and now.
		res := tx.Model(&models.Transaction{}).
			Where("id = ? AND status = ?", txn.ID, models.TransactionStatusPending).
			Updates(map[string]interface{}{
				"status":     models.TransactionStatusApproved,
				"decided_by": adminId,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyDecided
		}

		switch txn.Type {
		case models.TransactionTypeDeposit:
			res = tx.Model(&models.User{}).
				Where("id = ? AND is_deleted = false", txn.UserID).
				Update("balance", gorm.Expr("balance + ?", txn.Amount))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errOwnerMissing
			}
		case models.TransactionTypeWithdraw:
			// The balance guard keeps the account non-negative. Zero
			// rows rolls back the status flip above, leaving the
			// request PENDING and retryable.
			res = tx.Model(&models.User{}).
				Where("id = ? AND is_deleted = false AND balance >= ?", txn.UserID, txn.Amount).
				Update("balance", gorm.Expr("balance - ?", txn.Amount))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errInsufficientFunds
			}
		default:
			return errors.New("unknown transaction type")
		}

		return nil
	})

	switch {
	case err == nil:
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Request approved.", fiber.Map{
			"transactionId": txn.ID,
			"status":        models.TransactionStatusApproved,
		})
	case errors.Is(err, errAlreadyDecided):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Request already decided!", nil)
	case errors.Is(err, errInsufficientFunds):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient funds!", nil)
	case errors.Is(err, errOwnerMissing):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	default:
		log.Printf("Error deciding transaction %d: %v", txn.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process decision!", nil)
	}
}

func reject(c *fiber.Ctx, adminId, txnID uint) error {
	res := database.Database.Db.Model(&models.Transaction{}).
		Where("id = ? AND status = ?", txnID, models.TransactionStatusPending).
		Updates(map[string]interface{}{
			"status":     models.TransactionStatusRejected,
			"decided_by": adminId,
		})
	if res.Error != nil {
		log.Printf("Error rejecting transaction %d: %v", txnID, res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process decision!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Request already decided!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request rejected.", fiber.Map{
		"transactionId": txnID,
		"status":        models.TransactionStatusRejected,
	})
}
