package authController

import (
	"log"
	"time"

	"nexus/config"
	"nexus/credentials"
	"nexus/database"
	"nexus/middleware"
	"nexus/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Secrets is the credential verification strategy used at registration
// and login. Swappable so the stores and approval flow never see hashes.
var Secrets credentials.Verifier = credentials.NewBcryptVerifier(10)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Pin      string `json:"pin"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Pin      string `json:"pin"`
}

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := Secrets.Hash(reqData.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	hashedPin, err := Secrets.Hash(reqData.Pin)
	if err != nil {
		log.Printf("Error hashing pin: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: hashedPassword,
		Pin:      hashedPin,
	}

	// The count and the insert run in one transaction so two racing
	// first registrations cannot both come out as ADMIN.
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.User{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing == 0 {
			newUser.Role = models.RoleAdmin
		} else {
			newUser.Role = models.RoleUser
		}
		return tx.Create(&newUser).Error
	})
	if err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	newUser.Sanitize()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account initialized.", newUser)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	result := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user)

	// Same message for unknown email, wrong password and wrong pin so
	// the response never reveals which field failed.
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if !Secrets.Verify(user.Password, reqData.Password) || !Secrets.Verify(user.Pin, reqData.Pin) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Update last login time
	user.LastLogin = time.Now()
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}

	loginTracking := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: ip,
		Device:    c.Get("User-Agent"),
		Timestamp: time.Now(),
	}
	if err := db.Create(&loginTracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	user.Sanitize()

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func LoginHistoryList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&models.LoginTracking{}).
		Where("user_id = ? AND is_deleted = false", userId).
		Count(&total)

	var history []models.LoginTracking
	if err := db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("timestamp DESC").
		Offset(offset).
		Limit(limit).
		Find(&history).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch login history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login history fetched!", fiber.Map{
		"history": history,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// SetCost aligns the bcrypt cost with configuration at startup.
func SetCost() {
	Secrets = credentials.NewBcryptVerifier(config.AppConfig.SaltRound)
}
