package handlers

import (
	"errors"

	"github.com/sananasgarov/NummixAzBackend/config"
	"github.com/sananasgarov/NummixAzBackend/dto"
	"github.com/sananasgarov/NummixAzBackend/middleware"
	"github.com/sananasgarov/NummixAzBackend/models"
	"github.com/sananasgarov/NummixAzBackend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// POST /api/auth/register
//
// Registration is permanently closed: the admin roster is provisioned
// out-of-band and no new accounts can be created through the API.
func Register(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"success": false,
		"message": "admin registration is closed, no new admins can be created",
	})
}

// POST /api/auth/login
func Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", nil)
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "email and password are required", validationErrors)
	}

	// Unknown email and wrong password return the same body so the
	// endpoint cannot be used to enumerate accounts.
	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "email or password is incorrect", nil)
		}
		logrus.WithError(err).Error("login: account lookup failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred during login", nil)
	}

	if !utils.CheckPassword(admin.PasswordHash, req.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "email or password is incorrect", nil)
	}

	token, _, err := utils.GenerateSessionToken(admin)
	if err != nil {
		logrus.WithError(err).Error("login: token generation failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred during login", nil)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "login successful",
		"token":   token,
		"user":    dto.NewAdminSummary(admin),
	})
}

// POST /api/auth/check-email
func CheckEmail(c *fiber.Ctx) error {
	var req dto.CheckEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", nil)
	}

	var count int64
	if err := config.DB.Model(&models.Admin{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		logrus.WithError(err).Error("check-email: lookup failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred", nil)
	}

	return c.JSON(fiber.Map{"exists": count > 0})
}

// GET /api/auth/verify
//
// Requires a bearer token. Unlike token verification itself, this endpoint
// re-checks that the account still exists.
func VerifyToken(c *fiber.Ctx) error {
	claims, ok := middleware.GetSessionClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var admin models.Admin
	if err := config.DB.First(&admin, claims.AdminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		logrus.WithError(err).Error("verify: account lookup failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred", nil)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    dto.NewAdminSummary(admin),
	})
}
