package handlers

import (
	"errors"
	"time"

	"github.com/sananasgarov/NummixAzBackend/config"
	"github.com/sananasgarov/NummixAzBackend/dto"
	"github.com/sananasgarov/NummixAzBackend/models"
	"github.com/sananasgarov/NummixAzBackend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const forgotPasswordReply = "if the email is registered, a reset code has been sent"

// POST /api/auth/forgot-password
//
// The response body is identical whether or not the account exists, so the
// endpoint cannot be used to enumerate registered emails.
func ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", nil)
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "please provide an email address", validationErrors)
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SuccessResponse(c, fiber.StatusOK, forgotPasswordReply, nil)
		}
		logrus.WithError(err).Error("forgot-password: account lookup failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred, please try again later", nil)
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		logrus.WithError(err).Error("forgot-password: code generation failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred, please try again later", nil)
	}

	// One live code per account: clear earlier unused requests before
	// storing the new one. Used and expired rows stay behind.
	if err := config.DB.Where("admin_id = ? AND used = ?", admin.ID, false).
		Delete(&models.PasswordReset{}).Error; err != nil {
		logrus.WithError(err).Error("forgot-password: clearing old codes failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred, please try again later", nil)
	}

	reset := models.PasswordReset{
		AdminID:   admin.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(models.ResetCodeTTL),
	}
	if err := config.DB.Create(&reset).Error; err != nil {
		logrus.WithError(err).Error("forgot-password: storing code failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred, please try again later", nil)
	}

	if err := mail.SendResetCodeEmail(admin.Email, admin.Name, code); err != nil {
		logrus.WithError(err).Error("forgot-password: sending code failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred, please try again later", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, forgotPasswordReply, nil)
}

// POST /api/auth/verify-reset-code
func VerifyResetCode(c *fiber.Ctx) error {
	var req dto.VerifyResetCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", nil)
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "email and code are required", validationErrors)
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		logrus.WithError(err).Error("verify-reset-code: account lookup failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred", nil)
	}

	reset, err := findActiveReset(admin.ID, req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "code is invalid or expired", nil)
		}
		logrus.WithError(err).Error("verify-reset-code: lookup failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred", nil)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "code verified",
		"resetId": reset.ResetID,
	})
}

// POST /api/auth/reset-password
//
// Re-validates email+code from scratch; the resetId returned by
// verify-reset-code is informational and not required here.
func ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", nil)
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		logrus.WithError(err).Error("reset-password: account lookup failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred, please try again", nil)
	}

	reset, err := findActiveReset(admin.ID, req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "code is invalid or expired", nil)
		}
		logrus.WithError(err).Error("reset-password: lookup failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred, please try again", nil)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		logrus.WithError(err).Error("reset-password: hashing failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred, please try again", nil)
	}

	// Consuming the code and storing the new hash happen together, so a
	// concurrent attempt with the same code cannot half-succeed.
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := reset.Consume(tx, time.Now()); err != nil {
			return err
		}
		return tx.Model(&models.Admin{}).Where("id = ?", admin.ID).
			Update("password_hash", hash).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrResetCodeUsed) || errors.Is(err, models.ErrResetCodeExpired) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "code is invalid or expired", nil)
		}
		logrus.WithError(err).Error("reset-password: update failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred, please try again", nil)
	}

	if err := mail.SendResetConfirmation(admin.Email, admin.Name); err != nil {
		logrus.WithError(err).Error("reset-password: confirmation email failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "an error occurred, please try again", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "your password has been updated", nil)
}

func findActiveReset(adminID uint, code string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := config.DB.
		Where("admin_id = ? AND code = ? AND used = ? AND expires_at > ?",
			adminID, code, false, time.Now()).
		First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}
