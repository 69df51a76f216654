package handlers

import (
	"errors"

	"github.com/sananasgarov/NummixAzBackend/config"
	"github.com/sananasgarov/NummixAzBackend/models"
	"github.com/sananasgarov/NummixAzBackend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /team (public)
func ListTeamMembers(c *fiber.Ctx) error {
	var members []models.TeamMember
	if err := config.DB.Find(&members).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), nil)
	}
	return c.JSON(members)
}

// POST /team (auth)
func CreateTeamMember(c *fiber.Ctx) error {
	var member models.TeamMember
	if err := c.BodyParser(&member); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", nil)
	}

	if err := config.DB.Create(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// PUT /team/:id (auth, partial update)
func UpdateTeamMember(c *fiber.Ctx) error {
	id := c.Params("id")

	var member models.TeamMember
	if err := config.DB.First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), nil)
	}

	// Parsing into the loaded row only overwrites fields present in the
	// payload, so absent fields keep their stored values.
	if err := c.BodyParser(&member); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", nil)
	}

	if err := config.DB.Save(&member).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	return c.JSON(member)
}

// DELETE /team/:id (auth)
func DeleteTeamMember(c *fiber.Ctx) error {
	id := c.Params("id")

	result := config.DB.Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, result.Error.Error(), nil)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "deleted", nil)
}
