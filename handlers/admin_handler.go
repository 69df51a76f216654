package handlers

import (
	"github.com/sananasgarov/NummixAzBackend/config"
	"github.com/sananasgarov/NummixAzBackend/dto"
	"github.com/sananasgarov/NummixAzBackend/models"
	"github.com/sananasgarov/NummixAzBackend/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/admins
//
// Unauthenticated, matching the deployed frontend. See DESIGN.md before
// adding a token check here.
func ListAdmins(c *fiber.Ctx) error {
	var admins []models.Admin
	if err := config.DB.Order("id ASC").Find(&admins).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve admins", err.Error())
	}

	summaries := make([]dto.AdminSummary, 0, len(admins))
	for i := range admins {
		summaries = append(summaries, dto.NewAdminSummary(admins[i]))
	}

	return c.JSON(summaries)
}

// DELETE /api/admins/:id
func DeleteAdmin(c *fiber.Ctx) error {
	id := c.Params("id")

	result := config.DB.Delete(&models.Admin{}, "id = ?", id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete admin", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "admin not found", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "admin deleted successfully", nil)
}
