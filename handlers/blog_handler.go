package handlers

import (
	"errors"

	"github.com/sananasgarov/NummixAzBackend/config"
	"github.com/sananasgarov/NummixAzBackend/models"
	"github.com/sananasgarov/NummixAzBackend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /blogs (public)
//
// Ordered by the user-supplied date string, newest first — not by creation
// time.
func ListBlogPosts(c *fiber.Ctx) error {
	var posts []models.BlogPost
	if err := config.DB.Order("date DESC").Find(&posts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), nil)
	}
	return c.JSON(posts)
}

// GET /blogs/:id (public)
func GetBlogPostByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var post models.BlogPost
	if err := config.DB.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "blog not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), nil)
	}
	return c.JSON(post)
}

// POST /blogs (auth)
func CreateBlogPost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", nil)
	}

	if err := config.DB.Create(&post).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// PUT /blogs/:id (auth, partial update)
func UpdateBlogPost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post models.BlogPost
	if err := config.DB.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), nil)
	}

	if err := c.BodyParser(&post); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", nil)
	}

	if err := config.DB.Save(&post).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	return c.JSON(post)
}

// DELETE /blogs/:id (auth)
func DeleteBlogPost(c *fiber.Ctx) error {
	id := c.Params("id")

	result := config.DB.Delete(&models.BlogPost{}, "id = ?", id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, result.Error.Error(), nil)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "deleted", nil)
}
