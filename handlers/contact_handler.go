package handlers

import (
	"sync"

	"github.com/sananasgarov/NummixAzBackend/dto"
	"github.com/sananasgarov/NummixAzBackend/utils"
	"github.com/sananasgarov/NummixAzBackend/utils/mailer"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// POST /api/contact
//
// Relays a contact-form submission as two independent emails, dispatched in
// parallel: a notification to the configured admin address and an auto-reply
// to the submitter. Either leg failing surfaces as one generic failure.
func Contact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", nil)
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "please fill in all required fields", validationErrors)
	}

	msg := mailer.ContactMessage{
		FullName:    req.FullName,
		Email:       req.Email,
		CompanyName: req.CompanyName,
		Message:     req.Message,
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = mail.SendContactNotification(msg)
	}()
	go func() {
		defer wg.Done()
		errs[1] = mail.SendContactAutoReply(req.Email, req.FullName)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			logrus.WithError(err).Error("contact: email dispatch failed")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "a system error occurred, please try again", nil)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "your message has been sent", nil)
}
