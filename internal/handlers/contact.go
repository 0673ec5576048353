package handlers

import (
	"errors"

	"hope-backend/internal/models"
	"hope-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// CreateContactForm is public; anyone can reach out.
func CreateContactForm(contacts store.ContactStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateContactRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request")
		}
		if err := validate.Struct(req); err != nil {
			return badRequest(c, msgRequiredField)
		}

		form, err := contacts.CreateContact(c.Context(), req)
		if err != nil {
			return internalError(c, "Unable to create the contact form, please try again later!")
		}
		return success(c, fiber.StatusCreated, fiber.Map{"contact_form": form})
	}
}

func GetAllContactForms(contacts store.ContactStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		forms, err := contacts.Contacts(c.Context())
		if err != nil {
			return internalError(c, "Unable to get all the contact forms, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{"contact_forms": forms})
	}
}

func GetContactForm(contacts store.ContactStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid contact form id")
		}

		form, err := contacts.ContactByID(c.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return notFound(c, "Unable to find the contact form")
		}
		if err != nil {
			return internalError(c, "Unable to find the contact form, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{"contact_form": form})
	}
}
