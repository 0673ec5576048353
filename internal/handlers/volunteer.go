package handlers

import (
	"errors"

	"hope-backend/internal/models"
	"hope-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// CreateVolunteerForm is public; signing up to volunteer needs no account.
func CreateVolunteerForm(volunteers store.VolunteerStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateVolunteerRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request")
		}
		if err := validate.Struct(req); err != nil {
			return badRequest(c, msgRequiredField)
		}

		form, err := volunteers.CreateVolunteer(c.Context(), req)
		if err != nil {
			return internalError(c, "Unable to create the volunteer form, please try again later!")
		}
		return success(c, fiber.StatusCreated, fiber.Map{"volunteer_form": form})
	}
}

func GetAllVolunteerForms(volunteers store.VolunteerStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		forms, err := volunteers.Volunteers(c.Context())
		if err != nil {
			return internalError(c, "Unable to get all the volunteer forms, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{"volunteer_forms": forms})
	}
}

func GetVolunteerForm(volunteers store.VolunteerStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid volunteer form id")
		}

		form, err := volunteers.VolunteerByID(c.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return notFound(c, "Unable to find the volunteer form")
		}
		if err != nil {
			return internalError(c, "Unable to get the volunteer form, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{"volunteer_form": form})
	}
}
