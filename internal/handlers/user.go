package handlers

import (
	"errors"
	"time"

	"hope-backend/internal/auth"
	"hope-backend/internal/models"
	"hope-backend/internal/store"
	"hope-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
)

// Register creates a new account. Password and confirmation must
// match and the email must be unused.
func Register(users store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request")
		}
		if err := validate.Struct(req); err != nil {
			return badRequest(c, msgRequiredField)
		}
		if req.Password != req.PasswordConfirmation {
			return badRequest(c, "Passwords do not match")
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return internalError(c, "Unable to register, please try again later!")
		}

		user, err := users.CreateUser(c.Context(), req.Name, req.Email, hash)
		if errors.Is(err, store.ErrEmailTaken) {
			return conflict(c, "Email already exists!")
		}
		if err != nil {
			return internalError(c, "Unable to register, please try again later!")
		}

		return success(c, fiber.StatusCreated, fiber.Map{
			"msg": "Registration success!",
			"user": fiber.Map{
				"id":         user.ID,
				"email":      user.Email,
				"created_at": user.CreatedAt,
			},
		})
	}
}

// SignIn checks credentials and sets the jwt session cookie.
func SignIn(users store.UserStore, tokens *auth.TokenManager, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SignInRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request")
		}
		if err := validate.Struct(req); err != nil {
			return badRequest(c, msgRequiredField)
		}

		user, err := users.UserByEmail(c.Context(), req.Email)
		if errors.Is(err, store.ErrNotFound) {
			return unauthorized(c, "User not found!")
		}
		if err != nil {
			return internalError(c, "Unable to login, please try again later!")
		}
		if !auth.VerifyPassword(req.Password, user.Password) {
			return unauthorized(c, "Invalid email or password!")
		}

		token, err := tokens.Issue(user.ID)
		if err != nil {
			return internalError(c, "Unable to login, please try again later!")
		}

		c.Cookie(&fiber.Cookie{
			Name:     "jwt",
			Value:    token,
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HTTPOnly: true,
			Secure:   true,
			SameSite: fiber.CookieSameSiteNoneMode,
		})

		return success(c, fiber.StatusOK, fiber.Map{
			"user": fiber.Map{
				"id":    user.ID,
				"email": user.Email,
			},
		})
	}
}

// VerifyToken runs behind the auth gate and just echoes the resolved user.
func VerifyToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)
		return success(c, fiber.StatusOK, fiber.Map{
			"user": fiber.Map{
				"id":    user.ID,
				"email": user.Email,
			},
		})
	}
}

// UploadAvatar replaces the caller's avatar with a single uploaded image.
func UploadAvatar(users store.UserStore, saver *upload.Saver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		form, err := c.MultipartForm()
		if err != nil {
			return badRequest(c, "Avatar image is required")
		}
		urls, err := saver.Save(form, "avatar", 1)
		if err != nil {
			return uploadError(c, err)
		}
		if len(urls) == 0 {
			return badRequest(c, "Avatar image is required")
		}

		if err := users.SetAvatar(c.Context(), user.ID, &urls[0]); err != nil {
			return internalError(c, "Unable to upload avatar, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{
			"msg":        "Successfully uploaded avatar",
			"avatar_url": urls[0],
		})
	}
}

// DeleteAvatar clears the caller's avatar URL.
func DeleteAvatar(users store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)
		if err := users.SetAvatar(c.Context(), user.ID, nil); err != nil {
			return internalError(c, "Unable to remove avatar, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{"msg": "Successfully removed avatar"})
	}
}

// UpdateMe updates the caller's name and/or email.
func UpdateMe(users store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		var req models.UpdateMeRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request")
		}
		if req.Name == nil && req.Email == nil {
			return badRequest(c, msgRequiredField)
		}

		updated, err := users.UpdateUser(c.Context(), user.ID, req.Name, req.Email)
		if errors.Is(err, store.ErrEmailTaken) {
			return conflict(c, "Email already exists!")
		}
		if err != nil {
			return internalError(c, "Unable to update profile, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{"user": updated})
	}
}

// UpdatePassword verifies the current password before installing a new one.
func UpdatePassword(users store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		var req models.UpdatePasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request")
		}
		if err := validate.Struct(req); err != nil {
			return badRequest(c, msgRequiredField)
		}
		if req.Password != req.PasswordConfirmation {
			return badRequest(c, "Passwords do not match")
		}
		if !auth.VerifyPassword(req.CurrentPassword, user.Password) {
			return unauthorized(c, "Your current password is wrong!")
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return internalError(c, "Unable to update password, please try again later!")
		}
		if err := users.UpdatePassword(c.Context(), user.ID, hash); err != nil {
			return internalError(c, "Unable to update password, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{"msg": "Password updated successfully!"})
	}
}

func uploadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, upload.ErrTooManyFiles),
		errors.Is(err, upload.ErrFileTooLarge),
		errors.Is(err, upload.ErrNotImage):
		return badRequest(c, err.Error())
	default:
		return internalError(c, "Unable to save the uploaded file, please try again later!")
	}
}
