package handlers

import (
	"errors"
	"strings"

	"hope-backend/internal/auth"
	"hope-backend/internal/models"
	"hope-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// Protect is the auth gate in front of every protected route. It takes
// the token from the Authorization header, falling back to the jwt
// cookie, verifies it, and resolves the embedded id to a live user. A
// token whose user has since been deleted is rejected too.
func Protect(users store.UserStore, tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := ""
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
			token = authHeader[7:]
		}
		if token == "" {
			token = c.Cookies("jwt")
		}
		if token == "" {
			return unauthorized(c, "You are not logged in! Please log in to get access.")
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			return unauthorized(c, "Invalid token")
		}

		user, err := users.UserByID(c.Context(), userID)
		if errors.Is(err, store.ErrNotFound) {
			return unauthorized(c, "The user belonging to this token does not exist. Please try again.")
		}
		if err != nil {
			return internalError(c, "Unable to authenticate, please try again later!")
		}

		c.Locals("user", user)
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
