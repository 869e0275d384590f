package api

import (
	"log"

	"github.com/beatburn/server/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	var credentials credentialsInput
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Login(credentials.Username, credentials.Password)
	if err != nil {
		return serviceError(c, err)
	}

	token, err := handler.buildToken(user, authTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	handler.setActiveProfile(user)
	return c.JSON(fiber.Map{"token": token, "user": user})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	if err := handler.profileStore.Clear(); err != nil {
		log.Printf("api: clear active profile: %v", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

// setActiveProfile makes the user the on-disk active profile.
func (handler *Handler) setActiveProfile(user models.User) {
	if err := handler.profileStore.Save(user); err != nil {
		log.Printf("api: save active profile: %v", err)
	}
}

// mirrorActiveProfile re-saves the active profile when the row that changed
// is the one currently stored. Any other user's change leaves it alone.
func (handler *Handler) mirrorActiveProfile(user models.User) {
	active, err := handler.profileStore.Load()
	if err != nil || active.ID != user.ID {
		return
	}
	handler.setActiveProfile(user)
}
