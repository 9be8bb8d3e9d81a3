package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/logger"
	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/services"
)

type AuthHandler struct {
	accounts services.AccountService
	sessions *session.Store
}

func NewAuthHandler(accounts services.AccountService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
	}
}

// HandleSignup handles POST /signup (form or JSON body).
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	user, err := h.accounts.Signup(c.UserContext(), req)
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Email already exists!",
		})
	case err != nil:
		logger.Error(c.UserContext(), "❌ Signup failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
	}

	return c.Status(fiber.StatusCreated).JSON(toUserResponse(user))
}

// HandleLogin handles POST /login and starts a session.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	user, err := h.accounts.Login(c.UserContext(), req)
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid Login! Email or Password incorrect.",
		})
	case err != nil:
		logger.Error(c.UserContext(), "❌ Login failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in")
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to start session")
	}
	if err := sess.Regenerate(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to start session")
	}

	sess.Set(sessionUserIDKey, user.ID.String())
	sess.Set(sessionUserNameKey, user.Name)
	if err := sess.Save(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save session")
	}

	return c.JSON(toUserResponse(user))
}

// HandleLogout handles GET|POST /logout.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load session")
	}

	if err := sess.Destroy(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to end session")
	}

	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

func toUserResponse(user *models.User) models.UserResponse {
	return models.UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}
