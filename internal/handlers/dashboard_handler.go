package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/logger"
	"alfredoptarigan/ats-screener/internal/repositories"
	"alfredoptarigan/ats-screener/internal/services"
)

type DashboardHandler struct {
	accounts services.AccountService
}

func NewDashboardHandler(accounts services.AccountService) *DashboardHandler {
	return &DashboardHandler{
		accounts: accounts,
	}
}

// HandleDashboard handles GET /dashboard.
func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	dashboard, err := h.accounts.Dashboard(c.UserContext(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not logged in",
			})
		}

		logger.Error(c.UserContext(), "❌ Failed to load dashboard", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	return c.JSON(dashboard)
}
