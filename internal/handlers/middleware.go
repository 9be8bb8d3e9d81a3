package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/logger"
)

const (
	sessionUserIDKey   = "user_id"
	sessionUserNameKey = "user_name"

	localsUserID   = "user_id"
	localsUserName = "user_name"
)

// RequestContext attaches a logger carrying the request id and path to the
// request's user context. It must run after the requestid middleware.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := logger.WithFields(c.UserContext(),
			zap.String("request_id", utils.CopyString(c.GetRespHeader(fiber.HeaderXRequestID))),
			zap.String("path", utils.CopyString(c.Path())),
		)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// RequireLogin rejects requests without a logged-in session with 401.
func RequireLogin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load session")
		}

		raw, _ := sess.Get(sessionUserIDKey).(string)
		userID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not logged in",
			})
		}

		name, _ := sess.Get(sessionUserNameKey).(string)
		c.Locals(localsUserID, userID)
		c.Locals(localsUserName, name)
		c.SetUserContext(logger.WithFields(c.UserContext(), zap.String("user_id", raw)))

		return c.Next()
	}
}

// CurrentUserID returns the id stored by RequireLogin.
func CurrentUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(localsUserID).(uuid.UUID)
	return id
}
