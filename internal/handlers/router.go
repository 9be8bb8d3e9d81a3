package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alfredoptarigan/ats-screener/internal/services"
)

type Dependencies struct {
	Pool     services.AnalysisPool
	Uploads  services.UploadService
	Accounts services.AccountService
	Chat     services.ChatResponder
	Sessions *session.Store

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// AccessLog toggles the per-request access log line.
	AccessLog    bool
}

// NewApp builds the Fiber application with every route registered.
func NewApp(deps Dependencies) *fiber.App {
	analyzeHandler := NewAnalyzeHandler(deps.Pool, deps.Uploads, deps.Accounts)
	authHandler := NewAuthHandler(deps.Accounts, deps.Sessions)
	dashboardHandler := NewDashboardHandler(deps.Accounts)
	chatHandler := NewChatHandler(deps.Chat)

	app := fiber.New(fiber.Config{
		AppName:      "ATS Resume Screener API",
		ReadTimeout:  deps.ReadTimeout,
		WriteTimeout: deps.WriteTimeout,
		// Leave room for the multipart envelope; ReadResume enforces the file limit.
		BodyLimit:    int(deps.Uploads.MaxFileSize()) + 1<<20,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestContext())
	if deps.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	requireLogin := RequireLogin(deps.Sessions)

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/signup", authHandler.HandleSignup)
	api.Post("/login", authHandler.HandleLogin)
	api.Post("/logout", authHandler.HandleLogout)
	api.Get("/logout", authHandler.HandleLogout)
	api.Get("/dashboard", requireLogin, dashboardHandler.HandleDashboard)
	api.Post("/dashboard/analyze", requireLogin, analyzeHandler.HandleDashboardAnalyze)
	api.Post("/chat", chatHandler.HandleChat)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ATS Resume Screener API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"POST /api/v1/signup",
				"POST /api/v1/login",
				"GET|POST /api/v1/logout",
				"GET /api/v1/dashboard",
				"POST /api/v1/dashboard/analyze",
				"POST /api/v1/chat",
				"GET /metrics",
			},
		})
	})

	return app
}

// NewSessionStore returns the cookie-backed session store used for login.
func NewSessionStore(cookieName string, expiration time.Duration, secure bool) *session.Store {
	return session.New(session.Config{
		Expiration:     expiration,
		KeyLookup:      "cookie:" + cookieName,
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
