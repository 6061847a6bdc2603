package server

import (
	"context"
	"log"
	"strings"
	"time"

	"vendor-marketplace-be/internal/bootstrap"
	"vendor-marketplace-be/internal/config"
	"vendor-marketplace-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	// Initialize Fiber App
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.Upload.MaxBytes + 1024*1024, // proof upload plus form fields
		ErrorHandler: serverutils.ErrorHandler,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: allowCredentials(cfg.App.CorsAllowedOrigins),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Static
	app.Static("/uploads", cfg.Upload.Dir)

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("OK", fiber.Map{"status": "up"}))
	})

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

// allowCredentials is false for wildcard origins; fiber's cors refuses that combination.
func allowCredentials(origins string) bool {
	for _, o := range strings.Split(origins, ",") {
		if strings.TrimSpace(o) == "*" {
			return false
		}
	}
	return true
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// StartLimiterCleanup evicts idle rate-limit buckets until ctx is cancelled.
func (s *Server) StartLimiterCleanup(ctx context.Context) {
	if s.container.UploadLimiter == nil {
		return
	}
	ticker := time.NewTicker(time.Minute)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.container.UploadLimiter.Cleanup(3 * time.Minute)
			}
		}
	}()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.SubscriptionController.RegisterRoutes(api, c.JwtMiddleware)
	c.BookingController.RegisterRoutes(api, c.JwtMiddleware)
	c.CatalogController.RegisterRoutes(api, c.JwtMiddleware)
	c.PlanController.RegisterRoutes(api, c.JwtMiddleware)
	c.AdminController.RegisterRoutes(api, c.JwtMiddleware)
}
