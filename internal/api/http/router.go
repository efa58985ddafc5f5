package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/civiclens/report-service/internal/api/http/handlers"
	"github.com/civiclens/report-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Uploads        *handlers.UploadsHandler
	Complaints     *handlers.ComplaintsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	protected.Post("/uploads", cfg.Uploads.Upload)

	complaints := protected.Group("/complaints")
	complaints.Post("", cfg.Complaints.Submit)
	complaints.Get("", cfg.Complaints.Feed)
	complaints.Get("/mine", cfg.Complaints.Mine)
	complaints.Get("/stats", cfg.Complaints.Stats)
	complaints.Get("/:id", cfg.Complaints.Get)
	complaints.Post("/:id/upvote", cfg.Complaints.Upvote)

	adminOnly := complaints.Group("", auth.RequireAdmin())
	adminOnly.Patch("/:id/status", cfg.Complaints.UpdateStatus)
	adminOnly.Post("/:id/verification", cfg.Complaints.BeginVerification)
	adminOnly.Get("/:id/verification", cfg.Complaints.VerificationProgress)
	adminOnly.Delete("/:id/verification", cfg.Complaints.CancelVerification)
	adminOnly.Post("/:id/resolve", cfg.Complaints.Resolve)
}
