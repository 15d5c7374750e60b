package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/samadhan-service/internal/api/http/handlers"
	"github.com/spec-kit/samadhan-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Complaints     *handlers.ComplaintsHandler
	Feedback       *handlers.FeedbackHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/admin/login", cfg.Users.AdminLogin)
	authGroup.Post("/anonymous", cfg.Users.AnonymousToken)

	// Public track surface; submissions and upvotes accept anonymous
	// identity tokens, so auth is optional there.
	complaints := app.Group("/complaints", cfg.AuthMiddleware.HandleOptional)
	complaints.Post("", cfg.Complaints.Submit)
	complaints.Post("/check-duplicates", cfg.Complaints.CheckDuplicates)
	complaints.Get("", cfg.Complaints.List)
	complaints.Get("/:id", cfg.Complaints.Get)
	complaints.Post("/:id/upvote", cfg.Complaints.Upvote)
	complaints.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Complaints.Delete)

	app.Get("/me/complaints", cfg.AuthMiddleware.Handle, cfg.Complaints.ListOwn)

	app.Post("/feedback", cfg.AuthMiddleware.HandleOptional, cfg.Feedback.Submit)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/complaints", cfg.Admin.ListComplaints)
	admin.Patch("/complaints/:id/status", cfg.Admin.UpdateStatus)
	admin.Post("/complaints/:id/allocate", cfg.Admin.AllocateDepartment)
	admin.Get("/feedback", cfg.Admin.ListFeedback)
}
