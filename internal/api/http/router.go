package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Accounts       *handlers.AccountsHandler
	Jobs           *handlers.JobsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authGroup := app.Group("/auth")
	authGroup.Post("/users/register", cfg.Accounts.RegisterUser)
	authGroup.Post("/users/login", cfg.Accounts.LoginUser)
	authGroup.Post("/companies/register", cfg.Accounts.RegisterCompany)
	authGroup.Post("/companies/login", cfg.Accounts.LoginCompany)

	api := app.Group("/api")
	api.Get("/jobs", cfg.Jobs.ListJobs)
	api.Post("/get_jobs", cfg.Jobs.QueryJobs)
	api.Post("/jobs", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleCompany), cfg.Jobs.CreateJob)
}
