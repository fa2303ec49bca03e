package routes

import (
	"log"

	"dmless/internal/delivery/http/handler"
	"dmless/internal/delivery/http/middleware"
	v1 "dmless/internal/delivery/http/routes/v1"
	"dmless/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires every HTTP surface onto the fiber app: health, the public
// candidate flow, the authenticated recruiter API and the dashboard feed.
type Registry struct {
	logger *log.Logger

	authMw *middleware.AuthMiddleware

	health    *handler.HealthHandler
	auth      *handler.AuthHandler
	apply     *handler.ApplyHandler
	jobs      *handler.JobsHandler
	dashboard *handler.DashboardHandler
	feed      *ws.Handler
}

func NewRegistry(
	logger *log.Logger,
	authMw *middleware.AuthMiddleware,
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	apply *handler.ApplyHandler,
	jobs *handler.JobsHandler,
	dashboard *handler.DashboardHandler,
	feed *ws.Handler,
) *Registry {
	return &Registry{
		logger:    logger,
		authMw:    authMw,
		health:    health,
		auth:      auth,
		apply:     apply,
		jobs:      jobs,
		dashboard: dashboard,
		feed:      feed,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(r.logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(r.logger).Middleware())

	r.health.RegisterRoutes(app)

	v1.Register(app.Group("/v1"), v1.Handlers{
		AuthMiddleware: r.authMw,
		Auth:           r.auth,
		Apply:          r.apply,
		Jobs:           r.jobs,
		Dashboard:      r.dashboard,
		Feed:           r.feed,
	})
}
