package v1

import (
	"dmless/internal/delivery/http/handler"
	"dmless/internal/delivery/http/middleware"
	"dmless/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	AuthMiddleware *middleware.AuthMiddleware

	Auth      *handler.AuthHandler
	Apply     *handler.ApplyHandler
	Jobs      *handler.JobsHandler
	Dashboard *handler.DashboardHandler
	Feed      *ws.Handler
}

// Register mounts the v1 API. The candidate flow is public; everything a
// recruiter touches sits behind the bearer-token middleware. The websocket
// feed authenticates itself from the query string instead.
func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	h.Auth.RegisterRoutes(r.Group("/auth"))
	h.Apply.RegisterRoutes(r)

	if h.Feed != nil {
		r.Get("/ws/dashboard", h.Feed.HandleDashboardWS)
	}

	protected := r.Group("", h.AuthMiddleware.Middleware())
	h.Jobs.RegisterRoutes(protected.Group("/jobs"))
	h.Dashboard.RegisterRoutes(protected.Group("/dashboard"))
}
