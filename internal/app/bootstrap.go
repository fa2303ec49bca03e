package app

import (
	"fmt"
	"log"
	"strings"

	"dmless/internal/config"
	"dmless/internal/delivery/http/handler"
	"dmless/internal/delivery/http/middleware"
	"dmless/internal/delivery/http/routes"
	"dmless/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, wires the routes and returns the app with
// a cleanup func for shutdown. The websocket hub starts here.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run()

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
		// resume PDFs arrive as multipart bodies
		BodyLimit: 10 * 1024 * 1024,
	})

	registry := routes.NewRegistry(
		c.Logger,
		middleware.NewAuthMiddleware(c.JWT),
		handler.NewHealthHandler(c.DB),
		handler.NewAuthHandler(c.Auth),
		handler.NewApplyHandler(c.Screening),
		handler.NewJobsHandler(c.Jobs, c.Dashboard),
		handler.NewDashboardHandler(c.Dashboard),
		ws.NewHandler(c.Hub, c.JWT, c.Logger),
	)
	registry.Register(f)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
