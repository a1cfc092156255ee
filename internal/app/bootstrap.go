package app

import (
	"fmt"
	"strings"

	"provider-match/internal/config"
	"provider-match/internal/delivery/http/middleware"
	"provider-match/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f)
	routes.Register(f, c.Config, c.DB)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	app.Use(middleware.NewAccessLogMiddleware(nil).Middleware())
	app.Use(middleware.NewErrorMiddleware().Middleware())
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
