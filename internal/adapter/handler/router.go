package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meeting-minutes-team/meeting-minutes/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	minutesHandler *MinutesHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, minutesHandler *MinutesHandler) *Router {
	return &Router{
		cfg:            cfg,
		minutesHandler: minutesHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	e.GET("/", rt.minutesHandler.ShowForm)
	e.POST("/", rt.minutesHandler.Process)
	e.GET("/download/:id/:filename", rt.minutesHandler.Download)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
