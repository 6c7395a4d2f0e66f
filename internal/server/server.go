// Package server exposes the core's entry points as an HTTP JSON API.
// It is a thin adapter: every state transition goes through the same
// store, session manager, and gate the CLI uses.
package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"todo/internal/app"
)

// Server wraps an Echo instance over the wired application.
type Server struct {
	app  *app.App
	echo *echo.Echo
}

// New builds the server with logging and panic recovery middleware and
// registers the routes.
func New(application *app.App) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{app: application, echo: e}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.POST("/login", s.login)
	s.echo.POST("/logout", s.logout)
	s.echo.GET("/session", s.currentSession)

	s.echo.GET("/tasks", s.listTasks)
	s.echo.POST("/tasks", s.createTask)
	s.echo.POST("/tasks/:id/toggle", s.toggleTask)
	s.echo.DELETE("/tasks/:id", s.deleteTask)

	s.echo.GET("/users", s.listUsers)
}

// Start runs the server on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler returns the underlying http.Handler (for tests).
func (s *Server) Handler() *echo.Echo {
	return s.echo
}
