// Package server exposes the export pipeline over HTTP.
package server

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/ukaji3/curvegen-go/pkg/curvegen"
)

// ============================================================
// Server
// ============================================================

// Config configures the HTTP server.
type Config struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string
	// Options control the xlsx layout of /export responses.
	Options curvegen.Options
	// Logger receives handler logs. Nil means log.Default().
	Logger *log.Logger
	// AccessLog enables the per-request access log line.
	AccessLog bool
}

// Server serves /rows and /export.
type Server struct {
	app *fiber.App
	cfg Config
	log *log.Logger
	now func() time.Time
}

// New creates a server with routes and middleware installed.
func New(cfg Config) *Server {
	l := cfg.Logger
	if l == nil {
		l = log.Default()
	}

	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:   "curvegen",
			BodyLimit: 8 * 1024 * 1024,
		}),
		cfg: cfg,
		log: l.WithPrefix("server"),
		now: time.Now,
	}

	s.app.Use(recover.New())
	if cfg.AccessLog {
		s.app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "15:04:05",
			TimeZone:   "Local",
		}))
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	s.app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	s.app.Post("/rows", s.handleRows)
	s.app.Post("/export", s.handleExport)
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until the app is shut down.
func (s *Server) Listen() error {
	s.log.Info("Starting server", "addr", s.cfg.Addr, "mode", s.cfg.Options.Mode)
	return s.app.Listen(s.cfg.Addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
