// Package rest serves the notes REST API over fiber.
package rest

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server/services"
	"github.com/dmitrijs2005/gophnotes/internal/server/store"
	"github.com/gofiber/fiber/v2"
)

type Server struct {
	address string
	users   *services.UserService
	notes   store.Repository
	logger  logging.Logger
	app     *fiber.App
}

func NewServer(address string, l logging.Logger, us *services.UserService, notes store.Repository) *Server {
	s := &Server{
		address: address,
		logger:  l.With("module", "rest_server"),
		users:   us,
		notes:   notes,
	}
	s.app = s.routes()
	return s
}

func (s *Server) routes() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	app.Use(s.requestID, s.accessLog)

	app.Post("/auth/login/", s.login)
	app.Post("/auth/signup/", s.signup)

	app.Get("/notes/", s.requireAuth, s.listNotes)
	app.Post("/notes/", s.requireAuth, s.createNote)
	app.Put("/notes/:id/", s.requireAuth, s.updateNote)
	app.Delete("/notes/:id/", s.requireAuth, s.deleteNote)
	app.Get("/folders/", s.requireAuth, s.listFolders)
	app.Get("/tags/", s.requireAuth, s.listTags)

	return app
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	if err := s.app.Shutdown(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return <-errCh
}
