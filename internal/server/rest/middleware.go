package rest

import (
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/shared"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ctxKey string

const (
	usernameKey  ctxKey = "username"
	requestIDKey ctxKey = "request_id"
)

// requestID keeps the caller's X-Request-ID or makes one up, and echoes it
// back.
func (s *Server) requestID(c *fiber.Ctx) error {
	id := c.Get(common.RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals(requestIDKey, id)
	c.Set(common.RequestIDHeader, id)
	return c.Next()
}

func (s *Server) accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = statusFor(err)
	}

	s.logger.Info(c.UserContext(), "request",
		"request_id", c.Locals(requestIDKey),
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration", time.Since(start).String(),
	)
	return err
}

// requireAuth rejects requests without a valid bearer token and stores the
// token's username for the handlers.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get(common.AuthorizationHeader)
	if header == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}
	token := common.BearerToken(header)
	if token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, shared.ErrorInvalidAuthHeaderFormat.Error())
	}

	username, err := s.users.Verify(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, shared.ErrorInvalidToken.Error())
	}

	c.Locals(usernameKey, username)
	return c.Next()
}

func username(c *fiber.Ctx) string {
	name, _ := c.Locals(usernameKey).(string)
	return name
}
