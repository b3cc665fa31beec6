package rest

import (
	"errors"
	"strconv"

	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/shared"
	"github.com/gofiber/fiber/v2"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps store and service errors to HTTP status codes.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, shared.ErrorValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, shared.ErrorInvalidLoginPassword), errors.Is(err, shared.ErrorUnknownUser):
		return fiber.StatusUnauthorized
	case errors.Is(err, shared.ErrorLoginAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, shared.ErrorNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		s.logger.Error(c.UserContext(), msg, "request_id", c.Locals(requestIDKey))
		msg = "internal error"
	}
	return c.Status(code).JSON(errorResponse{Error: msg})
}

func (s *Server) credentials(c *fiber.Ctx) (models.Credentials, error) {
	var req models.Credentials
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return req, fiber.NewError(fiber.StatusBadRequest, "username and password are required")
	}
	return req, nil
}

func (s *Server) login(c *fiber.Ctx) error {
	req, err := s.credentials(c)
	if err != nil {
		return err
	}

	token, err := s.users.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(models.TokenResponse{Token: token})
}

func (s *Server) signup(c *fiber.Ctx) error {
	req, err := s.credentials(c)
	if err != nil {
		return err
	}

	token, err := s.users.Register(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	s.logger.Info(c.UserContext(), "Registered", "username", req.Username)
	return c.Status(fiber.StatusCreated).JSON(models.TokenResponse{Token: token})
}

func (s *Server) listNotes(c *fiber.Ctx) error {
	notes, err := s.notes.Notes(c.UserContext(), username(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"notes": notes})
}

func (s *Server) createNote(c *fiber.Ctx) error {
	var req models.NewNote
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	n, err := s.notes.CreateNote(c.UserContext(), username(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(n)
}

func (s *Server) updateNote(c *fiber.Ctx) error {
	id, err := noteID(c)
	if err != nil {
		return err
	}
	var req models.NoteUpdate
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	n, err := s.notes.UpdateNote(c.UserContext(), username(c), id, req)
	if err != nil {
		return err
	}
	return c.JSON(n)
}

func (s *Server) deleteNote(c *fiber.Ctx) error {
	id, err := noteID(c)
	if err != nil {
		return err
	}
	if err := s.notes.DeleteNote(c.UserContext(), username(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) listFolders(c *fiber.Ctx) error {
	folders, err := s.notes.Folders(c.UserContext(), username(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"folders": folders})
}

func (s *Server) listTags(c *fiber.Ctx) error {
	tags, err := s.notes.Tags(c.UserContext(), username(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tags": tags})
}

func noteID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusNotFound, "no such note")
	}
	return id, nil
}
