package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
)

// ErrEmptyUpdate is returned by Update when there is nothing to send.
var ErrEmptyUpdate = errors.New("update has no fields")

// NoteService issues note mutations. It never touches client-side state;
// callers apply the returned records.
type NoteService interface {
	Create(ctx context.Context, folderID *models.ID, tags []models.ID) (models.Note, error)
	Update(ctx context.Context, id models.ID, u models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, id models.ID) error
}

type noteService struct {
	client client.Client
	logger logging.Logger
}

func NewNoteService(c client.Client, logger logging.Logger) NoteService {
	return &noteService{client: c, logger: logger}
}

// Create posts an untitled, empty note in the given folder with the given tags.
func (s *noteService) Create(ctx context.Context, folderID *models.ID, tags []models.ID) (models.Note, error) {
	if tags == nil {
		tags = []models.ID{}
	}
	n, err := s.client.CreateNote(ctx, models.NewNote{
		Title:    models.DefaultNoteTitle,
		Content:  "",
		FolderID: folderID,
		Tags:     tags,
	})
	if err != nil {
		s.logger.Error(ctx, "create note failed", "err", err)
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}
	s.logger.Info(ctx, "note created", "id", n.ID.String())
	return n, nil
}

func (s *noteService) Update(ctx context.Context, id models.ID, u models.NoteUpdate) (models.Note, error) {
	if u.IsEmpty() {
		return models.Note{}, ErrEmptyUpdate
	}
	n, err := s.client.UpdateNote(ctx, id, u)
	if err != nil {
		s.logger.Error(ctx, "update note failed", "id", id.String(), "err", err)
		return models.Note{}, fmt.Errorf("update note %s: %w", id, err)
	}
	return n, nil
}

func (s *noteService) Delete(ctx context.Context, id models.ID) error {
	if err := s.client.DeleteNote(ctx, id); err != nil {
		s.logger.Error(ctx, "delete note failed", "id", id.String(), "err", err)
		// The server answered, so the delete is complete whatever it said.
		if client.Responded(err) {
			return nil
		}
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	s.logger.Info(ctx, "note deleted", "id", id.String())
	return nil
}
