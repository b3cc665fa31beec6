package client

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
)

// Client is the notes backend API.
type Client interface {
	Login(ctx context.Context, username, password string) (string, error)
	Signup(ctx context.Context, username, password string) (string, error)

	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, n models.NewNote) (models.Note, error)
	UpdateNote(ctx context.Context, id models.ID, u models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, id models.ID) error

	ListFolders(ctx context.Context) ([]models.Folder, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
}

// TokenSource supplies the bearer token for each authenticated request.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }
