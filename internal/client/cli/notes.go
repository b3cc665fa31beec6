package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/client/services"
)

var errNoNote = errors.New("no such note")

// List prints the notes that pass the current filter.
func (a *App) List(ctx context.Context) error {
	renderList(a.out, a.styles(), a.deps.Workspace)
	return nil
}

// Show prints one note and selects it. Without an id the selected note is
// shown.
func (a *App) Show(ctx context.Context, id string) error {
	n, err := a.resolve(id)
	if err != nil {
		return err
	}
	a.deps.Workspace.Select(n.ID)
	renderNote(a.out, a.styles(), a.deps.Workspace, n)
	return nil
}

// New creates an untitled note at the root and selects it.
func (a *App) New(ctx context.Context) error {
	rctx, cancel := a.deps.RequestContext(ctx)
	defer cancel()

	n, err := a.deps.Notes.Create(rctx, nil, nil)
	if err != nil {
		a.println("Error:", err)
		return err
	}
	a.deps.Workspace.ApplyCreated(n)
	a.printf("Created note [%s] %s\n", n.ID, n.DisplayTitle())
	return nil
}

// Edit asks for a new title and content. Nothing is sent until both prompts
// are answered, and only changed fields are sent.
func (a *App) Edit(ctx context.Context, id string) error {
	n, err := a.resolve(id)
	if err != nil {
		return err
	}
	a.deps.Workspace.Select(n.ID)

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s] (empty keeps it)", n.Title), a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content (empty keeps it)", a.out)
	if err != nil {
		return err
	}

	var u models.NoteUpdate
	if title != "" && title != n.Title {
		u.Title = &title
	}
	if content != "" && content != n.Content {
		u.Content = &content
	}
	if u.IsEmpty() {
		a.println("Nothing changed.")
		return nil
	}

	return a.update(ctx, n.ID, u)
}

// Rename changes only the title.
func (a *App) Rename(ctx context.Context, id, title string) error {
	n, err := a.resolve(id)
	if err != nil {
		return err
	}
	return a.update(ctx, n.ID, models.NoteUpdate{Title: &title})
}

func (a *App) update(ctx context.Context, id models.ID, u models.NoteUpdate) error {
	ws := a.deps.Workspace
	ticket := ws.BeginUpdate(id)

	rctx, cancel := a.deps.RequestContext(ctx)
	defer cancel()

	n, err := a.deps.Notes.Update(rctx, id, u)
	if err != nil {
		if errors.Is(err, services.ErrEmptyUpdate) {
			a.println("Nothing changed.")
			return nil
		}
		a.println("Error:", err)
		return err
	}

	if !ws.ApplyUpdated(ticket, n) {
		a.deps.Logger.Info(ctx, "dropped stale update response", "id", id.String())
		return nil
	}
	a.printf("Saved [%s] %s\n", n.ID, n.DisplayTitle())
	return nil
}

// Delete removes a note on the server and then locally.
func (a *App) Delete(ctx context.Context, id string) error {
	rctx, cancel := a.deps.RequestContext(ctx)
	defer cancel()

	nid := models.ID(id)
	if err := a.deps.Notes.Delete(rctx, nid); err != nil {
		a.println("Error:", err)
		return err
	}
	a.deps.Workspace.ApplyDeleted(nid)
	a.printf("Deleted [%s]\n", id)
	return nil
}

func (a *App) resolve(id string) (models.Note, error) {
	ws := a.deps.Workspace
	if id == "" {
		n, ok := ws.Selected()
		if !ok {
			a.println("No note selected. Pass an id.")
			return models.Note{}, errNoNote
		}
		return n, nil
	}

	n, ok := ws.Note(models.ID(id))
	if !ok {
		a.printf("No note with id %s.\n", id)
		return models.Note{}, errNoNote
	}
	return n, nil
}
