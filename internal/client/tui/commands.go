package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/gophnotes/internal/client/app"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/client/workspace"
)

func loadSession(ctx context.Context, d *app.Deps) tea.Cmd {
	return func() tea.Msg {
		return sessionLoadedMsg{err: d.Session.Load(ctx)}
	}
}

func submitAuth(ctx context.Context, d *app.Deps, username, password string) tea.Cmd {
	return func() tea.Msg {
		rctx, cancel := d.RequestContext(ctx)
		defer cancel()
		return authDoneMsg{err: d.Auth.Submit(rctx, username, password)}
	}
}

func loadCollections(ctx context.Context, d *app.Deps) tea.Cmd {
	return func() tea.Msg {
		rctx, cancel := d.RequestContext(ctx)
		defer cancel()
		return loadedMsg{collections: d.Loader.Load(rctx)}
	}
}

func createNote(ctx context.Context, d *app.Deps, folder *models.ID, tags []models.ID) tea.Cmd {
	return func() tea.Msg {
		rctx, cancel := d.RequestContext(ctx)
		defer cancel()
		n, err := d.Notes.Create(rctx, folder, tags)
		return createdMsg{note: n, err: err}
	}
}

func updateNote(ctx context.Context, d *app.Deps, t workspace.Ticket, u models.NoteUpdate) tea.Cmd {
	return func() tea.Msg {
		rctx, cancel := d.RequestContext(ctx)
		defer cancel()
		n, err := d.Notes.Update(rctx, t.ID, u)
		return updatedMsg{ticket: t, note: n, err: err}
	}
}

func deleteNote(ctx context.Context, d *app.Deps, id models.ID) tea.Cmd {
	return func() tea.Msg {
		rctx, cancel := d.RequestContext(ctx)
		defer cancel()
		return deletedMsg{id: id, err: d.Notes.Delete(rctx, id)}
	}
}

func logout(ctx context.Context, d *app.Deps) tea.Cmd {
	return func() tea.Msg {
		if err := d.Session.Logout(ctx); err != nil {
			d.Logger.Error(ctx, "logout failed", "err", err)
		}
		return nil
	}
}
