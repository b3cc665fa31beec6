package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/client/export"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
)

func (a *App) Folders(ctx context.Context) error {
	renderFolders(a.out, a.styles(), a.deps.Workspace)
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	renderTags(a.out, a.styles(), a.deps.Workspace)
	return nil
}

// FilterFolder narrows the list to one folder; "all" removes the filter.
func (a *App) FilterFolder(ctx context.Context, arg string) error {
	id := parseChoice(arg)
	a.deps.Workspace.SetFolder(id)
	return a.List(ctx)
}

// FilterTag narrows the list to one tag; "all" removes the filter.
func (a *App) FilterTag(ctx context.Context, arg string) error {
	id := parseChoice(arg)
	a.deps.Workspace.SetTag(id)
	return a.List(ctx)
}

func (a *App) Search(ctx context.Context, term string) error {
	a.deps.Workspace.SetSearch(term)
	return a.List(ctx)
}

func (a *App) ToggleTheme(ctx context.Context) error {
	t := a.deps.Workspace.ToggleTheme()
	a.println(a.styles().Title.Render(fmt.Sprintf("Theme: %s", t)))
	return nil
}

// SetTheme switches to a theme by name.
func (a *App) SetTheme(ctx context.Context, name string) error {
	t, err := models.ParseTheme(name)
	if err != nil {
		a.println("Error:", err)
		return err
	}
	a.deps.Workspace.SetTheme(t)
	a.println(a.styles().Title.Render(fmt.Sprintf("Theme: %s", t)))
	return nil
}

// Reload fetches notes, folders and tags again. Failed fetches show up as
// empty collections.
func (a *App) Reload(ctx context.Context) error {
	rctx, cancel := a.deps.RequestContext(ctx)
	defer cancel()

	c := a.deps.Loader.Load(rctx)
	a.deps.Workspace.SetCollections(c)
	a.printf("Loaded %d notes, %d folders, %d tags.\n", len(c.Notes), len(c.Folders), len(c.Tags))
	return nil
}

// Export writes the visible notes to dir.
func (a *App) Export(ctx context.Context, dir string) error {
	ws := a.deps.Workspace
	paths, err := export.Write(dir, ws.Visible(), ws.Folders(), ws.Tags())
	if err != nil {
		a.deps.Logger.Error(ctx, "export failed", "dir", dir, "err", err)
		a.println("Error:", err)
		return err
	}
	a.printf("Exported %d notes to %s\n", len(paths), dir)
	return nil
}

func parseChoice(arg string) *models.ID {
	if arg == "" || strings.EqualFold(arg, "all") {
		return nil
	}
	return models.IDPtr(models.ID(arg))
}
