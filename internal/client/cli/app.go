package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophnotes/internal/client/app"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/client/session"
	"github.com/dmitrijs2005/gophnotes/internal/client/styles"
)

type App struct {
	deps   *app.Deps
	reader *bufio.Reader
	out    io.Writer

	// session events are queued by the store listener and handled by the
	// REPL loop between commands.
	events []session.Event
}

// NewApp builds the REPL on top of d. It subscribes to session changes, so
// it must be created before the session is loaded.
func NewApp(d *app.Deps, in io.Reader, out io.Writer) *App {
	a := &App{deps: d, reader: bufio.NewReader(in), out: out}
	d.Session.Subscribe(func(e session.Event, _ models.Session) {
		a.events = append(a.events, e)
	})
	return a
}

// Run restores a saved session, then serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	if err := a.deps.Session.Load(ctx); err != nil {
		return err
	}

	a.println("Welcome to notes (type 'help' for commands)")
	a.handleSessionEvents(ctx)
	if !a.isLoggedIn() {
		a.println("Please login or signup.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.deps.Session.IsAuthenticated()
}

func (a *App) getStatus() string {
	u, ok := a.deps.Session.User()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s)", u.Username)
}

// handleSessionEvents reacts to queued session events: a new session loads
// the collections once, a cleared one resets the workspace.
func (a *App) handleSessionEvents(ctx context.Context) {
	events := a.events
	a.events = nil

	for _, e := range events {
		switch e {
		case session.EventEstablished:
			_ = a.Reload(ctx)
		case session.EventCleared:
			a.deps.Workspace.Reset()
		}
	}
}

func (a *App) styles() styles.Styles {
	return styles.For(a.deps.Workspace.Theme())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
