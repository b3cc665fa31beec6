// Package app wires the notes client together: local database, session,
// REST transport, services and workspace. Both user interfaces start from a
// *Deps.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/config"
	"github.com/dmitrijs2005/gophnotes/internal/client/services"
	"github.com/dmitrijs2005/gophnotes/internal/client/session"
	"github.com/dmitrijs2005/gophnotes/internal/client/workspace"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
)

type Deps struct {
	Config    *config.Config
	Logger    logging.Logger
	DB        *sql.DB
	Session   *session.Store
	API       client.Client
	Auth      *services.AuthFlow
	Loader    *services.Loader
	Notes     services.NoteService
	Workspace *workspace.Workspace
}

// New opens the local database and builds every component. The session is
// not loaded yet; the caller subscribes to it first and then calls Load.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Deps, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.DatabaseDSN, err)
	}

	store := session.NewStore(db, logger)
	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, store, logger)

	return &Deps{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Session:   store,
		API:       api,
		Auth:      services.NewAuthFlow(api, store.Login, logger),
		Loader:    services.NewLoader(api, logger),
		Notes:     services.NewNoteService(api, logger),
		Workspace: workspace.New(cfg.Theme),
	}, nil
}

// RequestContext bounds one user-initiated operation by the configured
// request timeout.
func (d *Deps) RequestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.Config.RequestTimeout)
}

func (d *Deps) Close() error {
	return d.DB.Close()
}
