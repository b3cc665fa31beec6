package services

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Loader fetches the three collections shown after sign-in.
type Loader struct {
	client client.Client
	logger logging.Logger
}

func NewLoader(c client.Client, logger logging.Logger) *Loader {
	return &Loader{client: c, logger: logger}
}

// Load fetches notes, folders and tags concurrently. A failed fetch leaves
// its collection empty and is only logged; Load itself never fails.
func (l *Loader) Load(ctx context.Context) models.Collections {
	var out models.Collections

	// Each goroutine owns one field of out and always returns nil so that
	// one failure does not cancel the others.
	var g errgroup.Group

	g.Go(func() error {
		notes, err := l.client.ListNotes(ctx)
		if err != nil {
			l.logger.Warn(ctx, "failed to load notes", "err", err)
			notes = nil
		}
		out.Notes = nonNil(notes)
		return nil
	})

	g.Go(func() error {
		folders, err := l.client.ListFolders(ctx)
		if err != nil {
			l.logger.Warn(ctx, "failed to load folders", "err", err)
			folders = nil
		}
		out.Folders = nonNil(folders)
		return nil
	})

	g.Go(func() error {
		tags, err := l.client.ListTags(ctx)
		if err != nil {
			l.logger.Warn(ctx, "failed to load tags", "err", err)
			tags = nil
		}
		out.Tags = nonNil(tags)
		return nil
	})

	_ = g.Wait()

	l.logger.Debug(ctx, "collections loaded",
		"notes", len(out.Notes), "folders", len(out.Folders), "tags", len(out.Tags))
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
