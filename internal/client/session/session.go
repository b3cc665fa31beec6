// Package session holds the authenticated identity and bearer token of the
// notes client and mirrors them into the local database so a restart keeps
// the user signed in.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
)

// Metadata keys of the persisted session.
const (
	UserKey  = "notes_user"
	TokenKey = "notes_token"
)

type Event int

const (
	// EventEstablished fires when the store goes from logged out to logged in.
	EventEstablished Event = iota + 1
	// EventCleared fires on logout.
	EventCleared
)

func (e Event) String() string {
	switch e {
	case EventEstablished:
		return "established"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Listener receives session events. It is called synchronously, after the
// store's lock has been released, from the goroutine that caused the change.
type Listener func(Event, models.Session)

// Store is the session of the running client. It is safe for concurrent use.
type Store struct {
	db      *sql.DB
	newRepo func(dbx.DBTX) metadata.Repository
	logger  logging.Logger

	mu        sync.RWMutex
	current   *models.Session
	listeners []Listener
}

func NewStore(db *sql.DB, logger logging.Logger) *Store {
	return &Store{
		db: db,
		newRepo: func(q dbx.DBTX) metadata.Repository {
			return metadata.NewSQLiteRepository(q)
		},
		logger: logger,
	}
}

// Subscribe registers fn for all future events.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Load restores a persisted session. Missing or unreadable records leave the
// store logged out without an error; only storage failures are returned.
// Load emits EventEstablished when it restores a session.
func (s *Store) Load(ctx context.Context) error {
	repo := s.newRepo(s.db)

	token, err := repo.Get(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	rawUser, err := repo.Get(ctx, UserKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	if len(token) == 0 || len(rawUser) == 0 {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		s.logger.Warn(ctx, "stored user is not valid JSON, ignoring session", "err", err)
		return nil
	}

	s.set(models.Session{User: user, Token: string(token)})
	return nil
}

// Login persists user and token in one transaction and then makes them the
// current session.
func (s *Store) Login(ctx context.Context, user models.User, token string) error {
	if token == "" {
		return fmt.Errorf("login: empty token")
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newRepo(tx)
		if err := repo.Set(ctx, UserKey, rawUser); err != nil {
			return err
		}
		return repo.Set(ctx, TokenKey, []byte(token))
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.set(models.Session{User: user, Token: token})
	return nil
}

// Logout clears the in-memory session even when the persisted copy cannot be
// removed; the storage error is still returned.
func (s *Store) Logout(ctx context.Context) error {
	err := s.newRepo(s.db).Delete(ctx, UserKey, TokenKey)

	s.mu.Lock()
	prev := s.current
	s.current = nil
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	if prev != nil {
		notify(listeners, EventCleared, models.Session{})
	}

	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) set(sess models.Session) {
	s.mu.Lock()
	wasEmpty := s.current == nil
	s.current = &sess
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	if wasEmpty {
		notify(listeners, EventEstablished, sess)
	}
}

func notify(listeners []Listener, e Event, sess models.Session) {
	for _, fn := range listeners {
		fn(e, sess)
	}
}

// Session returns a copy of the current session and whether there is one.
func (s *Store) Session() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

func (s *Store) User() (models.User, bool) {
	sess, ok := s.Session()
	return sess.User, ok
}

// Token implements client.TokenSource. It returns "" when logged out.
func (s *Store) Token() string {
	sess, _ := s.Session()
	return sess.Token
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}
