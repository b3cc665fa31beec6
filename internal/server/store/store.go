// Package store keeps the dev server's users and their notes in memory.
// Nothing survives a restart.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/shared"
	"golang.org/x/crypto/bcrypt"
)

// Repository is what the handlers need from storage. All note operations are
// scoped to one username.
type Repository interface {
	CreateUser(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	Notes(ctx context.Context, username string) ([]models.Note, error)
	CreateNote(ctx context.Context, username string, n models.NewNote) (models.Note, error)
	UpdateNote(ctx context.Context, username string, id int64, u models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, username string, id int64) error
	Folders(ctx context.Context, username string) ([]models.Folder, error)
	Tags(ctx context.Context, username string) ([]models.Tag, error)
}

type account struct {
	user    models.User
	notes   []models.Note // newest first
	nextID  int64
	folders []models.Folder
	tags    []models.Tag
}

type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*account
	folders  []string
	tags     []string
	cost     int
}

var _ Repository = (*MemoryStore)(nil)

// NewMemoryStore seeds every new account with the given folder and tag
// names.
func NewMemoryStore(folders, tags []string) *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]*account),
		folders:  append([]string(nil), folders...),
		tags:     append([]string(nil), tags...),
		cost:     bcrypt.DefaultCost,
	}
}

func (s *MemoryStore) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", shared.ErrorValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrorValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[username]; ok {
		return nil, shared.ErrorLoginAlreadyExists
	}

	acc := &account{
		user:   models.User{Username: username, PasswordHash: hash, CreatedAt: time.Now()},
		nextID: 1,
	}
	for i, name := range s.folders {
		acc.folders = append(acc.folders, models.Folder{ID: int64(i + 1), Name: name})
	}
	for i, name := range s.tags {
		acc.tags = append(acc.tags, models.Tag{ID: int64(i + 1), Name: name})
	}
	s.accounts[username] = acc

	u := acc.user
	return &u, nil
}

func (s *MemoryStore) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	s.mu.RLock()
	acc, ok := s.accounts[strings.TrimSpace(username)]
	var u models.User
	if ok {
		u = acc.user
	}
	s.mu.RUnlock()

	if !ok {
		return nil, shared.ErrorInvalidLoginPassword
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, shared.ErrorInvalidLoginPassword
	}
	return &u, nil
}

func (s *MemoryStore) Notes(ctx context.Context, username string) ([]models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, err := s.account(username)
	if err != nil {
		return nil, err
	}
	out := make([]models.Note, 0, len(acc.notes))
	for _, n := range acc.notes {
		out = append(out, n.Clone())
	}
	return out, nil
}

func (s *MemoryStore) CreateNote(ctx context.Context, username string, nn models.NewNote) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.account(username)
	if err != nil {
		return models.Note{}, err
	}
	if err := acc.check(nn.FolderID, nn.Tags); err != nil {
		return models.Note{}, err
	}

	n := models.Note{
		ID:       acc.nextID,
		Title:    nn.Title,
		Content:  nn.Content,
		FolderID: nn.FolderID,
		Tags:     nn.Tags,
	}.Clone()
	acc.nextID++
	acc.notes = append([]models.Note{n}, acc.notes...)
	return n.Clone(), nil
}

func (s *MemoryStore) UpdateNote(ctx context.Context, username string, id int64, u models.NoteUpdate) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.account(username)
	if err != nil {
		return models.Note{}, err
	}
	i := acc.indexOf(id)
	if i < 0 {
		return models.Note{}, shared.ErrorNotFound
	}
	if err := acc.check(u.FolderID, u.Tags); err != nil {
		return models.Note{}, err
	}

	n := &acc.notes[i]
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.FolderID != nil {
		fid := *u.FolderID
		n.FolderID = &fid
	}
	if u.Tags != nil {
		n.Tags = append([]int64(nil), u.Tags...)
	}
	return n.Clone(), nil
}

func (s *MemoryStore) DeleteNote(ctx context.Context, username string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.account(username)
	if err != nil {
		return err
	}
	i := acc.indexOf(id)
	if i < 0 {
		return shared.ErrorNotFound
	}
	acc.notes = append(acc.notes[:i:i], acc.notes[i+1:]...)
	return nil
}

func (s *MemoryStore) Folders(ctx context.Context, username string) ([]models.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, err := s.account(username)
	if err != nil {
		return nil, err
	}
	return append(make([]models.Folder, 0, len(acc.folders)), acc.folders...), nil
}

func (s *MemoryStore) Tags(ctx context.Context, username string) ([]models.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, err := s.account(username)
	if err != nil {
		return nil, err
	}
	return append(make([]models.Tag, 0, len(acc.tags)), acc.tags...), nil
}

// account must be called with s.mu held.
func (s *MemoryStore) account(username string) (*account, error) {
	acc, ok := s.accounts[username]
	if !ok {
		return nil, shared.ErrorUnknownUser
	}
	return acc, nil
}

func (a *account) indexOf(id int64) int {
	for i, n := range a.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// check rejects references to folders or tags the account does not have.
func (a *account) check(folderID *int64, tags []int64) error {
	if folderID != nil && !a.hasFolder(*folderID) {
		return fmt.Errorf("%w: unknown folder %d", shared.ErrorValidation, *folderID)
	}
	for _, t := range tags {
		if !a.hasTag(t) {
			return fmt.Errorf("%w: unknown tag %d", shared.ErrorValidation, t)
		}
	}
	return nil
}

func (a *account) hasFolder(id int64) bool {
	for _, f := range a.folders {
		if f.ID == id {
			return true
		}
	}
	return false
}

func (a *account) hasTag(id int64) bool {
	for _, t := range a.tags {
		if t.ID == id {
			return true
		}
	}
	return false
}
