// Package services contains the dev server's business logic. UserService
// registers and authenticates users and issues their bearer tokens.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/config"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/store"
)

// UserAccounts is the part of the store UserService uses.
type UserAccounts interface {
	CreateUser(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

type UserService struct {
	users         UserAccounts
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewUserService(users UserAccounts, cfg *config.Config) *UserService {
	return &UserService{
		users:         users,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
	}
}

// Register creates the user and returns a token for it. Duplicate usernames
// yield shared.ErrorLoginAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.CreateUser(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}
	return s.issue(u.Username)
}

// Login verifies the password and returns a fresh token. Unknown users and
// wrong passwords both yield shared.ErrorInvalidLoginPassword.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.issue(u.Username)
}

// Verify returns the username a token was issued to.
func (s *UserService) Verify(token string) (string, error) {
	return auth.UsernameFromToken(token, s.jwtSecret)
}

func (s *UserService) issue(username string) (string, error) {
	return auth.GenerateToken(username, s.jwtSecret, s.tokenValidity)
}

var _ UserAccounts = (*store.MemoryStore)(nil)
