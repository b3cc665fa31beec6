package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/config"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	createErr error
	authErr   error
	calls     []string
}

func (f *fakeAccounts) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	f.calls = append(f.calls, "create "+username)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.User{Username: username}, nil
}

func (f *fakeAccounts) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	f.calls = append(f.calls, "auth "+username)
	if f.authErr != nil {
		return nil, f.authErr
	}
	return &models.User{Username: username}, nil
}

func newUserService(f *fakeAccounts) *UserService {
	return NewUserService(f, &config.Config{SecretKey: "k", TokenValidity: time.Hour})
}

func TestUserService_RegisterIssuesToken(t *testing.T) {
	f := &fakeAccounts{}
	s := newUserService(f)

	tok, err := s.Register(context.Background(), "bob", "pw1234")
	require.NoError(t, err)

	name, err := auth.UsernameFromToken(tok, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "bob", name)
	assert.Equal(t, []string{"create bob"}, f.calls)
}

func TestUserService_RegisterDuplicate(t *testing.T) {
	s := newUserService(&fakeAccounts{createErr: shared.ErrorLoginAlreadyExists})

	_, err := s.Register(context.Background(), "bob", "pw1234")
	assert.True(t, errors.Is(err, shared.ErrorLoginAlreadyExists))
}

func TestUserService_Login(t *testing.T) {
	s := newUserService(&fakeAccounts{})

	tok, err := s.Login(context.Background(), "bob", "pw1234")
	require.NoError(t, err)

	name, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "bob", name)
}

func TestUserService_LoginRejected(t *testing.T) {
	s := newUserService(&fakeAccounts{authErr: shared.ErrorInvalidLoginPassword})

	tok, err := s.Login(context.Background(), "bob", "nope")
	assert.ErrorIs(t, err, shared.ErrorInvalidLoginPassword)
	assert.Empty(t, tok)
}

func TestUserService_VerifyRejectsForeignToken(t *testing.T) {
	s := newUserService(&fakeAccounts{})

	other, err := auth.GenerateToken("bob", []byte("other"), time.Hour)
	require.NoError(t, err)

	_, err = s.Verify(other)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
