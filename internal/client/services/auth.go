// Package services contains the application services of the notes client:
// the sign-in/sign-up flow, the collection loader and the note mutator.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
)

// AuthFailedMessage is the only message shown for a failed sign-in or sign-up.
const AuthFailedMessage = "Invalid credentials or server error."

var (
	ErrAuthFailed   = errors.New("authentication failed")
	ErrCannotSubmit = errors.New("form cannot be submitted")
)

type AuthMode int

const (
	ModeSignIn AuthMode = iota
	ModeSignUp
)

func (m AuthMode) String() string {
	if m == ModeSignUp {
		return "signup"
	}
	return "signin"
}

// OnAuthFunc receives the identity and token of a successful submission.
type OnAuthFunc func(ctx context.Context, user models.User, token string) error

// AuthFlow is the sign-in/sign-up form state machine. It is safe for
// concurrent use so a UI can render it while a submission is in flight.
type AuthFlow struct {
	client client.Client
	onAuth OnAuthFunc
	logger logging.Logger

	mu         sync.Mutex
	mode       AuthMode
	submitting bool
	errMsg     string
}

func NewAuthFlow(c client.Client, onAuth OnAuthFunc, logger logging.Logger) *AuthFlow {
	return &AuthFlow{client: c, onAuth: onAuth, logger: logger}
}

func (f *AuthFlow) Mode() AuthMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// SetMode switches to m and clears any error message.
func (f *AuthFlow) SetMode(m AuthMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = m
	f.errMsg = ""
}

// Toggle flips between sign-in and sign-up and clears the error message.
func (f *AuthFlow) Toggle() AuthMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == ModeSignIn {
		f.mode = ModeSignUp
	} else {
		f.mode = ModeSignIn
	}
	f.errMsg = ""
	return f.mode
}

func (f *AuthFlow) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Error returns the message of the last failed submission, or "".
func (f *AuthFlow) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// CanSubmit is false while either field is empty or a request is in flight.
func (f *AuthFlow) CanSubmit(username, password string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canSubmit(username, password)
}

func (f *AuthFlow) canSubmit(username, password string) bool {
	return username != "" && password != "" && !f.submitting
}

// Submit posts the credentials to the endpoint of the current mode. On
// success it hands the user and token to the OnAuth callback. Every failure
// of the request itself is reported as ErrAuthFailed with one generic message.
func (f *AuthFlow) Submit(ctx context.Context, username, password string) error {
	f.mu.Lock()
	if !f.canSubmit(username, password) {
		f.mu.Unlock()
		return ErrCannotSubmit
	}
	f.submitting = true
	f.errMsg = ""
	mode := f.mode
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	var (
		token string
		err   error
	)
	if mode == ModeSignUp {
		token, err = f.client.Signup(ctx, username, password)
	} else {
		token, err = f.client.Login(ctx, username, password)
	}

	if err == nil && token == "" {
		err = errors.New("response carries no token")
	}
	if err != nil {
		f.logger.Warn(ctx, "authentication failed", "mode", mode.String(), "username", username, "err", err)
		f.fail(AuthFailedMessage)
		return ErrAuthFailed
	}

	user := models.User{Username: username}
	if f.onAuth != nil {
		if err := f.onAuth(ctx, user, token); err != nil {
			f.logger.Error(ctx, "session could not be established", "err", err)
			f.fail("Could not save the session.")
			return err
		}
	}

	f.logger.Info(ctx, "authenticated", "mode", mode.String(), "username", username)
	return nil
}

func (f *AuthFlow) fail(msg string) {
	f.mu.Lock()
	f.errMsg = msg
	f.mu.Unlock()
}
