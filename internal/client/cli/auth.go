package cli

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/client/services"
	"github.com/dmitrijs2005/gophnotes/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a username and password and signs in.
func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, services.ModeSignIn)
}

// Signup prompts for a username and password and creates an account.
func (a *App) Signup(ctx context.Context) error {
	return a.authenticate(ctx, services.ModeSignUp)
}

// authenticate prompts for credentials and submits them in the given mode.
// An empty field aborts before any request is made. The password bytes are
// wiped before returning.
func (a *App) authenticate(ctx context.Context, mode services.AuthMode) error {
	if u, ok := a.deps.Session.User(); ok {
		a.printf("Already logged in as %s. Use logout first.\n", u.Username)
		return nil
	}

	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	flow := a.deps.Auth
	if !flow.CanSubmit(userName, string(password)) {
		a.println("Username and password are required.")
		return services.ErrCannotSubmit
	}

	flow.SetMode(mode)

	rctx, cancel := a.deps.RequestContext(ctx)
	defer cancel()

	if err := flow.Submit(rctx, userName, string(password)); err != nil {
		msg := flow.Error()
		if msg == "" {
			msg = err.Error()
		}
		a.println(a.styles().Error.Render(msg))
		return err
	}

	a.printf("Welcome, %s!\n", userName)
	return nil
}

// Logout forgets the session, locally and on disk.
func (a *App) Logout(ctx context.Context) error {
	if err := a.deps.Session.Logout(ctx); err != nil {
		a.deps.Logger.Error(ctx, "logout failed", "err", err)
		a.println("Error:", err)
		return err
	}
	a.println("Logged out.")
	return nil
}
