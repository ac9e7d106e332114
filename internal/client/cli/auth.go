package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Fredson-Santos/conekta-bots/internal/client/gate"
	"github.com/Fredson-Santos/conekta-bots/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login navigates to the login page, prompts for credentials, and
// authenticates. On success the console returns to the page the user
// originally asked for, or home.
//
// The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	if a.navigate(gate.LoginPath) != gate.LoginPath {
		printlnFn("Already logged in.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		a.renderError(err)
		return err
	}

	printlnFn("Login successful.")

	target := a.pending
	a.pending = ""
	if target == "" {
		target = gate.HomePath
	}
	a.navigate(target)
	return nil
}

// Register navigates to the register page and creates an account. The
// backend issues no token on registration, so the user logs in afterwards.
func (a *App) Register(ctx context.Context) error {
	if a.navigate(gate.RegisterPath) != gate.RegisterPath {
		printlnFn("Already logged in.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.auth.Register(ctx, email, string(password)); err != nil {
		a.renderError(err)
		return err
	}

	printlnFn("Account created. Please login.")
	a.navigate(gate.LoginPath)
	return nil
}

// Logout clears the session and lands back on the login page.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	a.navigate(gate.HomePath)
	return nil
}

// WhoAmI prints the signed-in profile, refetching it when the login-time
// fetch was skipped or failed.
func (a *App) WhoAmI(ctx context.Context) error {
	sess := a.store.Read()
	if !sess.Authenticated {
		printlnFn("Not logged in.")
		return nil
	}

	if sess.User == nil {
		if err := a.auth.RefreshIdentity(ctx); err != nil {
			a.renderError(err)
			return err
		}
		sess = a.store.Read()
	}

	u := sess.User
	printlnFn(fmt.Sprintf("%s (plan %s, up to %d bots, active=%v)", u.Email, u.Plan, u.MaxBots, u.IsActive))
	return nil
}
