package cli

import (
	"errors"

	"github.com/Fredson-Santos/conekta-bots/internal/client/api"
	"github.com/Fredson-Santos/conekta-bots/internal/client/gate"
)

// navigate routes the console to path, following gate redirects until a
// page is allowed, the way the browser console follows redirect routes.
// When a protected page bounces to login, the original target is
// remembered and replayed after the next successful login. Returns the
// page actually landed on.
func (a *App) navigate(path string) string {
	// the route table is finite and every redirect lands on a terminal
	// page, so a handful of hops always suffices
	for i := 0; i < 4; i++ {
		d := gate.Evaluate(a.store.Read().Authenticated, path)
		switch d.Action {
		case gate.Allow:
			a.page = path
			return a.page
		case gate.RedirectToLogin:
			a.pending = d.Target
			path = gate.LoginPath
		case gate.RedirectToHome:
			path = gate.HomePath
		}
	}
	a.page = gate.LoginPath
	return a.page
}

// enter navigates to a protected page and reports whether the console
// landed there. On a bounce the user is told to log in; the target is
// already remembered for the post-login redirect.
func (a *App) enter(path string) bool {
	if a.navigate(path) != path {
		printlnFn("Please login first. You will be taken to " + path + " afterwards.")
		return false
	}
	return true
}

// renderError prints a failed backend call in user terms. A rejected
// session (the store is already cleared by the API client at this point)
// re-runs the gate so the console lands back on the login page with the
// current page remembered.
func (a *App) renderError(err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		printlnFn("Session expired. Please login again.")
		a.navigate(a.page)
		return
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		printlnFn("Error: " + err.Error())
		return
	}

	switch apiErr.Kind {
	case api.KindInvalidCredentials:
		printlnFn("Invalid email or password.")
	case api.KindValidationFailed:
		printlnFn("Rejected: " + apiErr.Message)
	case api.KindNotFound:
		printlnFn("Not found: " + apiErr.Message)
	case api.KindNetworkError:
		printlnFn("Cannot reach the server. Check your connection and try again.")
	default:
		printlnFn("Server error. Please try again later.")
	}
}
