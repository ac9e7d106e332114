// Package gate decides whether the current session permits entering a
// console page. The decision is a pure function of the authenticated flag
// and the page classification, so callers can re-evaluate it on every
// navigation and after every session change without touching the network.
package gate

// Class says who may enter a page.
type Class int

const (
	// Public pages are reachable by anyone.
	Public Class = iota
	// PublicOnly pages (login, register) are for anonymous users; an
	// authenticated user is bounced home.
	PublicOnly
	// Protected pages require an authenticated session.
	Protected
)

// Action is the outcome of a gate evaluation.
type Action int

const (
	// Allow renders the target page.
	Allow Action = iota
	// RedirectToLogin sends the user to the login page, remembering the
	// page they asked for.
	RedirectToLogin
	// RedirectToHome sends the user to the home page.
	RedirectToHome
)

func (a Action) String() string {
	switch a {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToHome:
		return "redirect-to-home"
	default:
		return "unknown"
	}
}

// Decision is the gate's verdict for one navigation attempt.
type Decision struct {
	Action Action
	// Target is the originally requested page, set when Action is
	// RedirectToLogin so a successful login can return there.
	Target string
}

// Evaluate classifies path and decides whether the session may enter.
// Unknown paths redirect home, mirroring the console's catch-all route.
func Evaluate(authenticated bool, path string) Decision {
	class, known := Classify(path)
	if !known {
		return Decision{Action: RedirectToHome}
	}

	switch class {
	case Protected:
		if !authenticated {
			return Decision{Action: RedirectToLogin, Target: path}
		}
		return Decision{Action: Allow}
	case PublicOnly:
		if authenticated {
			return Decision{Action: RedirectToHome}
		}
		return Decision{Action: Allow}
	default:
		return Decision{Action: Allow}
	}
}
