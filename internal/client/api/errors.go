package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the backend rejects the stored
// credentials on an authenticated call. By the time a caller sees it, the
// credential store has already been cleared, so the console only has to
// send the user back to the login page.
var ErrUnauthorized = errors.New("unauthorized")

// Kind classifies a failed backend call by what the caller can do about it.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalidCredentials: the login was wrong. Shown inline on the form.
	KindInvalidCredentials
	// KindValidationFailed: the backend refused the submitted fields.
	KindValidationFailed
	// KindNotFound: the addressed resource does not exist.
	KindNotFound
	// KindServerError: the backend failed; the user may retry.
	KindServerError
	// KindNetworkError: the backend was never reached.
	KindNetworkError
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid credentials"
	case KindValidationFailed:
		return "validation failed"
	case KindNotFound:
		return "not found"
	case KindServerError:
		return "server error"
	case KindNetworkError:
		return "network error"
	default:
		return "unknown"
	}
}

// Error is a failed backend call. Message is the human-readable detail
// extracted from the response body; callers never interpret the body
// beyond that.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %s (status %d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
}

// KindOf extracts the Kind from err, or KindUnknown when err is not an
// api.Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}
