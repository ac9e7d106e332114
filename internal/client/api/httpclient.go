package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
	"github.com/Fredson-Santos/conekta-bots/internal/logging"
)

// CredentialSource is the narrow view of the credential store the HTTP
// client needs: read the current tokens, rotate them after a refresh, and
// drop them when the backend rejects them.
type CredentialSource interface {
	Tokens() models.TokenPair
	SetTokens(ctx context.Context, tokens models.TokenPair) error
	Clear(ctx context.Context) error
}

// HTTPClient is the Client implementation speaking JSON over HTTP to the
// bots backend.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	creds   CredentialSource
	log     logging.Logger

	// now is a test seam for token-expiry checks.
	now func() time.Time
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, creds CredentialSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log.With("component", "api"),
		now:     time.Now,
	}
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

type callOpts struct {
	method string
	path   string
	query  url.Values
	body   any
	out    any
	authed bool
}

// call routes a request either directly (public endpoints) or through the
// token-handling path (authenticated endpoints).
func (c *HTTPClient) call(ctx context.Context, opts callOpts) error {
	if opts.authed {
		return c.authedCall(ctx, opts)
	}
	return c.send(ctx, opts, "")
}

// authedCall attaches the current bearer token and handles its lifecycle:
// a token already past its exp claim is refreshed before the call, and a
// 401/403 from the backend triggers one refresh-and-retry. When no
// usable token remains, the credential store is cleared and
// ErrUnauthorized surfaces so the console can return to the login page.
func (c *HTTPClient) authedCall(ctx context.Context, opts callOpts) error {
	tokens := c.creds.Tokens()
	if tokens.AccessToken == "" {
		return ErrUnauthorized
	}

	if tokens.RefreshToken != "" && tokenExpired(tokens.AccessToken, c.now()) {
		rotated, err := c.Refresh(ctx, tokens.RefreshToken)
		if err != nil {
			// the server is still the authority; let the call decide
			c.log.Warn(ctx, "pre-call token refresh failed", "error", err)
		} else {
			if err := c.creds.SetTokens(ctx, rotated); err != nil {
				return err
			}
			tokens = rotated
		}
	}

	err := c.send(ctx, opts, tokens.AccessToken)
	if !isCredentialRejection(err) {
		return err
	}

	if tokens.RefreshToken != "" {
		rotated, rerr := c.Refresh(ctx, tokens.RefreshToken)
		if rerr == nil {
			if serr := c.creds.SetTokens(ctx, rotated); serr != nil {
				return serr
			}
			err = c.send(ctx, opts, rotated.AccessToken)
			if !isCredentialRejection(err) {
				return err
			}
		}
	}

	c.log.Warn(ctx, "credentials rejected, clearing session", "status", statusOf(err))
	if cerr := c.creds.Clear(ctx); cerr != nil {
		c.log.Error(ctx, "failed to clear rejected credentials", "error", cerr)
	}
	return ErrUnauthorized
}

// send performs one HTTP exchange. A non-empty token is attached as a
// bearer header; responses with status >= 400 become api.Error values.
func (c *HTTPClient) send(ctx context.Context, opts callOpts, token string) error {
	var reqBody io.Reader
	if opts.body != nil {
		raw, err := json.Marshal(opts.body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	target := c.baseURL + opts.path
	if len(opts.query) > 0 {
		target += "?" + opts.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, opts.method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if opts.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return &Error{Kind: KindNetworkError, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if opts.out != nil {
		if err := json.NewDecoder(resp.Body).Decode(opts.out); err != nil {
			return &Error{Kind: KindServerError, Status: resp.StatusCode, Message: "undecodable response body"}
		}
	}
	return nil
}

// errorDetail is the FastAPI-style error envelope. Detail is a string for
// most failures and a structured list for 422 validation errors.
type errorDetail struct {
	Detail json.RawMessage `json:"detail"`
}

func errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	message := ""
	var envelope errorDetail
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Detail) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Detail, &s); err == nil {
			message = s
		} else {
			message = string(envelope.Detail)
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &Error{Kind: kindFromStatus(resp.StatusCode), Status: resp.StatusCode, Message: message}
}

func kindFromStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindInvalidCredentials
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest || status == http.StatusConflict || status == http.StatusUnprocessableEntity:
		return KindValidationFailed
	case status >= 500:
		return KindServerError
	default:
		return KindUnknown
	}
}

// isCredentialRejection reports whether err is a 401/403 API error, the
// only failures that invalidate the stored session.
func isCredentialRejection(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

func statusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
