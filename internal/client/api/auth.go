package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse tolerates both token shapes the backend has shipped: a
// bare access token with an inlined user, and an access/refresh pair.
type authResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	User         *models.User `json:"user"`
}

func (r authResponse) tokens() models.TokenPair {
	return models.TokenPair{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		TokenType:    r.TokenType,
	}
}

// Login exchanges credentials for a token pair. A 401 maps to
// KindInvalidCredentials and leaves the stored session untouched.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var resp authResponse
	err := c.call(ctx, callOpts{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   credentialsRequest{Email: email, Password: password},
		out:    &resp,
	})
	if err != nil {
		return nil, err
	}
	return &LoginResult{Tokens: resp.tokens(), User: resp.User}, nil
}

// Register creates an account. The backend returns the created profile
// and no token, so a successful registration does not authenticate.
func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	return c.call(ctx, callOpts{
		method: http.MethodPost,
		path:   "/auth/register",
		body:   credentialsRequest{Email: email, Password: password},
	})
}

// CurrentUser fetches the profile behind the current bearer token.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	err := c.call(ctx, callOpts{
		method: http.MethodGet,
		path:   "/auth/me",
		out:    &user,
		authed: true,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Refresh trades a refresh token for a new pair. The backend takes the
// token as a query parameter.
func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	var resp authResponse
	err := c.call(ctx, callOpts{
		method: http.MethodPost,
		path:   "/auth/refresh",
		query:  url.Values{"refresh_token": {refreshToken}},
		out:    &resp,
	})
	if err != nil {
		return models.TokenPair{}, err
	}
	return resp.tokens(), nil
}
