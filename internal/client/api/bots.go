package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

func (c *HTTPClient) ListBots(ctx context.Context) ([]models.Bot, error) {
	var bots []models.Bot
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/bots/", out: &bots, authed: true})
	return bots, err
}

func (c *HTTPClient) GetBot(ctx context.Context, id int64) (*models.Bot, error) {
	var bot models.Bot
	err := c.call(ctx, callOpts{method: http.MethodGet, path: fmt.Sprintf("/bots/%d", id), out: &bot, authed: true})
	if err != nil {
		return nil, err
	}
	return &bot, nil
}

func (c *HTTPClient) CreateBot(ctx context.Context, data models.BotCreate) (*models.Bot, error) {
	var bot models.Bot
	err := c.call(ctx, callOpts{method: http.MethodPost, path: "/bots/", body: data, out: &bot, authed: true})
	if err != nil {
		return nil, err
	}
	return &bot, nil
}

func (c *HTTPClient) UpdateBot(ctx context.Context, id int64, data models.BotUpdate) (*models.Bot, error) {
	var bot models.Bot
	err := c.call(ctx, callOpts{method: http.MethodPut, path: fmt.Sprintf("/bots/%d", id), body: data, out: &bot, authed: true})
	if err != nil {
		return nil, err
	}
	return &bot, nil
}

func (c *HTTPClient) DeleteBot(ctx context.Context, id int64) error {
	return c.call(ctx, callOpts{method: http.MethodDelete, path: fmt.Sprintf("/bots/%d", id), authed: true})
}

// ToggleBot flips the bot's active flag server-side and returns the new
// state.
func (c *HTTPClient) ToggleBot(ctx context.Context, id int64) (*models.Bot, error) {
	var bot models.Bot
	err := c.call(ctx, callOpts{method: http.MethodPost, path: fmt.Sprintf("/bots/%d/toggle", id), out: &bot, authed: true})
	if err != nil {
		return nil, err
	}
	return &bot, nil
}

// StartBotAuth kicks off the Telegram phone-code flow for a bot; the
// returned auth_id is needed to verify the code.
func (c *HTTPClient) StartBotAuth(ctx context.Context, id int64) (*models.BotAuth, error) {
	var auth models.BotAuth
	err := c.call(ctx, callOpts{method: http.MethodPost, path: fmt.Sprintf("/bots/%d/auth/start", id), out: &auth, authed: true})
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

type botAuthVerifyRequest struct {
	Code     string `json:"code"`
	Password string `json:"password,omitempty"`
}

// VerifyBotAuth completes the phone-code flow. Password is the optional
// two-factor password and may be empty.
func (c *HTTPClient) VerifyBotAuth(ctx context.Context, id int64, code, password string) (*models.Bot, error) {
	var bot models.Bot
	err := c.call(ctx, callOpts{
		method: http.MethodPost,
		path:   fmt.Sprintf("/bots/%d/auth/verify", id),
		body:   botAuthVerifyRequest{Code: code, Password: password},
		out:    &bot,
		authed: true,
	})
	if err != nil {
		return nil, err
	}
	return &bot, nil
}
