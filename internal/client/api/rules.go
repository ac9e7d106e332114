package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

func (c *HTTPClient) ListRules(ctx context.Context) ([]models.Rule, error) {
	var rules []models.Rule
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/rules/", out: &rules, authed: true})
	return rules, err
}

func (c *HTTPClient) CreateRule(ctx context.Context, data models.RuleCreate) (*models.Rule, error) {
	var rule models.Rule
	err := c.call(ctx, callOpts{method: http.MethodPost, path: "/rules/", body: data, out: &rule, authed: true})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (c *HTTPClient) UpdateRule(ctx context.Context, id int64, data models.RuleUpdate) (*models.Rule, error) {
	var rule models.Rule
	err := c.call(ctx, callOpts{method: http.MethodPut, path: fmt.Sprintf("/rules/%d", id), body: data, out: &rule, authed: true})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (c *HTTPClient) DeleteRule(ctx context.Context, id int64) error {
	return c.call(ctx, callOpts{method: http.MethodDelete, path: fmt.Sprintf("/rules/%d", id), authed: true})
}
