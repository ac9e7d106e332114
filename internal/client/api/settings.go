package api

import (
	"context"
	"net/http"

	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

// GetSettings returns the user's integration settings, or nil when
// nothing was ever configured (the backend answers with a JSON null).
func (c *HTTPClient) GetSettings(ctx context.Context) (*models.Settings, error) {
	var settings *models.Settings
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/settings/", out: &settings, authed: true})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings creates or updates the user's settings.
func (c *HTTPClient) UpdateSettings(ctx context.Context, data models.SettingsUpdate) (*models.Settings, error) {
	var settings models.Settings
	err := c.call(ctx, callOpts{method: http.MethodPut, path: "/settings/", body: data, out: &settings, authed: true})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
