package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

// Dashboard returns the summary stats the home page renders.
func (c *HTTPClient) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	var dash models.Dashboard
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/analytics/dashboard", out: &dash, authed: true})
	if err != nil {
		return nil, err
	}
	return &dash, nil
}

// RecentLogs returns the newest execution logs across all of the user's
// bots.
func (c *HTTPClient) RecentLogs(ctx context.Context, limit int) ([]models.LogEntry, error) {
	var logs []models.LogEntry
	err := c.call(ctx, callOpts{
		method: http.MethodGet,
		path:   "/analytics/logs/recent",
		query:  url.Values{"limit": {strconv.Itoa(limit)}},
		out:    &logs,
		authed: true,
	})
	return logs, err
}

// BotLogs returns one bot's execution logs, newest first, paginated.
func (c *HTTPClient) BotLogs(ctx context.Context, botID int64, limit, offset int) ([]models.LogEntry, error) {
	var logs []models.LogEntry
	err := c.call(ctx, callOpts{
		method: http.MethodGet,
		path:   fmt.Sprintf("/analytics/logs/%d", botID),
		query: url.Values{
			"limit":  {strconv.Itoa(limit)},
			"offset": {strconv.Itoa(offset)},
		},
		out:    &logs,
		authed: true,
	})
	return logs, err
}
