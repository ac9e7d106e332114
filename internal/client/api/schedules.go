package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

func (c *HTTPClient) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/schedules/", out: &schedules, authed: true})
	return schedules, err
}

func (c *HTTPClient) CreateSchedule(ctx context.Context, data models.ScheduleCreate) (*models.Schedule, error) {
	var schedule models.Schedule
	err := c.call(ctx, callOpts{method: http.MethodPost, path: "/schedules/", body: data, out: &schedule, authed: true})
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (c *HTTPClient) UpdateSchedule(ctx context.Context, id int64, data models.ScheduleUpdate) (*models.Schedule, error) {
	var schedule models.Schedule
	err := c.call(ctx, callOpts{method: http.MethodPut, path: fmt.Sprintf("/schedules/%d", id), body: data, out: &schedule, authed: true})
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (c *HTTPClient) DeleteSchedule(ctx context.Context, id int64) error {
	return c.call(ctx, callOpts{method: http.MethodDelete, path: fmt.Sprintf("/schedules/%d", id), authed: true})
}
