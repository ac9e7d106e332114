// Package api is the network boundary of the console: a typed client for
// the bots backend REST API. It owns bearer-token injection, the refresh
// handshake, and the mapping of HTTP failures to the error taxonomy the
// rest of the client understands.
package api

import (
	"context"

	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

// LoginResult is what a successful login yields. User is non-nil only
// when the backend inlines the profile in the login response; otherwise
// the caller fetches it separately via CurrentUser.
type LoginResult struct {
	Tokens models.TokenPair
	User   *models.User
}

// Client is the full surface the console consumes. All methods honor
// context cancellation; authenticated methods attach the current bearer
// token and surface ErrUnauthorized once the backend rejects it for good.
type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, email, password string) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// Bots.
	ListBots(ctx context.Context) ([]models.Bot, error)
	GetBot(ctx context.Context, id int64) (*models.Bot, error)
	CreateBot(ctx context.Context, data models.BotCreate) (*models.Bot, error)
	UpdateBot(ctx context.Context, id int64, data models.BotUpdate) (*models.Bot, error)
	DeleteBot(ctx context.Context, id int64) error
	ToggleBot(ctx context.Context, id int64) (*models.Bot, error)
	StartBotAuth(ctx context.Context, id int64) (*models.BotAuth, error)
	VerifyBotAuth(ctx context.Context, id int64, code, password string) (*models.Bot, error)

	// Rules.
	ListRules(ctx context.Context) ([]models.Rule, error)
	CreateRule(ctx context.Context, data models.RuleCreate) (*models.Rule, error)
	UpdateRule(ctx context.Context, id int64, data models.RuleUpdate) (*models.Rule, error)
	DeleteRule(ctx context.Context, id int64) error

	// Schedules.
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
	CreateSchedule(ctx context.Context, data models.ScheduleCreate) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, id int64, data models.ScheduleUpdate) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) error

	// Analytics and settings.
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	RecentLogs(ctx context.Context, limit int) ([]models.LogEntry, error)
	BotLogs(ctx context.Context, botID int64, limit, offset int) ([]models.LogEntry, error)
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, data models.SettingsUpdate) (*models.Settings, error)

	Close() error
}
