package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Fredson-Santos/conekta-bots/internal/client/api"
	"github.com/Fredson-Santos/conekta-bots/internal/client/gate"
	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
	"github.com/Fredson-Santos/conekta-bots/internal/client/repositories/state"
	"github.com/Fredson-Santos/conekta-bots/internal/client/services"
	"github.com/Fredson-Santos/conekta-bots/internal/client/session"
	"github.com/Fredson-Santos/conekta-bots/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStore(t *testing.T) *session.DurableStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE client_state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return session.NewDurableStore(state.NewSQLiteRepository(db), testLogger())
}

// newTestApp wires an App over a hydrated store and a stub API client,
// skipping the real database file and HTTP transport.
func newTestApp(t *testing.T, store *session.DurableStore, client api.Client) *App {
	t.Helper()
	store.Hydrate(context.Background())
	a := &App{
		store:  store,
		client: client,
		auth:   services.NewAuthService(client, store, testLogger()),
		log:    testLogger(),
		reader: bufio.NewReader(strings.NewReader("")),
		page:   gate.HomePath,
	}
	a.navigate(gate.HomePath)
	return a
}

// capturePrints replaces printlnFn for the duration of the test and
// returns the collected lines.
func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(s string) { lines = append(lines, s) }
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

// stubInput feeds canned answers to the text and password prompts.
func stubInput(t *testing.T, answers []string, password string) {
	t.Helper()
	origText := getSimpleText
	origPass := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPass
	})

	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		answer := answers[i]
		i++
		return answer, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

// ---- stub client ----

// stubClient implements api.Client with overridable behaviors for the
// methods the CLI tests exercise.
type stubClient struct {
	LoginFn          func(ctx context.Context, email, password string) (*api.LoginResult, error)
	RegisterFn       func(ctx context.Context, email, password string) error
	CurrentFn        func(ctx context.Context) (*models.User, error)
	ListRulesFn      func(ctx context.Context) ([]models.Rule, error)
	ListBotsFn       func(ctx context.Context) ([]models.Bot, error)
	GetBotFn         func(ctx context.Context, id int64) (*models.Bot, error)
	UpdateBotFn      func(ctx context.Context, id int64, data models.BotUpdate) (*models.Bot, error)
	UpdateRuleFn     func(ctx context.Context, id int64, data models.RuleUpdate) (*models.Rule, error)
	UpdateScheduleFn func(ctx context.Context, id int64, data models.ScheduleUpdate) (*models.Schedule, error)
	DashboardFn      func(ctx context.Context) (*models.Dashboard, error)
}

func (s *stubClient) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &api.LoginResult{Tokens: models.TokenPair{AccessToken: "T1"}}, nil
}

func (s *stubClient) Register(ctx context.Context, email, password string) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return nil
}

func (s *stubClient) CurrentUser(ctx context.Context) (*models.User, error) {
	if s.CurrentFn != nil {
		return s.CurrentFn(ctx)
	}
	return &models.User{ID: 1, Email: "a@b.com", Plan: "free", MaxBots: 1, IsActive: true}, nil
}

func (s *stubClient) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return models.TokenPair{}, nil
}

func (s *stubClient) ListBots(ctx context.Context) ([]models.Bot, error) {
	if s.ListBotsFn != nil {
		return s.ListBotsFn(ctx)
	}
	return nil, nil
}
func (s *stubClient) GetBot(ctx context.Context, id int64) (*models.Bot, error) {
	if s.GetBotFn != nil {
		return s.GetBotFn(ctx, id)
	}
	return nil, nil
}
func (s *stubClient) CreateBot(ctx context.Context, data models.BotCreate) (*models.Bot, error) {
	return &models.Bot{ID: 1, Name: data.Name}, nil
}
func (s *stubClient) UpdateBot(ctx context.Context, id int64, data models.BotUpdate) (*models.Bot, error) {
	if s.UpdateBotFn != nil {
		return s.UpdateBotFn(ctx, id, data)
	}
	return nil, nil
}
func (s *stubClient) DeleteBot(ctx context.Context, id int64) error { return nil }
func (s *stubClient) ToggleBot(ctx context.Context, id int64) (*models.Bot, error) {
	return &models.Bot{ID: id, Active: true}, nil
}
func (s *stubClient) StartBotAuth(ctx context.Context, id int64) (*models.BotAuth, error) {
	return &models.BotAuth{AuthID: "x", Message: "code sent"}, nil
}
func (s *stubClient) VerifyBotAuth(ctx context.Context, id int64, code, password string) (*models.Bot, error) {
	return &models.Bot{ID: id}, nil
}

func (s *stubClient) ListRules(ctx context.Context) ([]models.Rule, error) {
	if s.ListRulesFn != nil {
		return s.ListRulesFn(ctx)
	}
	return nil, nil
}
func (s *stubClient) CreateRule(ctx context.Context, data models.RuleCreate) (*models.Rule, error) {
	return &models.Rule{ID: 1, Name: data.Name}, nil
}
func (s *stubClient) UpdateRule(ctx context.Context, id int64, data models.RuleUpdate) (*models.Rule, error) {
	if s.UpdateRuleFn != nil {
		return s.UpdateRuleFn(ctx, id, data)
	}
	return nil, nil
}
func (s *stubClient) DeleteRule(ctx context.Context, id int64) error { return nil }

func (s *stubClient) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	return nil, nil
}
func (s *stubClient) CreateSchedule(ctx context.Context, data models.ScheduleCreate) (*models.Schedule, error) {
	return &models.Schedule{ID: 1, Name: data.Name}, nil
}
func (s *stubClient) UpdateSchedule(ctx context.Context, id int64, data models.ScheduleUpdate) (*models.Schedule, error) {
	if s.UpdateScheduleFn != nil {
		return s.UpdateScheduleFn(ctx, id, data)
	}
	return nil, nil
}
func (s *stubClient) DeleteSchedule(ctx context.Context, id int64) error { return nil }

func (s *stubClient) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	return &models.Dashboard{}, nil
}

func (s *stubClient) RecentLogs(ctx context.Context, limit int) ([]models.LogEntry, error) {
	return nil, nil
}
func (s *stubClient) BotLogs(ctx context.Context, botID int64, limit, offset int) ([]models.LogEntry, error) {
	return nil, nil
}
func (s *stubClient) GetSettings(ctx context.Context) (*models.Settings, error) { return nil, nil }
func (s *stubClient) UpdateSettings(ctx context.Context, data models.SettingsUpdate) (*models.Settings, error) {
	return &models.Settings{}, nil
}
func (s *stubClient) Close() error { return nil }

var _ api.Client = (*stubClient)(nil)
