package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/Fredson-Santos/conekta-bots/internal/client/api"
	"github.com/Fredson-Santos/conekta-bots/internal/client/config"
	"github.com/Fredson-Santos/conekta-bots/internal/client/gate"
	"github.com/Fredson-Santos/conekta-bots/internal/client/repositories/state"
	"github.com/Fredson-Santos/conekta-bots/internal/client/services"
	"github.com/Fredson-Santos/conekta-bots/internal/client/session"
	"github.com/Fredson-Santos/conekta-bots/internal/client/storage"
	"github.com/Fredson-Santos/conekta-bots/internal/logging"
)

// App is the console application: one session store, one API client, and
// the REPL state (current page plus the page remembered across a login
// redirect).
type App struct {
	config *config.Config
	db     *sql.DB
	store  session.Store
	client api.Client
	auth   *services.AuthService
	log    logging.Logger
	reader *bufio.Reader

	page    string
	pending string
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.StateDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open local state: %w", err)
	}

	store := session.NewDurableStore(state.NewSQLiteRepository(db), log)
	// hydrate before anything consults the gate, so the first navigation
	// never runs against a pre-hydration snapshot
	store.Hydrate(ctx)

	client := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, store, log)
	auth := services.NewAuthService(client, store, log)

	return &App{
		config: cfg,
		db:     db,
		store:  store,
		client: client,
		auth:   auth,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		page:   gate.HomePath,
	}, nil
}

func (a *App) Close() error {
	if err := a.client.Close(); err != nil {
		return err
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.store.Read().Authenticated
}

// Run lands on the home page (bouncing to login when the hydrated
// session is anonymous) and starts the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.navigate(gate.HomePath)
	runREPL(ctx, bufio.NewScanner(os.Stdin), a)
}
