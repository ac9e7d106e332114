package cli

import (
	"context"
	"fmt"

	"github.com/Fredson-Santos/conekta-bots/internal/client/gate"
)

// Home renders the dashboard: bot counts against the plan limit and the
// latest executions, same summary the web console shows on "/".
func (a *App) Home(ctx context.Context) error {
	if !a.enter(gate.HomePath) {
		return nil
	}

	dash, err := a.client.Dashboard(ctx)
	if err != nil {
		a.renderError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Bots: %d of %d (%d active, %d inactive, plan %s)",
		dash.TotalBots, dash.MaxBots, dash.ActiveBots, dash.InactiveBots, dash.Plan))
	if len(dash.RecentLogs) == 0 {
		printlnFn("No recent executions.")
		return nil
	}
	printlnFn("Recent executions:")
	printLogs(dash.RecentLogs)
	return nil
}
