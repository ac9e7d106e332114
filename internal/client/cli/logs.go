package cli

import (
	"context"
	"fmt"

	"github.com/Fredson-Santos/conekta-bots/internal/client/gate"
	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

const defaultLogLimit = 20

// Logs handles the activity page: recent logs across all bots, or one
// bot's logs with paging.
func (a *App) Logs(ctx context.Context, args []string) error {
	if !a.enter(gate.LogsPath) {
		return nil
	}

	if len(args) == 0 || args[0] == "recent" {
		logs, err := a.client.RecentLogs(ctx, defaultLogLimit)
		if err != nil {
			a.renderError(err)
			return err
		}
		printLogs(logs)
		return nil
	}

	if args[0] == "bot" && len(args) > 1 {
		id, err := parseID(args[1])
		if err != nil {
			printlnFn(err.Error())
			return nil
		}
		offset := 0
		if len(args) > 2 {
			if _, err := fmt.Sscanf(args[2], "%d", &offset); err != nil || offset < 0 {
				printlnFn("invalid offset " + args[2])
				return nil
			}
		}
		logs, err := a.client.BotLogs(ctx, id, 50, offset)
		if err != nil {
			a.renderError(err)
			return err
		}
		printLogs(logs)
		return nil
	}

	printlnFn("Usage: logs [recent|bot <id> [offset]]")
	return nil
}

func printLogs(logs []models.LogEntry) {
	if len(logs) == 0 {
		printlnFn("No activity recorded.")
		return
	}
	for _, l := range logs {
		printlnFn(fmt.Sprintf("%s  [%s] %s: %s -> %s  %s",
			l.Timestamp.Format("2006-01-02 15:04:05"), l.Status, l.BotName, l.Source, l.Destination, l.Message))
	}
}
