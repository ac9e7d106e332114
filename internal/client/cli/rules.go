package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Fredson-Santos/conekta-bots/internal/client/gate"
	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

// Rules handles the forwarding-rules page: list, add, rm.
func (a *App) Rules(ctx context.Context, args []string) error {
	if !a.enter(gate.RulesPath) {
		return nil
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		return a.listRules(ctx)
	case "add":
		return a.addRule(ctx)
	case "edit":
		return a.editRule(ctx, args[1:])
	case "rm":
		return a.removeRule(ctx, args[1:])
	default:
		printlnFn("Usage: rules [list|add|edit <id>|rm <id>]")
		return nil
	}
}

func (a *App) listRules(ctx context.Context) error {
	rules, err := a.client.ListRules(ctx)
	if err != nil {
		a.renderError(err)
		return err
	}
	if len(rules) == 0 {
		printlnFn("No forwarding rules yet. Use 'rules add' to create one.")
		return nil
	}
	for _, r := range rules {
		status := "off"
		if r.Active {
			status = "on"
		}
		printlnFn(fmt.Sprintf("%4d  %-24s %s -> %s (bot %d, %s)", r.ID, r.Name, r.Source, r.Destination, r.BotID, status))
	}
	return nil
}

func (a *App) addRule(ctx context.Context) error {
	var data models.RuleCreate
	var err error

	if data.Name, err = getSimpleText(a.reader, "Rule name", os.Stdout); err != nil {
		return err
	}
	if data.Source, err = getSimpleText(a.reader, "Source chat", os.Stdout); err != nil {
		return err
	}
	if data.Destination, err = getSimpleText(a.reader, "Destination chat", os.Stdout); err != nil {
		return err
	}
	botArg, err := getSimpleText(a.reader, "Bot id", os.Stdout)
	if err != nil {
		return err
	}
	if data.BotID, err = parseID(botArg); err != nil {
		printlnFn(err.Error())
		return nil
	}
	if data.Filter, err = getSimpleText(a.reader, "Filter text (optional)", os.Stdout); err != nil {
		return err
	}
	if data.OnlyIfHas, err = getSimpleText(a.reader, "Forward only when containing (optional)", os.Stdout); err != nil {
		return err
	}

	rule, err := a.client.CreateRule(ctx, data)
	if err != nil {
		a.renderError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Created rule %d (%s).", rule.ID, rule.Name))
	return nil
}

// editRule sends a partial update with only the fields the user filled in.
func (a *App) editRule(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: rules edit <id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	var data models.RuleUpdate
	if data.Name, err = a.optionalText("Rule name"); err != nil {
		return err
	}
	if data.Source, err = a.optionalText("Source chat"); err != nil {
		return err
	}
	if data.Destination, err = a.optionalText("Destination chat"); err != nil {
		return err
	}
	if data.Filter, err = a.optionalText("Filter text"); err != nil {
		return err
	}
	if data.Replacement, err = a.optionalText("Replacement text"); err != nil {
		return err
	}
	if data.Blocked, err = a.optionalText("Blocked words"); err != nil {
		return err
	}
	if data.OnlyIfHas, err = a.optionalText("Forward only when containing"); err != nil {
		return err
	}

	rule, err := a.client.UpdateRule(ctx, id, data)
	if err != nil {
		a.renderError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Rule %d updated (%s).", rule.ID, rule.Name))
	return nil
}

func (a *App) removeRule(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: rules rm <id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	if err := a.client.DeleteRule(ctx, id); err != nil {
		a.renderError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Rule %d removed.", id))
	return nil
}
