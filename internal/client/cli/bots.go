package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Fredson-Santos/conekta-bots/internal/client/gate"
	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

// Bots handles the bots page: list, add, toggle, rm, auth <id>.
func (a *App) Bots(ctx context.Context, args []string) error {
	if !a.enter(gate.BotsPath) {
		return nil
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		return a.listBots(ctx)
	case "add":
		return a.addBot(ctx)
	case "toggle":
		return a.toggleBot(ctx, args[1:])
	case "edit":
		return a.editBot(ctx, args[1:])
	case "rm":
		return a.removeBot(ctx, args[1:])
	case "auth":
		return a.authBot(ctx, args[1:])
	default:
		printlnFn("Usage: bots [list|add|edit <id>|toggle <id>|rm <id>|auth <id>]")
		return nil
	}
}

func (a *App) listBots(ctx context.Context) error {
	bots, err := a.client.ListBots(ctx)
	if err != nil {
		a.renderError(err)
		return err
	}
	if len(bots) == 0 {
		printlnFn("No bots yet. Use 'bots add' to create one.")
		return nil
	}
	for _, b := range bots {
		status := "inactive"
		if b.Active {
			status = "active"
		}
		printlnFn(fmt.Sprintf("%4d  %-24s %-5s %-14s %s", b.ID, b.Name, b.Type, b.Phone, status))
	}
	return nil
}

func (a *App) addBot(ctx context.Context) error {
	var data models.BotCreate
	var err error

	if data.Name, err = getSimpleText(a.reader, "Bot name", os.Stdout); err != nil {
		return err
	}
	if data.APIID, err = getSimpleText(a.reader, "Telegram api_id", os.Stdout); err != nil {
		return err
	}
	if data.APIHash, err = getSimpleText(a.reader, "Telegram api_hash", os.Stdout); err != nil {
		return err
	}
	if data.Type, err = getSimpleText(a.reader, "Type (user/bot)", os.Stdout); err != nil {
		return err
	}
	switch data.Type {
	case "bot":
		if data.BotToken, err = getSimpleText(a.reader, "Bot token", os.Stdout); err != nil {
			return err
		}
	default:
		if data.Phone, err = getSimpleText(a.reader, "Phone (+5511...)", os.Stdout); err != nil {
			return err
		}
	}

	bot, err := a.client.CreateBot(ctx, data)
	if err != nil {
		a.renderError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Created bot %d (%s).", bot.ID, bot.Name))
	return nil
}

// editBot shows the bot's current values and sends a partial update with
// only the fields the user filled in.
func (a *App) editBot(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: bots edit <id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	bot, err := a.client.GetBot(ctx, id)
	if err != nil {
		a.renderError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Editing bot %d: %s (%s, phone %q)", bot.ID, bot.Name, bot.Type, bot.Phone))

	var data models.BotUpdate
	if data.Name, err = a.optionalText("Bot name"); err != nil {
		return err
	}
	if data.Phone, err = a.optionalText("Phone"); err != nil {
		return err
	}
	if data.APIID, err = a.optionalText("Telegram api_id"); err != nil {
		return err
	}
	if data.APIHash, err = a.optionalText("Telegram api_hash"); err != nil {
		return err
	}

	updated, err := a.client.UpdateBot(ctx, id, data)
	if err != nil {
		a.renderError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Bot %d updated (%s).", updated.ID, updated.Name))
	return nil
}

func (a *App) toggleBot(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: bots toggle <id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	bot, err := a.client.ToggleBot(ctx, id)
	if err != nil {
		a.renderError(err)
		return err
	}
	state := "stopped"
	if bot.Active {
		state = "running"
	}
	printlnFn(fmt.Sprintf("Bot %d is now %s.", bot.ID, state))
	return nil
}

func (a *App) removeBot(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: bots rm <id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	if err := a.client.DeleteBot(ctx, id); err != nil {
		a.renderError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Bot %d removed.", id))
	return nil
}

// authBot walks the Telegram phone-code flow: the backend sends a code to
// the bot's phone, the user types it back, optionally with the two-factor
// password.
func (a *App) authBot(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: bots auth <id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	started, err := a.client.StartBotAuth(ctx, id)
	if err != nil {
		a.renderError(err)
		return err
	}
	printlnFn(started.Message)

	code, err := getSimpleText(a.reader, "Enter the code you received", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getSimpleText(a.reader, "Two-factor password (leave empty if none)", os.Stdout)
	if err != nil {
		return err
	}

	bot, err := a.client.VerifyBotAuth(ctx, id, code, password)
	if err != nil {
		a.renderError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Bot %d (%s) authenticated.", bot.ID, bot.Name))
	return nil
}
