package cli

import (
	"context"
	"os"

	"github.com/Fredson-Santos/conekta-bots/internal/client/gate"
	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

// Settings handles the settings page: show the Shopee affiliate
// credentials or set new ones.
func (a *App) Settings(ctx context.Context, args []string) error {
	if !a.enter(gate.SettingsPath) {
		return nil
	}

	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		settings, err := a.client.GetSettings(ctx)
		if err != nil {
			a.renderError(err)
			return err
		}
		if settings == nil || settings.ShopeeAppID == "" {
			printlnFn("Shopee integration not configured.")
			return nil
		}
		printlnFn("Shopee app id: " + settings.ShopeeAppID)
		printlnFn("Shopee app secret: ********")
		return nil

	case "set":
		appID, err := getSimpleText(a.reader, "Shopee app id", os.Stdout)
		if err != nil {
			return err
		}
		appSecret, err := getSimpleText(a.reader, "Shopee app secret", os.Stdout)
		if err != nil {
			return err
		}

		_, err = a.client.UpdateSettings(ctx, models.SettingsUpdate{
			ShopeeAppID:     &appID,
			ShopeeAppSecret: &appSecret,
		})
		if err != nil {
			a.renderError(err)
			return err
		}
		printlnFn("Settings saved.")
		return nil

	default:
		printlnFn("Usage: settings [show|set]")
		return nil
	}
}
