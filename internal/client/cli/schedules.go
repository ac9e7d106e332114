package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Fredson-Santos/conekta-bots/internal/client/gate"
	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

// Schedules handles the scheduled-sends page: list, add, rm.
func (a *App) Schedules(ctx context.Context, args []string) error {
	if !a.enter(gate.SchedulesPath) {
		return nil
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		return a.listSchedules(ctx)
	case "add":
		return a.addSchedule(ctx)
	case "edit":
		return a.editSchedule(ctx, args[1:])
	case "rm":
		return a.removeSchedule(ctx, args[1:])
	default:
		printlnFn("Usage: schedules [list|add|edit <id>|rm <id>]")
		return nil
	}
}

func (a *App) listSchedules(ctx context.Context) error {
	schedules, err := a.client.ListSchedules(ctx)
	if err != nil {
		a.renderError(err)
		return err
	}
	if len(schedules) == 0 {
		printlnFn("No schedules yet. Use 'schedules add' to create one.")
		return nil
	}
	for _, s := range schedules {
		status := "off"
		if s.Active {
			status = "on"
		}
		printlnFn(fmt.Sprintf("%4d  %-24s %s -> %s at %s (%s, bot %d, %s)",
			s.ID, s.Name, s.Source, s.Destination, s.Times, s.SendMode, s.BotID, status))
	}
	return nil
}

func (a *App) addSchedule(ctx context.Context) error {
	var data models.ScheduleCreate
	var err error

	if data.Name, err = getSimpleText(a.reader, "Schedule name", os.Stdout); err != nil {
		return err
	}
	if data.Source, err = getSimpleText(a.reader, "Source chat", os.Stdout); err != nil {
		return err
	}
	if data.Destination, err = getSimpleText(a.reader, "Destination chat", os.Stdout); err != nil {
		return err
	}
	msgArg, err := getSimpleText(a.reader, "Starting message id", os.Stdout)
	if err != nil {
		return err
	}
	if data.CurrentMsgID, err = strconv.ParseInt(msgArg, 10, 64); err != nil {
		printlnFn("invalid message id " + strconv.Quote(msgArg))
		return nil
	}
	if data.SendMode, err = getSimpleText(a.reader, "Send mode (sequencial/fixo)", os.Stdout); err != nil {
		return err
	}
	if data.Times, err = getSimpleText(a.reader, "Times (HH:MM, comma separated)", os.Stdout); err != nil {
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

	schedule, err := a.client.CreateSchedule(ctx, data)
	if err != nil {
		a.renderError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Created schedule %d (%s).", schedule.ID, schedule.Name))
	return nil
}

// editSchedule sends a partial update with only the fields the user
// filled in.
func (a *App) editSchedule(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: schedules edit <id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	var data models.ScheduleUpdate
	if data.Name, err = a.optionalText("Schedule name"); err != nil {
		return err
	}
	if data.Source, err = a.optionalText("Source chat"); err != nil {
		return err
	}
	if data.Destination, err = a.optionalText("Destination chat"); err != nil {
		return err
	}
	msgArg, err := a.optionalText("Starting message id")
	if err != nil {
		return err
	}
	if msgArg != nil {
		msgID, err := strconv.ParseInt(*msgArg, 10, 64)
		if err != nil {
			printlnFn("invalid message id " + strconv.Quote(*msgArg))
			return nil
		}
		data.CurrentMsgID = &msgID
	}
	if data.SendMode, err = a.optionalText("Send mode (sequencial/fixo)"); err != nil {
		return err
	}
	if data.Times, err = a.optionalText("Times (HH:MM, comma separated)"); err != nil {
		return err
	}

	schedule, err := a.client.UpdateSchedule(ctx, id, data)
	if err != nil {
		a.renderError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Schedule %d updated (%s).", schedule.ID, schedule.Name))
	return nil
}

func (a *App) removeSchedule(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: schedules rm <id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	if err := a.client.DeleteSchedule(ctx, id); err != nil {
		a.renderError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Schedule %d removed.", id))
	return nil
}
