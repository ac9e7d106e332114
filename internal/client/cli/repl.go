package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = func(s string) { fmt.Println(s) }

// execIface defines the minimal command surface the REPL needs. The real
// App type satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	status() string
	Go(path string)
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Home(ctx context.Context) error
	Bots(ctx context.Context, args []string) error
	Rules(ctx context.Context, args []string) error
	Schedules(ctx context.Context, args []string) error
	Logs(ctx context.Context, args []string) error
	Settings(ctx context.Context, args []string) error
}

// status renders the prompt suffix: signed-in email (when known) and the
// current page.
func (a *App) status() string {
	s := ""
	if sess := a.store.Read(); sess.Authenticated && sess.User != nil {
		s = sess.User.Email + " "
	}
	return fmt.Sprintf("(%s%s)", s, a.page)
}

// Go navigates to a page through the gate and reports where the console
// landed.
func (a *App) Go(path string) {
	landed := a.navigate(path)
	if landed != path {
		printlnFn("Redirected to " + landed + ".")
		return
	}
	printlnFn("Now at " + landed + ".")
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. Unknown commands are reported back. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, scanner *bufio.Scanner, a execIface) {
	printlnFn("Conekta Bots console (type 'help' for commands)")

	for {
		fmt.Printf("conekta %s> ", a.status())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, bots, rules, schedules, logs, settings, whoami, go <page>, logout, exit")
			} else {
				printlnFn("Available commands: login, register, exit")
			}
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "home", "dashboard":
			_ = a.Home(ctx)
		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go </bots|/rules|/schedules|/logs|/settings|/>")
				continue
			}
			a.Go(args[0])
		case "bots":
			_ = a.Bots(ctx, args)
		case "rules":
			_ = a.Rules(ctx, args)
		case "schedules":
			_ = a.Schedules(ctx, args)
		case "logs":
			_ = a.Logs(ctx, args)
		case "settings":
			_ = a.Settings(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
