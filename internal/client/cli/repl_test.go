package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// replStub records which commands the REPL dispatched.
type replStub struct {
	loggedIn bool
	calls    []string
	goPaths  []string
}

func (s *replStub) isLoggedIn() bool { return s.loggedIn }
func (s *replStub) status() string   { return "(/)" }
func (s *replStub) Go(path string) {
	s.calls = append(s.calls, "go")
	s.goPaths = append(s.goPaths, path)
}
func (s *replStub) Login(ctx context.Context) error    { s.calls = append(s.calls, "login"); return nil }
func (s *replStub) Register(ctx context.Context) error { s.calls = append(s.calls, "register"); return nil }
func (s *replStub) Logout(ctx context.Context) error   { s.calls = append(s.calls, "logout"); return nil }
func (s *replStub) WhoAmI(ctx context.Context) error   { s.calls = append(s.calls, "whoami"); return nil }
func (s *replStub) Home(ctx context.Context) error     { s.calls = append(s.calls, "home"); return nil }
func (s *replStub) Bots(ctx context.Context, args []string) error {
	s.calls = append(s.calls, "bots")
	return nil
}
func (s *replStub) Rules(ctx context.Context, args []string) error {
	s.calls = append(s.calls, "rules")
	return nil
}
func (s *replStub) Schedules(ctx context.Context, args []string) error {
	s.calls = append(s.calls, "schedules")
	return nil
}
func (s *replStub) Logs(ctx context.Context, args []string) error {
	s.calls = append(s.calls, "logs")
	return nil
}
func (s *replStub) Settings(ctx context.Context, args []string) error {
	s.calls = append(s.calls, "settings")
	return nil
}

var _ execIface = (*replStub)(nil)

func runScript(t *testing.T, stub *replStub, script string) {
	t.Helper()
	runREPL(context.Background(), bufio.NewScanner(strings.NewReader(script)), stub)
}

func TestREPL_DispatchesCommands(t *testing.T) {
	capturePrints(t)
	stub := &replStub{loggedIn: true}

	runScript(t, stub, "home\nbots list\nrules\nschedules add\nlogs recent\nsettings show\nwhoami\nlogout\nexit\n")

	assert.Equal(t, []string{"home", "bots", "rules", "schedules", "logs", "settings", "whoami", "logout"}, stub.calls)
}

func TestREPL_GoPassesPath(t *testing.T) {
	capturePrints(t)
	stub := &replStub{loggedIn: true}

	runScript(t, stub, "go /rules\nexit\n")

	assert.Equal(t, []string{"/rules"}, stub.goPaths)
}

func TestREPL_GoWithoutArgPrintsUsage(t *testing.T) {
	lines := capturePrints(t)
	stub := &replStub{}

	runScript(t, stub, "go\nexit\n")

	assert.Empty(t, stub.goPaths)
	assert.Contains(t, *lines, "Usage: go </bots|/rules|/schedules|/logs|/settings|/>")
}

func TestREPL_HelpVariesByLoginState(t *testing.T) {
	lines := capturePrints(t)
	runScript(t, &replStub{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, *lines, "Available commands: login, register, exit")

	lines = capturePrints(t)
	runScript(t, &replStub{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, *lines, "Available commands: home, bots, rules, schedules, logs, settings, whoami, go <page>, logout, exit")
}

func TestREPL_UnknownCommand(t *testing.T) {
	lines := capturePrints(t)

	runScript(t, &replStub{}, "frobnicate\nexit\n")

	assert.Contains(t, *lines, "Unknown command: frobnicate")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	capturePrints(t)
	stub := &replStub{}

	// no exit command; the scanner just runs dry
	runScript(t, stub, "whoami\n")

	assert.Equal(t, []string{"whoami"}, stub.calls)
}

func TestREPL_SkipsBlankLines(t *testing.T) {
	capturePrints(t)
	stub := &replStub{}

	runScript(t, stub, "\n   \nwhoami\nquit\n")

	assert.Equal(t, []string{"whoami"}, stub.calls)
}
