// Package cli implements the interactive console for Conekta Bots: a
// REPL whose pages mirror the browser console (bots, rules, schedules,
// logs, settings) and whose navigation runs through the session gate, so
// protected pages bounce anonymous users to login and remember where they
// were headed.
package cli
