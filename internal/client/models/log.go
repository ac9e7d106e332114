package models

import "github.com/Fredson-Santos/conekta-bots/internal/timex"

// LogEntry is one forwarding/send event recorded by the backend workers.
// Timestamps arrive as naive ISO-8601 (the backend stores wall-clock
// datetimes without a zone), hence timex.Time.
type LogEntry struct {
	ID          int64      `json:"id"`
	BotID       int64      `json:"bot_id"`
	BotName     string     `json:"bot_nome"`
	Source      string     `json:"origem"`
	Destination string     `json:"destino"`
	Status      string     `json:"status"`
	Message     string     `json:"mensagem"`
	Timestamp   timex.Time `json:"data_hora"`
}
