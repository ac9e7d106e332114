package models

// Schedule is a timed send job. SendMode "sequencial" walks message IDs
// starting at CurrentMsgID; "fixo" always sends the same message. Times is
// "HH:MM", or several joined with commas. All of that is interpreted by
// the backend worker.
type Schedule struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	Source       string `json:"origem"`
	Destination  string `json:"destino"`
	CurrentMsgID int64  `json:"msg_id_atual"`
	SendMode     string `json:"tipo_envio"`
	Times        string `json:"horario"`
	BotID        int64  `json:"bot_id"`
	Active       bool   `json:"ativo"`
}

// ScheduleCreate is the payload for POST /schedules/.
type ScheduleCreate struct {
	Name         string `json:"nome"`
	Source       string `json:"origem"`
	Destination  string `json:"destino"`
	CurrentMsgID int64  `json:"msg_id_atual"`
	SendMode     string `json:"tipo_envio"`
	Times        string `json:"horario"`
	BotID        int64  `json:"bot_id"`
}

// ScheduleUpdate is the payload for PUT /schedules/{id}.
type ScheduleUpdate struct {
	Name         *string `json:"nome,omitempty"`
	Source       *string `json:"origem,omitempty"`
	Destination  *string `json:"destino,omitempty"`
	CurrentMsgID *int64  `json:"msg_id_atual,omitempty"`
	SendMode     *string `json:"tipo_envio,omitempty"`
	Times        *string `json:"horario,omitempty"`
	BotID        *int64  `json:"bot_id,omitempty"`
}
