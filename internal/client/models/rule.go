package models

// Rule is a forwarding rule attached to a bot. Filtering and rewriting
// happen server-side; the client only carries the fields.
type Rule struct {
	ID          int64  `json:"id"`
	Name        string `json:"nome"`
	Source      string `json:"origem"`
	Destination string `json:"destino"`
	BotID       int64  `json:"bot_id"`
	Filter      string `json:"filtro,omitempty"`
	Replacement string `json:"substituto,omitempty"`
	Blocked     string `json:"bloqueios,omitempty"`
	OnlyIfHas   string `json:"somente_se_tiver,omitempty"`
	Active      bool   `json:"ativo"`
}

// RuleCreate is the payload for POST /rules/.
type RuleCreate struct {
	Name        string `json:"nome"`
	Source      string `json:"origem"`
	Destination string `json:"destino"`
	BotID       int64  `json:"bot_id"`
	Filter      string `json:"filtro,omitempty"`
	Replacement string `json:"substituto,omitempty"`
	Blocked     string `json:"bloqueios,omitempty"`
	OnlyIfHas   string `json:"somente_se_tiver,omitempty"`
}

// RuleUpdate is the payload for PUT /rules/{id}.
type RuleUpdate struct {
	Name        *string `json:"nome,omitempty"`
	Source      *string `json:"origem,omitempty"`
	Destination *string `json:"destino,omitempty"`
	BotID       *int64  `json:"bot_id,omitempty"`
	Filter      *string `json:"filtro,omitempty"`
	Replacement *string `json:"substituto,omitempty"`
	Blocked     *string `json:"bloqueios,omitempty"`
	OnlyIfHas   *string `json:"somente_se_tiver,omitempty"`
}
