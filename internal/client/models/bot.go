package models

// Bot is a managed messaging bot. The backend keeps api_hash and
// session_string to itself, so they never appear in responses.
type Bot struct {
	ID      int64  `json:"id"`
	Name    string `json:"nome"`
	APIID   string `json:"api_id"`
	Type    string `json:"tipo"` // "user" or "bot"
	Phone   string `json:"phone,omitempty"`
	Active  bool   `json:"ativo"`
	OwnerID int64  `json:"owner_id"`
}

// BotCreate is the payload for POST /bots/.
type BotCreate struct {
	Name          string `json:"nome"`
	APIID         string `json:"api_id"`
	APIHash       string `json:"api_hash"`
	Type          string `json:"tipo"`
	BotToken      string `json:"bot_token,omitempty"`
	Phone         string `json:"phone,omitempty"`
	SessionString string `json:"session_string,omitempty"`
}

// BotUpdate is the payload for PUT /bots/{id}. Nil fields are omitted so
// the backend only touches what the caller set.
type BotUpdate struct {
	Name     *string `json:"nome,omitempty"`
	APIID    *string `json:"api_id,omitempty"`
	APIHash  *string `json:"api_hash,omitempty"`
	Type     *string `json:"tipo,omitempty"`
	BotToken *string `json:"bot_token,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// BotAuth is the handle returned when a phone-code authentication flow is
// started for a bot; the auth_id is echoed back on verification.
type BotAuth struct {
	AuthID  string `json:"auth_id"`
	Message string `json:"message"`
}
