package models

// User is the authenticated account profile as returned by the backend
// (GET /auth/me). The client never mutates individual fields; identity
// updates always replace the whole record.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
	Plan     string `json:"plan"`
	MaxBots  int    `json:"max_bots"`
}

// TokenPair carries the bearer tokens issued by the backend. RefreshToken
// may be empty: older backend versions issue only an access token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}
