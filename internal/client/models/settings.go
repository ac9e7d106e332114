package models

// Settings holds the per-account integration credentials (Shopee affiliate
// keys). The backend returns null when the user never configured anything.
type Settings struct {
	ID              int64  `json:"id"`
	ShopeeAppID     string `json:"shopee_app_id,omitempty"`
	ShopeeAppSecret string `json:"shopee_app_secret,omitempty"`
	OwnerID         int64  `json:"owner_id"`
}

// SettingsUpdate is the payload for PUT /settings/.
type SettingsUpdate struct {
	ShopeeAppID     *string `json:"shopee_app_id,omitempty"`
	ShopeeAppSecret *string `json:"shopee_app_secret,omitempty"`
}
