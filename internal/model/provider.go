package model

import "time"

// ProviderUser is the shadow user record the game provider keeps per account.
// One provider user per account; the provider wallet is synchronized from the
// main account balance before play.
type ProviderUser struct {
	UserCode  string    `json:"user_code"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// VendorDescriptor identifies a game vendor within the provider integration
type VendorDescriptor struct {
	Code string `json:"vendorCode"`
	Name string `json:"name"`
}

// GameDescriptor is a read-only catalog entry for a playable game
type GameDescriptor struct {
	GameCode    string `json:"gameCode"`
	Name        string `json:"name"`
	VendorCode  string `json:"vendorCode"`
	VendorName  string `json:"vendorName"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description,omitempty"`
}
