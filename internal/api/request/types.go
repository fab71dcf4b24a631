package request

// Login is the request body for logging in. Name accepts a display name or
// an email address. Captcha and Key are verified only when both are present.
type Login struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Captcha  string `json:"captcha,omitempty"`
	Key      string `json:"key,omitempty"`
}

// Register is the request body for creating an account
type Register struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Captcha         string `json:"captcha,omitempty"`
	Key             string `json:"key,omitempty"`
}

// UpdateInfo is the request body for updating account details. Empty fields
// are left unchanged.
type UpdateInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// ResetPass is the request body for requesting a password reset
type ResetPass struct {
	Email string `json:"email"`
}

// GamesList is the request body for listing a vendor's games
type GamesList struct {
	VendorCode string `json:"vendorCode"`
	Language   string `json:"language,omitempty"`
}

// GameDetail is the request body for fetching a single game
type GameDetail struct {
	VendorCode string `json:"vendorCode"`
	GameCode   string `json:"gameCode"`
}

// LaunchURL is the request body for minting a game launch URL
type LaunchURL struct {
	VendorCode string `json:"vendorCode"`
	GameCode   string `json:"gameCode"`
	UserCode   string `json:"userCode"`
	Language   string `json:"language,omitempty"`
	LobbyURL   string `json:"lobbyUrl,omitempty"`
}

// UserCreate is the request body for provisioning a provider user
type UserCreate struct {
	UserCode string `json:"userCode"`
}

// UserBalance is the request body for reading a provider wallet balance.
// VendorCode is accepted for compatibility; wallets are per user, not per
// vendor.
type UserBalance struct {
	UserCode   string `json:"userCode"`
	VendorCode string `json:"vendorCode,omitempty"`
}

// WalletTransfer is the request body for deposits and withdrawals. Balance
// is a pointer so a missing amount can be told apart from zero.
type WalletTransfer struct {
	UserCode   string   `json:"userCode"`
	Balance    *float64 `json:"balance"`
	OrderNo    string   `json:"orderNo,omitempty"`
	VendorCode string   `json:"vendorCode,omitempty"`
}

// WithdrawAll is the request body for emptying a provider wallet
type WithdrawAll struct {
	UserCode   string `json:"userCode"`
	VendorCode string `json:"vendorCode,omitempty"`
}
