package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/luckyroad/casinohub/internal/gameapi"
	"github.com/luckyroad/casinohub/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthUser:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case CaptchaResult:
		o.printCaptcha(v)
	case VendorList:
		o.printVendors(v)
	case GameList:
		o.printGames(v)
	case model.GameDescriptor:
		o.printGameDetail(v)
	case gameapi.LaunchResult:
		o.printLaunchResult(v)
	case gameapi.SyncResult:
		o.printSyncResult(v)
	case WalletBalance:
		o.printWalletBalance(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// VendorList wraps the vendor slice for typed printing
type VendorList []model.VendorDescriptor

// GameList wraps the game slice for typed printing
type GameList []model.GameDescriptor

// WalletBalance pairs a user code with its provider wallet balance
type WalletBalance struct {
	UserCode string  `json:"user_code"`
	Balance  float64 `json:"balance"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u AuthUser) {
	fmt.Printf("Account: %s (%s)\n", u.Name, u.ID)
	fmt.Printf("Email: %s\n", u.Email)
	fmt.Printf("Balance: %g\n", u.Wallet())
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.AccessToken)
}

func (o *Output) printCaptcha(c CaptchaResult) {
	fmt.Printf("Key: %s\n", c.Key)
	fmt.Printf("Image: %s\n", c.Img)
}

func (o *Output) printVendors(vendors VendorList) {
	fmt.Printf("Vendors (%d):\n", len(vendors))
	for _, v := range vendors {
		fmt.Printf("  - %s (%s)\n", v.Name, v.Code)
	}
}

func (o *Output) printGames(games GameList) {
	fmt.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		fmt.Printf("  - %s (%s) - %s\n", g.Name, g.GameCode, g.Category)
	}
}

func (o *Output) printGameDetail(g model.GameDescriptor) {
	fmt.Printf("Game: %s (%s)\n", g.Name, g.GameCode)
	fmt.Printf("Vendor: %s (%s)\n", g.VendorName, g.VendorCode)
	fmt.Printf("Category: %s\n", g.Category)
	if g.ImageURL != "" {
		fmt.Printf("Image: %s\n", g.ImageURL)
	}
	if g.Description != "" {
		fmt.Printf("Description: %s\n", g.Description)
	}
}

func (o *Output) printLaunchResult(l gameapi.LaunchResult) {
	fmt.Printf("Launch URL: %s\n", l.URL)
	fmt.Printf("Vendor: %s\n", l.VendorCode)
	fmt.Printf("Locale: %s\n", l.Locale)
	if l.Sync.Deposited > 0 {
		fmt.Printf("Deposited: %g (order %s)\n", l.Sync.Deposited, l.Sync.OrderNo)
	}
	if l.Sync.Err != nil {
		fmt.Printf("Warning: balance sync failed: %s\n", l.Sync.Err)
	}
}

func (o *Output) printSyncResult(s gameapi.SyncResult) {
	fmt.Printf("Main Balance: %g\n", s.MainBalance)
	fmt.Printf("Provider Balance: %g\n", s.ProviderBalance)
	if s.Deposited > 0 {
		fmt.Printf("Deposited: %g (order %s)\n", s.Deposited, s.OrderNo)
	} else {
		fmt.Println("Deposited: nothing to reconcile")
	}
	if s.Err != nil {
		fmt.Printf("Warning: balance sync failed: %s\n", s.Err)
	}
}

func (o *Output) printWalletBalance(b WalletBalance) {
	fmt.Printf("User: %s\n", b.UserCode)
	fmt.Printf("Balance: %g\n", b.Balance)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
