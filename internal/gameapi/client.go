package gameapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/luckyroad/casinohub/internal/model"
)

// Client wraps the transport with typed game-api calls
type Client struct {
	transport *Transport
}

// NewClient creates a Client rooted at the game-api base URL
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{transport: NewTransport(baseURL, tokens)}
}

// Vendors fetches the vendor list
func (c *Client) Vendors(ctx context.Context) ([]model.VendorDescriptor, error) {
	env, err := c.transport.Get(ctx, "/vendors/list")
	if err != nil {
		return nil, err
	}
	var vendors []model.VendorDescriptor
	if err := env.DecodeMessage(&vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// Games fetches a vendor's game list. A "vendor not found" business error is
// an empty result, not a failure.
func (c *Client) Games(ctx context.Context, vendorCode, language string) ([]model.GameDescriptor, error) {
	env, err := c.transport.Post(ctx, "/games/list", map[string]string{
		"vendorCode": vendorCode,
		"language":   language,
	})
	if err != nil {
		if IsBusinessCode(err, CodeVendorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var games []model.GameDescriptor
	if err := env.DecodeMessage(&games); err != nil {
		return nil, err
	}
	return games, nil
}

// MiniGames fetches the mini-game list
func (c *Client) MiniGames(ctx context.Context, language string) ([]model.GameDescriptor, error) {
	endpoint := "/games/mini/list"
	if language != "" {
		endpoint += "?language=" + url.QueryEscape(language)
	}
	env, err := c.transport.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	var games []model.GameDescriptor
	if err := env.DecodeMessage(&games); err != nil {
		return nil, err
	}
	return games, nil
}

// GameDetail fetches a single game
func (c *Client) GameDetail(ctx context.Context, vendorCode, gameCode string) (*model.GameDescriptor, error) {
	env, err := c.transport.Post(ctx, "/game/detail", map[string]string{
		"vendorCode": vendorCode,
		"gameCode":   gameCode,
	})
	if err != nil {
		return nil, err
	}
	var detail model.GameDescriptor
	if err := env.DecodeMessage(&detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Status checks the provider API
func (c *Client) Status(ctx context.Context) (string, error) {
	env, err := c.transport.Get(ctx, "/status")
	if err != nil {
		return "", err
	}
	return env.MessageString(), nil
}

// CreateUser provisions a provider user. Callers treat the "already exists"
// business code as success.
func (c *Client) CreateUser(ctx context.Context, userCode string) error {
	_, err := c.transport.Post(ctx, "/user/create", map[string]string{"userCode": userCode})
	return err
}

// Balance reads the provider wallet balance, optionally scoped to a vendor
func (c *Client) Balance(ctx context.Context, userCode, vendorCode string) (float64, error) {
	body := map[string]string{"userCode": userCode}
	if vendorCode != "" {
		body["vendorCode"] = vendorCode
	}
	env, err := c.transport.Post(ctx, "/user/balance", body)
	if err != nil {
		return 0, err
	}
	var balance float64
	if err := env.DecodeMessage(&balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// Deposit credits the provider wallet
func (c *Client) Deposit(ctx context.Context, userCode string, amount float64, orderNo, vendorCode string) (string, error) {
	env, err := c.transport.Post(ctx, "/user/deposit", map[string]any{
		"userCode":   userCode,
		"balance":    amount,
		"orderNo":    orderNo,
		"vendorCode": vendorCode,
	})
	if err != nil {
		return "", err
	}
	return env.MessageString(), nil
}

// Withdraw debits the provider wallet
func (c *Client) Withdraw(ctx context.Context, userCode string, amount float64, orderNo, vendorCode string) (string, error) {
	env, err := c.transport.Post(ctx, "/user/withdraw", map[string]any{
		"userCode":   userCode,
		"balance":    amount,
		"orderNo":    orderNo,
		"vendorCode": vendorCode,
	})
	if err != nil {
		return "", err
	}
	return env.MessageString(), nil
}

// WithdrawAll empties the provider wallet
func (c *Client) WithdrawAll(ctx context.Context, userCode, vendorCode string) (string, error) {
	env, err := c.transport.Post(ctx, "/user/withdraw-all", map[string]string{
		"userCode":   userCode,
		"vendorCode": vendorCode,
	})
	if err != nil {
		return "", err
	}
	return env.MessageString(), nil
}

// LaunchURL mints a game launch URL
func (c *Client) LaunchURL(ctx context.Context, vendorCode, gameCode, userCode, language, lobbyURL string) (string, error) {
	env, err := c.transport.Post(ctx, "/game/launch-url", map[string]string{
		"vendorCode": vendorCode,
		"gameCode":   gameCode,
		"userCode":   userCode,
		"language":   language,
		"lobbyUrl":   lobbyURL,
	})
	if err != nil {
		return "", err
	}
	launchURL := env.MessageString()
	if launchURL == "" {
		return "", &Error{Kind: ErrorKindBusiness, Code: CodeLaunchFailed, Message: fallbackMessage(CodeLaunchFailed)}
	}
	if _, parseErr := url.Parse(launchURL); parseErr != nil {
		return "", &Error{Kind: ErrorKindParse, Message: fmt.Sprintf("provider returned an invalid launch URL: %q", launchURL), cause: parseErr}
	}
	return launchURL, nil
}
