package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/luckyroad/casinohub/internal/gameapi"
)

// Client is an HTTP client for the auth API
type Client struct {
	baseURL    string
	tokens     gameapi.TokenSource
	httpClient *http.Client
}

// NewClient creates a new auth API client
func NewClient(baseURL string, tokens gameapi.TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// AuthUser is an account as returned by the auth API. Money mirrors Balance
// for older payload shapes.
type AuthUser struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Balance *float64 `json:"balance"`
	Money   *float64 `json:"money"`
}

// Wallet returns the account's main wallet balance, preferring money over
// balance and defaulting to zero
func (u AuthUser) Wallet() float64 {
	if u.Money != nil {
		return *u.Money
	}
	if u.Balance != nil {
		return *u.Balance
	}
	return 0
}

// AuthResult is the payload of login and register responses
type AuthResult struct {
	AccessToken string   `json:"access_token"`
	Token       string   `json:"token"`
	User        AuthUser `json:"user"`
}

// CaptchaResult is the payload of captcha responses
type CaptchaResult struct {
	Key string `json:"key"`
	Img string `json:"img"`
}

// authEnvelope is the auth API's uniform response shape
type authEnvelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Do performs an HTTP request and decodes the envelope's data payload into
// result
func (c *Client) Do(ctx context.Context, method, path string, body, result any) (string, error) {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var env authEnvelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		if resp.StatusCode >= 400 {
			return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if env.Status != "success" {
		if env.Message != "" {
			return "", fmt.Errorf("%s", env.Message)
		}
		return "", fmt.Errorf("HTTP %d: request failed", resp.StatusCode)
	}

	if result != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return "", fmt.Errorf("failed to parse response data: %w", err)
		}
	}

	return env.Message, nil
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, result any) (string, error) {
	return c.Do(ctx, http.MethodGet, path, nil, result)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body, result any) (string, error) {
	return c.Do(ctx, http.MethodPost, path, body, result)
}

// Captcha fetches a new captcha challenge
func (c *Client) Captcha(ctx context.Context) (*CaptchaResult, error) {
	var result CaptchaResult
	if _, err := c.Post(ctx, "/api/auth/captcha", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates an account and returns the session
func (c *Client) Register(ctx context.Context, name, email, password, confirmPassword, captchaKey, captcha string) (*AuthResult, error) {
	req := map[string]string{
		"name":            name,
		"email":           email,
		"password":        password,
		"confirmPassword": confirmPassword,
		"key":             captchaKey,
		"captcha":         captcha,
	}
	var result AuthResult
	if _, err := c.Post(ctx, "/api/auth/register", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login authenticates by name or email and returns the session
func (c *Client) Login(ctx context.Context, name, password, captchaKey, captcha string) (*AuthResult, error) {
	req := map[string]string{
		"name":     name,
		"password": password,
		"key":      captchaKey,
		"captcha":  captcha,
	}
	var result AuthResult
	if _, err := c.Post(ctx, "/api/auth/login", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me fetches the logged-in account
func (c *Client) Me(ctx context.Context) (*AuthUser, error) {
	var result AuthUser
	if _, err := c.Post(ctx, "/api/auth/me", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout invalidates the session server-side
func (c *Client) Logout(ctx context.Context) (string, error) {
	return c.Post(ctx, "/api/auth/logout", nil, nil)
}

// UpdateInfo updates the account's name or email
func (c *Client) UpdateInfo(ctx context.Context, name, email string) (*AuthUser, error) {
	req := map[string]string{"name": name, "email": email}
	var result AuthUser
	if _, err := c.Post(ctx, "/api/auth/info/update", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResetPass requests a password reset for the given email
func (c *Client) ResetPass(ctx context.Context, email string) (string, error) {
	return c.Post(ctx, "/api/auth/reset_pass", map[string]string{"email": email}, nil)
}

// Health checks the server health endpoint, which responds outside the
// usual envelope
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var result struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: server unhealthy", resp.StatusCode)
	}
	return result.Status, nil
}

// MainBalance reads the logged-in account's main wallet balance. Satisfies
// the launcher's account source.
func (c *Client) MainBalance(ctx context.Context) (float64, error) {
	user, err := c.Me(ctx)
	if err != nil {
		return 0, err
	}
	return user.Wallet(), nil
}

var _ gameapi.AccountSource = (*Client)(nil)
