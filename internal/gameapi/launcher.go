package gameapi

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/luckyroad/casinohub/internal/dependencies/clock"
	"github.com/luckyroad/casinohub/internal/dependencies/random"
)

// orderSuffixLength matches the provider's expected order number format
const orderSuffixLength = 9

// AccountSource reads the main wallet balance of the logged-in account
type AccountSource interface {
	MainBalance(ctx context.Context) (float64, error)
}

// SyncResult reports what balance reconciliation did. Reconciliation never
// aborts a launch; callers inspect Err to decide whether to surface it.
type SyncResult struct {
	MainBalance     float64
	ProviderBalance float64
	Deposited       float64
	OrderNo         string
	Err             error
}

// LaunchResult is the outcome of a successful game launch
type LaunchResult struct {
	URL        string
	VendorCode string
	Locale     string
	Sync       SyncResult
}

// Launcher runs the game launch sequence: resolve vendor, provision the
// provider user, reconcile balances, fetch the launch URL. Only the final
// stage's errors propagate.
type Launcher struct {
	client  *Client
	account AccountSource
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	// lobbyURL is where the provider redirects when a game closes
	lobbyURL string

	// launches serializes launch attempts per user so the provision and
	// top-up stages never race for the same wallet
	launches singleflight.Group
}

// NewLauncher creates a Launcher
func NewLauncher(client *Client, account AccountSource, clk clock.Clock, rnd random.Random, logger *slog.Logger, lobbyURL string) *Launcher {
	return &Launcher{
		client:   client,
		account:  account,
		clock:    clk,
		random:   rnd,
		logger:   logger.With(slog.String("component", "launcher")),
		lobbyURL: lobbyURL,
	}
}

// ResolveVendorCode maps a vendor label to a canonical vendor code. Labels
// in the static alias table resolve without consulting the live vendor list.
// Synthesized codes are checked against the live list with a
// case-insensitive substring match; list failures never block, the
// synthesized code is kept.
func (l *Launcher) ResolveVendorCode(ctx context.Context, label string) string {
	code, mapped := ResolveVendorAlias(label)
	if mapped {
		return code
	}

	vendors, err := l.client.Vendors(ctx)
	if err != nil {
		l.logger.Warn("vendor list unavailable, keeping synthesized code",
			slog.String("vendor_code", code),
			slog.String("error", err.Error()),
		)
		return code
	}

	lower := strings.ToLower(code)
	for _, v := range vendors {
		if strings.EqualFold(v.Code, code) {
			return v.Code
		}
	}
	for _, v := range vendors {
		if strings.Contains(strings.ToLower(v.Name), lower) || strings.Contains(strings.ToLower(v.Code), lower) {
			l.logger.Info("matched vendor by name",
				slog.String("label", label),
				slog.String("vendor_code", v.Code),
			)
			return v.Code
		}
	}

	l.logger.Warn("no matching vendor, keeping synthesized code", slog.String("vendor_code", code))
	return code
}

// LaunchGame runs the full launch sequence and returns the playable URL.
// Concurrent launches for the same user share a single flight.
func (l *Launcher) LaunchGame(ctx context.Context, vendorLabel, gameCode, userCode, language, lobbyURL string) (*LaunchResult, error) {
	if invalidCode(vendorLabel) {
		return nil, NewValidationError("vendor code must not be empty")
	}
	if invalidCode(gameCode) {
		return nil, NewValidationError("game code must not be empty")
	}
	if invalidCode(userCode) {
		return nil, NewValidationError("user code is invalid, log in again")
	}

	// Keyed by user, not user+game: a launch requested while another is in
	// flight for the same account returns the in-flight result, even for a
	// different game. The wallet is shared per account, so letting a second
	// game through would race the top-up.
	result, err, _ := l.launches.Do(userCode, func() (any, error) {
		return l.launch(ctx, vendorLabel, gameCode, userCode, language, lobbyURL)
	})
	if err != nil {
		return nil, err
	}
	return result.(*LaunchResult), nil
}

func (l *Launcher) launch(ctx context.Context, vendorLabel, gameCode, userCode, language, lobbyURL string) (*LaunchResult, error) {
	vendorCode := l.ResolveVendorCode(ctx, vendorLabel)

	locale, known := ResolveLocale(language)
	if !known && language != "" {
		l.logger.Warn("no locale mapping, using default",
			slog.String("language", language),
			slog.String("locale", locale),
		)
	}

	if lobbyURL == "" {
		lobbyURL = l.lobbyURL
	}

	l.ensureProviderUser(ctx, userCode)
	sync := l.syncBalance(ctx, userCode, vendorCode)

	launchURL, err := l.client.LaunchURL(ctx, vendorCode, gameCode, userCode, locale, lobbyURL)
	if err != nil {
		return nil, err
	}

	return &LaunchResult{
		URL:        launchURL,
		VendorCode: vendorCode,
		Locale:     locale,
		Sync:       sync,
	}, nil
}

// Sync reconciles the provider wallet against the main wallet outside of a
// launch, provisioning the provider user first
func (l *Launcher) Sync(ctx context.Context, userCode, vendorCode string) (SyncResult, error) {
	if invalidCode(userCode) {
		return SyncResult{}, NewValidationError("user code is invalid, log in again")
	}
	l.ensureProviderUser(ctx, userCode)
	return l.syncBalance(ctx, userCode, vendorCode), nil
}

// ensureProviderUser provisions the provider user. "Already exists" is
// success; any other failure is logged and the launch continues, since the
// user may exist from a prior session.
func (l *Launcher) ensureProviderUser(ctx context.Context, userCode string) {
	err := l.client.CreateUser(ctx, userCode)
	if err == nil || IsBusinessCode(err, CodeAlreadyExists) {
		return
	}
	l.logger.Warn("provider user provisioning failed, continuing",
		slog.String("user_code", userCode),
		slog.String("error", err.Error()),
	)
}

// syncBalance tops the provider wallet up to the main wallet balance. Every
// stage degrades to a default on failure; the result records what happened
// so callers can decide whether to surface it.
func (l *Launcher) syncBalance(ctx context.Context, userCode, vendorCode string) SyncResult {
	var result SyncResult

	main, err := l.account.MainBalance(ctx)
	if err != nil {
		l.logger.Warn("main balance unavailable, assuming zero", slog.String("error", err.Error()))
		main = 0
	}
	result.MainBalance = main

	if main <= 0 {
		return result
	}

	provider, err := l.client.Balance(ctx, userCode, vendorCode)
	if err != nil {
		l.logger.Warn("provider balance unavailable, assuming zero",
			slog.String("user_code", userCode),
			slog.String("error", err.Error()),
		)
		provider = 0
	}
	result.ProviderBalance = provider

	delta := main - provider
	if delta <= 0 {
		return result
	}

	orderNo := fmt.Sprintf("DEPOSIT_%s_%d_%s",
		userCode,
		l.clock.Now().UnixMilli(),
		l.random.String(orderSuffixLength, random.OrderSuffixAlphabet),
	)
	result.OrderNo = orderNo

	if _, err := l.client.Deposit(ctx, userCode, delta, orderNo, vendorCode); err != nil {
		l.logger.Warn("balance top-up failed, continuing",
			slog.String("user_code", userCode),
			slog.String("order_no", orderNo),
			slog.String("error", err.Error()),
		)
		result.Err = err
		return result
	}

	result.Deposited = delta
	return result
}

// invalidCode reports whether a code is empty or a serialized placeholder
func invalidCode(code string) bool {
	switch strings.TrimSpace(code) {
	case "", "0", "null", "undefined":
		return true
	}
	return false
}
