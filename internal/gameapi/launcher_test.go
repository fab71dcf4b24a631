package gameapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckyroad/casinohub/internal/dependencies/mocks"
	"github.com/luckyroad/casinohub/internal/gameapi"
)

type staticBalance float64

func (b staticBalance) MainBalance(ctx context.Context) (float64, error) {
	return float64(b), nil
}

type failingBalance struct{}

func (failingBalance) MainBalance(ctx context.Context) (float64, error) {
	return 0, errors.New("account service unavailable")
}

// gatedBalance parks the launch sequence inside the balance stage so a test
// can line up a second caller before letting the first one finish
type gatedBalance struct {
	entered chan struct{}
	release chan struct{}
}

func (g *gatedBalance) MainBalance(ctx context.Context) (float64, error) {
	g.entered <- struct{}{}
	<-g.release
	return 50, nil
}

// stubProvider is a fake game-api server that records every call and lets
// tests script per-endpoint responses
type stubProvider struct {
	mu        sync.Mutex
	calls     map[string]int
	bodies    map[string][]map[string]any
	responses map[string]string

	server *httptest.Server
}

func newStubProvider(t *testing.T) *stubProvider {
	t.Helper()
	p := &stubProvider{
		calls:     make(map[string]int),
		bodies:    make(map[string][]map[string]any),
		responses: make(map[string]string),
	}
	p.server = httptest.NewServer(http.HandlerFunc(p.handle))
	t.Cleanup(p.server.Close)
	return p
}

func (p *stubProvider) handle(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls[r.URL.Path]++
	if r.Method == http.MethodPost {
		var body map[string]any
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		p.bodies[r.URL.Path] = append(p.bodies[r.URL.Path], body)
	}

	if resp, ok := p.responses[r.URL.Path]; ok {
		_, _ = w.Write([]byte(resp))
		return
	}

	switch r.URL.Path {
	case "/vendors/list":
		_, _ = w.Write([]byte(`{"success":true,"errorCode":0,"message":[{"vendorCode":"slot-pragmatic","name":"Pragmatic Play"}]}`))
	case "/user/create":
		_, _ = w.Write([]byte(`{"success":true,"errorCode":0,"message":"user created"}`))
	case "/user/balance":
		_, _ = w.Write([]byte(`{"success":true,"errorCode":0,"message":0}`))
	case "/user/deposit":
		_, _ = w.Write([]byte(`{"success":true,"errorCode":0,"message":"deposit successful"}`))
	case "/game/launch-url":
		_, _ = w.Write([]byte(`{"success":true,"errorCode":0,"message":"https://play.example.com/game?vendor=slot-pragmatic"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"errorCode":404,"message":"not found"}`))
	}
}

func (p *stubProvider) respond(path, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses[path] = body
}

func (p *stubProvider) callCount(path string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[path]
}

func (p *stubProvider) lastBody(path string) map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	bodies := p.bodies[path]
	if len(bodies) == 0 {
		return nil
	}
	return bodies[len(bodies)-1]
}

func (p *stubProvider) totalCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for _, n := range p.calls {
		total += n
	}
	return total
}

func newTestLauncher(t *testing.T, provider *stubProvider, account gameapi.AccountSource) (*gameapi.Launcher, *mocks.MockClock, *mocks.MockRandom) {
	t.Helper()
	clk := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	rnd := mocks.NewMockRandom()
	client := gameapi.NewClient(provider.server.URL, staticToken("tok123"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gameapi.NewLauncher(client, account, clk, rnd, logger, "https://lobby.example.com"), clk, rnd
}

func TestLaunchDepositsShortfallThenLaunches(t *testing.T) {
	provider := newStubProvider(t)
	launcher, clk, rnd := newTestLauncher(t, provider, staticBalance(50))
	rnd.QueueString("abc123xyz")

	result, err := launcher.LaunchGame(context.Background(), "PRAGMATIC", "GAME001", "u123", "en", "")
	require.NoError(t, err)

	assert.Equal(t, "https://play.example.com/game?vendor=slot-pragmatic", result.URL)
	assert.Equal(t, "slot-pragmatic", result.VendorCode)
	assert.Equal(t, "en", result.Locale)

	assert.Equal(t, 1, provider.callCount("/user/create"))
	assert.Equal(t, 1, provider.callCount("/user/deposit"))
	assert.Equal(t, 1, provider.callCount("/game/launch-url"))

	require.NoError(t, result.Sync.Err)
	assert.Equal(t, 50.0, result.Sync.MainBalance)
	assert.Equal(t, 0.0, result.Sync.ProviderBalance)
	assert.Equal(t, 50.0, result.Sync.Deposited)

	expectedOrder := fmt.Sprintf("DEPOSIT_u123_%d_abc123xyz", clk.CurrentTime.UnixMilli())
	assert.Equal(t, expectedOrder, result.Sync.OrderNo)

	deposit := provider.lastBody("/user/deposit")
	require.NotNil(t, deposit)
	assert.Equal(t, 50.0, deposit["balance"])
	assert.Equal(t, expectedOrder, deposit["orderNo"])

	launch := provider.lastBody("/game/launch-url")
	require.NotNil(t, launch)
	assert.Equal(t, "slot-pragmatic", launch["vendorCode"])
	assert.Equal(t, "GAME001", launch["gameCode"])
	assert.Equal(t, "u123", launch["userCode"])
	assert.Equal(t, "https://lobby.example.com", launch["lobbyUrl"])
}

func TestLaunchDeduplicatesConcurrentLaunchesPerUser(t *testing.T) {
	provider := newStubProvider(t)
	account := &gatedBalance{
		entered: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	launcher, _, rnd := newTestLauncher(t, provider, account)
	rnd.QueueString("abc123xyz", "zzz999zzz")

	type outcome struct {
		result *gameapi.LaunchResult
		err    error
	}
	outcomes := make(chan outcome, 2)
	run := func() {
		result, err := launcher.LaunchGame(context.Background(), "PRAGMATIC", "GAME001", "u123", "en", "")
		outcomes <- outcome{result, err}
	}

	go run()
	<-account.entered

	// The first caller is parked mid-flight; give the second one time to
	// join it before releasing.
	go run()
	time.Sleep(100 * time.Millisecond)
	close(account.release)

	first := <-outcomes
	second := <-outcomes
	require.NoError(t, first.err)
	require.NoError(t, second.err)

	assert.Equal(t, 1, provider.callCount("/user/create"))
	assert.Equal(t, 1, provider.callCount("/user/deposit"))
	assert.Equal(t, 1, provider.callCount("/game/launch-url"))

	assert.Equal(t, first.result.URL, second.result.URL)
	assert.Equal(t, first.result.Sync.OrderNo, second.result.Sync.OrderNo)
	assert.Equal(t, 50.0, first.result.Sync.Deposited)
}

func TestLaunchSkipsDepositWhenProviderIsFunded(t *testing.T) {
	provider := newStubProvider(t)
	provider.respond("/user/balance", `{"success":true,"errorCode":0,"message":75}`)
	launcher, _, _ := newTestLauncher(t, provider, staticBalance(50))

	result, err := launcher.LaunchGame(context.Background(), "PRAGMATIC", "GAME001", "u123", "en", "")
	require.NoError(t, err)

	assert.Equal(t, 0, provider.callCount("/user/deposit"))
	assert.Equal(t, 75.0, result.Sync.ProviderBalance)
	assert.Zero(t, result.Sync.Deposited)
	assert.Empty(t, result.Sync.OrderNo)
}

func TestLaunchSkipsSyncWhenMainBalanceIsZero(t *testing.T) {
	provider := newStubProvider(t)
	launcher, _, _ := newTestLauncher(t, provider, staticBalance(0))

	result, err := launcher.LaunchGame(context.Background(), "PRAGMATIC", "GAME001", "u123", "en", "")
	require.NoError(t, err)

	assert.Equal(t, 0, provider.callCount("/user/balance"))
	assert.Equal(t, 0, provider.callCount("/user/deposit"))
	assert.NotEmpty(t, result.URL)
}

func TestLaunchContinuesWhenMainBalanceUnavailable(t *testing.T) {
	provider := newStubProvider(t)
	launcher, _, _ := newTestLauncher(t, provider, failingBalance{})

	result, err := launcher.LaunchGame(context.Background(), "PRAGMATIC", "GAME001", "u123", "en", "")
	require.NoError(t, err)

	assert.Equal(t, 0, provider.callCount("/user/deposit"))
	assert.NotEmpty(t, result.URL)
}

func TestLaunchContinuesWhenProvisioningFails(t *testing.T) {
	provider := newStubProvider(t)
	provider.respond("/user/create", `{"success":false,"errorCode":500,"message":"internal error"}`)
	launcher, _, rnd := newTestLauncher(t, provider, staticBalance(50))
	rnd.QueueString("abc123xyz")

	result, err := launcher.LaunchGame(context.Background(), "PRAGMATIC", "GAME001", "u123", "en", "")
	require.NoError(t, err)
	assert.NotEmpty(t, result.URL)
}

func TestLaunchTreatsExistingUserAsProvisioned(t *testing.T) {
	provider := newStubProvider(t)
	provider.respond("/user/create", `{"success":true,"errorCode":1,"message":"user already exists"}`)
	launcher, _, rnd := newTestLauncher(t, provider, staticBalance(50))
	rnd.QueueString("abc123xyz")

	result, err := launcher.LaunchGame(context.Background(), "PRAGMATIC", "GAME001", "u123", "en", "")
	require.NoError(t, err)
	assert.NotEmpty(t, result.URL)
}

func TestLaunchRecordsDepositFailureWithoutAborting(t *testing.T) {
	provider := newStubProvider(t)
	provider.respond("/user/deposit", `{"success":false,"errorCode":500,"message":"wallet unavailable"}`)
	launcher, _, rnd := newTestLauncher(t, provider, staticBalance(50))
	rnd.QueueString("abc123xyz")

	result, err := launcher.LaunchGame(context.Background(), "PRAGMATIC", "GAME001", "u123", "en", "")
	require.NoError(t, err)

	assert.NotEmpty(t, result.URL)
	require.Error(t, result.Sync.Err)
	assert.Zero(t, result.Sync.Deposited)
}

func TestLaunchPropagatesLaunchURLErrors(t *testing.T) {
	provider := newStubProvider(t)
	provider.respond("/game/launch-url", `{"success":false,"errorCode":10,"message":"game launch failed"}`)
	launcher, _, rnd := newTestLauncher(t, provider, staticBalance(50))
	rnd.QueueString("abc123xyz")

	_, err := launcher.LaunchGame(context.Background(), "PRAGMATIC", "GAME001", "u123", "en", "")
	require.Error(t, err)
	assert.True(t, gameapi.IsBusinessCode(err, gameapi.CodeLaunchFailed))
}

func TestLaunchRejectsInvalidCodesBeforeAnyNetworkCall(t *testing.T) {
	provider := newStubProvider(t)
	launcher, _, _ := newTestLauncher(t, provider, staticBalance(50))

	cases := []struct {
		name   string
		vendor string
		game   string
		user   string
	}{
		{"empty vendor", "", "GAME001", "u123"},
		{"null game", "PRAGMATIC", "null", "u123"},
		{"undefined user", "PRAGMATIC", "GAME001", "undefined"},
		{"zero user", "PRAGMATIC", "GAME001", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := launcher.LaunchGame(context.Background(), tc.vendor, tc.game, tc.user, "en", "")
			require.Error(t, err)
			assert.True(t, gameapi.IsKind(err, gameapi.ErrorKindValidation))
		})
	}
	assert.Zero(t, provider.totalCalls())
}

func TestLaunchProceedsWhenVendorListUnreachable(t *testing.T) {
	// Unknown label forces a live vendor-list lookup; the stub returns a
	// server error for it. Launch still goes out with the synthesized code.
	provider := newStubProvider(t)
	provider.respond("/vendors/list", `{"success":false,"errorCode":500,"message":"temporarily unavailable"}`)
	launcher, _, rnd := newTestLauncher(t, provider, staticBalance(50))
	rnd.QueueString("abc123xyz")

	result, err := launcher.LaunchGame(context.Background(), "NOVOMATIC", "GAME001", "u123", "en", "")
	require.NoError(t, err)
	assert.Equal(t, "slot-novomatic", result.VendorCode)
}

func TestLaunchStaticAliasSkipsVendorList(t *testing.T) {
	provider := newStubProvider(t)
	launcher, _, rnd := newTestLauncher(t, provider, staticBalance(50))
	rnd.QueueString("abc123xyz")

	_, err := launcher.LaunchGame(context.Background(), "EVO", "GAME001", "u123", "en", "")
	require.NoError(t, err)
	assert.Equal(t, 0, provider.callCount("/vendors/list"))
}

func TestLaunchMatchesSynthesizedCodeAgainstLiveList(t *testing.T) {
	provider := newStubProvider(t)
	provider.respond("/vendors/list", `{"success":true,"errorCode":0,"message":[{"vendorCode":"slot-booming","name":"Booming Games"}]}`)
	launcher, _, rnd := newTestLauncher(t, provider, staticBalance(50))
	rnd.QueueString("abc123xyz")

	result, err := launcher.LaunchGame(context.Background(), "BOOMING", "GAME001", "u123", "en", "")
	require.NoError(t, err)
	assert.Equal(t, "slot-booming", result.VendorCode)
}

func TestLaunchFallsBackToDefaultLocale(t *testing.T) {
	provider := newStubProvider(t)
	launcher, _, rnd := newTestLauncher(t, provider, staticBalance(50))
	rnd.QueueString("abc123xyz")

	result, err := launcher.LaunchGame(context.Background(), "PRAGMATIC", "GAME001", "u123", "xx_ZZ", "")
	require.NoError(t, err)
	assert.Equal(t, gameapi.DefaultLocale, result.Locale)

	launch := provider.lastBody("/game/launch-url")
	require.NotNil(t, launch)
	assert.Equal(t, gameapi.DefaultLocale, launch["language"])
}

func TestLaunchUsesExplicitLobbyURL(t *testing.T) {
	provider := newStubProvider(t)
	launcher, _, rnd := newTestLauncher(t, provider, staticBalance(0))
	rnd.QueueString("abc123xyz")

	_, err := launcher.LaunchGame(context.Background(), "PRAGMATIC", "GAME001", "u123", "en", "https://custom.example.com/lobby")
	require.NoError(t, err)

	launch := provider.lastBody("/game/launch-url")
	require.NotNil(t, launch)
	assert.Equal(t, "https://custom.example.com/lobby", launch["lobbyUrl"])
}
