package factory

import (
	"time"

	"github.com/luckyroad/casinohub/internal/dependencies/mocks"
	"github.com/luckyroad/casinohub/internal/services/auth"
	"github.com/luckyroad/casinohub/internal/services/captcha"
	"github.com/luckyroad/casinohub/internal/services/provider"
	"github.com/luckyroad/casinohub/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	authCfg := auth.DefaultConfig()
	authCfg.Secret = "test-secret"

	app := newWithDependencies(store, mockClock, mockRandom, authCfg, captcha.DefaultConfig(), provider.DefaultConfig())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
