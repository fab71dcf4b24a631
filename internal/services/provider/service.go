package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/luckyroad/casinohub/internal/dependencies/clock"
	"github.com/luckyroad/casinohub/internal/model"
	"github.com/luckyroad/casinohub/internal/storage"
)

// DefaultLaunchBaseURL is where minted game URLs point when no base is
// configured
const DefaultLaunchBaseURL = "https://play.casinohub.example/game"

// placeholderImageURL backs catalog entries that have no artwork
const placeholderImageURL = "https://via.placeholder.com/300x200"

// placeholderGameCount is how many catalog entries get synthesized for a
// vendor with no stored games
const placeholderGameCount = 12

// Config holds configuration for the provider service
type Config struct {
	// LaunchBaseURL is the base URL minted launch URLs are built on
	LaunchBaseURL string
}

// DefaultConfig returns default provider configuration
func DefaultConfig() Config {
	return Config{
		LaunchBaseURL: DefaultLaunchBaseURL,
	}
}

// Service simulates the third-party game provider: vendor and game catalogs,
// per-user shadow wallets, and launch-URL minting
type Service struct {
	storage storage.Storage
	clock   clock.Clock

	launchBaseURL string

	// walletMu serializes read-modify-write wallet mutations
	walletMu sync.Mutex
}

// New creates a new provider Service
func New(storage storage.Storage, clock clock.Clock, cfg Config) *Service {
	if cfg.LaunchBaseURL == "" {
		cfg.LaunchBaseURL = DefaultLaunchBaseURL
	}
	return &Service{
		storage:       storage,
		clock:         clock,
		launchBaseURL: cfg.LaunchBaseURL,
	}
}

// DefaultVendors is the seed vendor catalog
func DefaultVendors() []model.VendorDescriptor {
	return []model.VendorDescriptor{
		{Code: "PRAGMATIC", Name: "Pragmatic Play"},
		{Code: "EVOLUTION", Name: "Evolution Gaming"},
		{Code: "NETENT", Name: "NetEnt"},
		{Code: "MICROGAMING", Name: "Microgaming"},
		{Code: "PLAYTECH", Name: "Playtech"},
	}
}

// SeedVendors stores the default vendor catalog if none is stored yet
func (s *Service) SeedVendors(ctx context.Context) error {
	vendors, err := s.storage.GetVendors(ctx)
	if err != nil {
		return err
	}
	if len(vendors) > 0 {
		return nil
	}
	return s.storage.SaveVendors(ctx, DefaultVendors())
}

// Vendors returns the vendor catalog, falling back to the seed list when
// storage holds none
func (s *Service) Vendors(ctx context.Context) ([]model.VendorDescriptor, error) {
	vendors, err := s.storage.GetVendors(ctx)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return DefaultVendors(), nil
	}
	return vendors, nil
}

// Games returns the game catalog for a vendor. Vendors with no stored catalog
// get placeholder entries so the catalog is never empty.
func (s *Service) Games(ctx context.Context, vendorCode, language string) ([]model.GameDescriptor, error) {
	games, err := s.storage.GetGames(ctx, vendorCode)
	if err != nil {
		return nil, err
	}
	if len(games) > 0 {
		return games, nil
	}
	return s.placeholderGames(vendorCode, placeholderGameCount, "slots"), nil
}

// GameDetail returns a single game, synthesizing a placeholder when the
// vendor has no stored catalog entry for the code
func (s *Service) GameDetail(ctx context.Context, vendorCode, gameCode string) (*model.GameDescriptor, error) {
	games, err := s.storage.GetGames(ctx, vendorCode)
	if err != nil {
		return nil, err
	}
	for i := range games {
		if games[i].GameCode == gameCode {
			return &games[i], nil
		}
	}
	return &model.GameDescriptor{
		GameCode:    gameCode,
		Name:        "Sample Game",
		VendorCode:  vendorCode,
		VendorName:  vendorName(vendorCode),
		Category:    "slots",
		ImageURL:    placeholderImageURL,
		Description: "A sample game.",
	}, nil
}

// MiniGames returns the mini-game catalog
func (s *Service) MiniGames(ctx context.Context, language string) ([]model.GameDescriptor, error) {
	games, err := s.storage.GetGames(ctx, "MINI")
	if err != nil {
		return nil, err
	}
	if len(games) > 0 {
		return games, nil
	}
	return s.placeholderGames("MINI", 6, "mini"), nil
}

// CreateUser creates a provider user with a zero wallet. Returns
// model.ErrProviderUserExists when the user code is already taken.
func (s *Service) CreateUser(ctx context.Context, userCode string) error {
	s.walletMu.Lock()
	defer s.walletMu.Unlock()

	exists, err := s.storage.ProviderUserExists(ctx, userCode)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrProviderUserExists
	}

	return s.storage.SaveProviderUser(ctx, &model.ProviderUser{
		UserCode:  userCode,
		Balance:   0,
		CreatedAt: s.clock.Now(),
	})
}

// Balance returns the provider wallet balance. Unknown users read as zero.
func (s *Service) Balance(ctx context.Context, userCode string) (float64, error) {
	user, err := s.storage.GetProviderUser(ctx, userCode)
	if err != nil {
		if errors.Is(err, model.ErrProviderUserNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return user.Balance, nil
}

// Deposit credits the provider wallet, creating the user if needed, and
// returns the new balance
func (s *Service) Deposit(ctx context.Context, userCode string, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, model.ErrInvalidAmount
	}

	s.walletMu.Lock()
	defer s.walletMu.Unlock()

	user, err := s.storage.GetProviderUser(ctx, userCode)
	if err != nil {
		if !errors.Is(err, model.ErrProviderUserNotFound) {
			return 0, err
		}
		user = &model.ProviderUser{UserCode: userCode, CreatedAt: s.clock.Now()}
	}

	user.Balance += amount
	if err := s.storage.SaveProviderUser(ctx, user); err != nil {
		return 0, err
	}
	return user.Balance, nil
}

// Withdraw debits the provider wallet and returns the new balance
func (s *Service) Withdraw(ctx context.Context, userCode string, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, model.ErrInvalidAmount
	}

	s.walletMu.Lock()
	defer s.walletMu.Unlock()

	user, err := s.storage.GetProviderUser(ctx, userCode)
	if err != nil {
		return 0, err
	}
	if user.Balance < amount {
		return 0, model.ErrInsufficientBalance
	}

	user.Balance -= amount
	if err := s.storage.SaveProviderUser(ctx, user); err != nil {
		return 0, err
	}
	return user.Balance, nil
}

// WithdrawAll empties the provider wallet and returns the withdrawn amount
func (s *Service) WithdrawAll(ctx context.Context, userCode string) (float64, error) {
	s.walletMu.Lock()
	defer s.walletMu.Unlock()

	user, err := s.storage.GetProviderUser(ctx, userCode)
	if err != nil {
		return 0, err
	}

	withdrawn := user.Balance
	user.Balance = 0
	if err := s.storage.SaveProviderUser(ctx, user); err != nil {
		return 0, err
	}
	return withdrawn, nil
}

// LaunchURL mints a game launch URL, lazily creating the provider user. The
// lobby URL is attached only when the caller supplies one.
func (s *Service) LaunchURL(ctx context.Context, vendorCode, gameCode, userCode, language, lobbyURL string) (string, error) {
	s.walletMu.Lock()
	exists, err := s.storage.ProviderUserExists(ctx, userCode)
	if err == nil && !exists {
		err = s.storage.SaveProviderUser(ctx, &model.ProviderUser{
			UserCode:  userCode,
			Balance:   0,
			CreatedAt: s.clock.Now(),
		})
	}
	s.walletMu.Unlock()
	if err != nil {
		return "", err
	}

	if language == "" {
		language = "zh"
	}

	params := url.Values{}
	params.Set("vendor", vendorCode)
	params.Set("game", gameCode)
	params.Set("user", userCode)
	params.Set("lang", language)
	if lobbyURL != "" {
		params.Set("lobby", lobbyURL)
	}
	return s.launchBaseURL + "?" + params.Encode(), nil
}

func (s *Service) placeholderGames(vendorCode string, count int, category string) []model.GameDescriptor {
	name := vendorName(vendorCode)
	games := make([]model.GameDescriptor, 0, count)
	for i := 1; i <= count; i++ {
		games = append(games, model.GameDescriptor{
			GameCode:   fmt.Sprintf("GAME%03d", i),
			Name:       fmt.Sprintf("Sample Game %d", i),
			VendorCode: vendorCode,
			VendorName: name,
			Category:   category,
			ImageURL:   placeholderImageURL,
		})
	}
	return games
}

func vendorName(vendorCode string) string {
	for _, v := range DefaultVendors() {
		if v.Code == vendorCode {
			return v.Name
		}
	}
	return vendorCode
}
