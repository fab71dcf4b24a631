package storage

import (
	"context"

	"github.com/luckyroad/casinohub/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error)
	GetAccountByNameOrEmail(ctx context.Context, nameOrEmail string) (*model.Account, error)
	DeleteAccount(ctx context.Context, id model.AccountID) error

	// Provider user operations
	SaveProviderUser(ctx context.Context, user *model.ProviderUser) error
	GetProviderUser(ctx context.Context, userCode string) (*model.ProviderUser, error)
	ProviderUserExists(ctx context.Context, userCode string) (bool, error)

	// Vendor operations
	SaveVendors(ctx context.Context, vendors []model.VendorDescriptor) error
	GetVendors(ctx context.Context) ([]model.VendorDescriptor, error)

	// Game catalog operations
	SaveGames(ctx context.Context, vendorCode string, games []model.GameDescriptor) error
	GetGames(ctx context.Context, vendorCode string) ([]model.GameDescriptor, error)
}
