package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/luckyroad/casinohub/internal/model"
	"github.com/luckyroad/casinohub/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts      map[model.AccountID]*model.Account
	nameIndex     map[string]model.AccountID
	emailIndex    map[string]model.AccountID
	providerUsers map[string]*model.ProviderUser
	vendors       []model.VendorDescriptor
	games         map[string][]model.GameDescriptor
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts:      make(map[model.AccountID]*model.Account),
		nameIndex:     make(map[string]model.AccountID),
		emailIndex:    make(map[string]model.AccountID),
		providerUsers: make(map[string]*model.ProviderUser),
		games:         make(map[string][]model.GameDescriptor),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	s.nameIndex[strings.ToLower(account.Name)] = account.ID
	s.emailIndex[strings.ToLower(account.Email)] = account.ID
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

func (s *Storage) GetAccountByNameOrEmail(ctx context.Context, nameOrEmail string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := strings.ToLower(nameOrEmail)
	id, ok := s.nameIndex[key]
	if !ok {
		id, ok = s.emailIndex[key]
	}
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

func (s *Storage) DeleteAccount(ctx context.Context, id model.AccountID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account, ok := s.accounts[id]; ok {
		delete(s.nameIndex, strings.ToLower(account.Name))
		delete(s.emailIndex, strings.ToLower(account.Email))
	}
	delete(s.accounts, id)
	return nil
}

// Provider user operations

func (s *Storage) SaveProviderUser(ctx context.Context, user *model.ProviderUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providerUsers[user.UserCode] = user
	return nil
}

func (s *Storage) GetProviderUser(ctx context.Context, userCode string) (*model.ProviderUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.providerUsers[userCode]
	if !ok {
		return nil, model.ErrProviderUserNotFound
	}
	return user, nil
}

func (s *Storage) ProviderUserExists(ctx context.Context, userCode string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.providerUsers[userCode]
	return ok, nil
}

// Vendor operations

func (s *Storage) SaveVendors(ctx context.Context, vendors []model.VendorDescriptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendors = make([]model.VendorDescriptor, len(vendors))
	copy(s.vendors, vendors)
	return nil
}

func (s *Storage) GetVendors(ctx context.Context) ([]model.VendorDescriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.VendorDescriptor, len(s.vendors))
	copy(result, s.vendors)
	return result, nil
}

// Game catalog operations

func (s *Storage) SaveGames(ctx context.Context, vendorCode string, games []model.GameDescriptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]model.GameDescriptor, len(games))
	copy(list, games)
	s.games[vendorCode] = list
	return nil
}

func (s *Storage) GetGames(ctx context.Context, vendorCode string) ([]model.GameDescriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games, ok := s.games[vendorCode]
	if !ok {
		return nil, nil
	}
	result := make([]model.GameDescriptor, len(games))
	copy(result, games)
	return result, nil
}
