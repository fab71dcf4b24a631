package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/luckyroad/casinohub/internal/model"
	"github.com/luckyroad/casinohub/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, accountKey(account.ID), data, 0)
	pipe.Set(ctx, nameIndexKey(account.Name), string(account.ID), 0)
	pipe.Set(ctx, emailIndexKey(account.Email), string(account.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Storage) GetAccountByNameOrEmail(ctx context.Context, nameOrEmail string) (*model.Account, error) {
	id, err := s.client.Get(ctx, nameIndexKey(nameOrEmail)).Result()
	if errors.Is(err, redis.Nil) {
		id, err = s.client.Get(ctx, emailIndexKey(nameOrEmail)).Result()
	}
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	return s.GetAccount(ctx, model.AccountID(id))
}

func (s *Storage) DeleteAccount(ctx context.Context, id model.AccountID) error {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, accountKey(id))
	pipe.Del(ctx, nameIndexKey(account.Name))
	pipe.Del(ctx, emailIndexKey(account.Email))
	_, err = pipe.Exec(ctx)
	return err
}

// Provider user operations

func (s *Storage) SaveProviderUser(ctx context.Context, user *model.ProviderUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, providerUserKey(user.UserCode), data, s.cfg.ProviderUserTTL).Err()
}

func (s *Storage) GetProviderUser(ctx context.Context, userCode string) (*model.ProviderUser, error) {
	data, err := s.client.Get(ctx, providerUserKey(userCode)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProviderUserNotFound
		}
		return nil, err
	}

	var user model.ProviderUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) ProviderUserExists(ctx context.Context, userCode string) (bool, error) {
	exists, err := s.client.Exists(ctx, providerUserKey(userCode)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Vendor operations

func (s *Storage) SaveVendors(ctx context.Context, vendors []model.VendorDescriptor) error {
	data, err := json.Marshal(vendors)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, vendorsKey(), data, s.cfg.CatalogTTL).Err()
}

func (s *Storage) GetVendors(ctx context.Context) ([]model.VendorDescriptor, error) {
	data, err := s.client.Get(ctx, vendorsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var vendors []model.VendorDescriptor
	if err := json.Unmarshal(data, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// Game catalog operations

func (s *Storage) SaveGames(ctx context.Context, vendorCode string, games []model.GameDescriptor) error {
	data, err := json.Marshal(games)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, gamesKey(vendorCode), data, s.cfg.CatalogTTL).Err()
}

func (s *Storage) GetGames(ctx context.Context, vendorCode string) ([]model.GameDescriptor, error) {
	data, err := s.client.Get(ctx, gamesKey(vendorCode)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var games []model.GameDescriptor
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, err
	}
	return games, nil
}
