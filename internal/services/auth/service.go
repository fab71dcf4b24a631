package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/luckyroad/casinohub/internal/dependencies/clock"
	"github.com/luckyroad/casinohub/internal/model"
	"github.com/luckyroad/casinohub/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Config holds configuration for the auth service
type Config struct {
	// Secret signs issued JWTs. Must be set; there is no default on purpose.
	Secret string

	// TokenDuration is how long issued tokens stay valid
	TokenDuration time.Duration
}

// DefaultConfig returns default auth configuration (secret left empty)
func DefaultConfig() Config {
	return Config{
		TokenDuration: 7 * 24 * time.Hour,
	}
}

// Service handles account registration, login and token verification
type Service struct {
	storage storage.Storage
	clock   clock.Clock

	secret        []byte
	tokenDuration time.Duration
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, cfg Config) *Service {
	if cfg.TokenDuration == 0 {
		cfg.TokenDuration = DefaultConfig().TokenDuration
	}
	return &Service{
		storage:       storage,
		clock:         clock,
		secret:        []byte(cfg.Secret),
		tokenDuration: cfg.TokenDuration,
	}
}

// Register creates a new account and returns it with a signed token
func (s *Service) Register(ctx context.Context, name, email, password, confirmPassword string) (*model.Account, string, error) {
	if password != confirmPassword {
		return nil, "", ErrPasswordMismatch
	}

	// Reject duplicate name or email
	for _, key := range []string{name, email} {
		_, err := s.storage.GetAccountByNameOrEmail(ctx, key)
		if err == nil {
			return nil, "", model.ErrAccountExists
		}
		if !errors.Is(err, model.ErrAccountNotFound) {
			return nil, "", err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := s.clock.Now()
	account := &model.Account{
		ID:           model.AccountID(strings.ReplaceAll(uuid.New().String(), "-", "")),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Balance:      0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(account.ID)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// Login authenticates by name or email and returns the account with a token
func (s *Service) Login(ctx context.Context, nameOrEmail, password string) (*model.Account, string, error) {
	account, err := s.storage.GetAccountByNameOrEmail(ctx, nameOrEmail)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(account.ID)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// Authenticate validates a bearer token and returns the account it names
func (s *Service) Authenticate(ctx context.Context, token string) (*model.Account, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	account, err := s.storage.GetAccount(ctx, model.AccountID(claims.Subject))
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return account, nil
}

// UpdateProfile changes name and/or email for an account. Empty fields are
// left untouched.
func (s *Service) UpdateProfile(ctx context.Context, id model.AccountID, name, email string) (*model.Account, error) {
	account, err := s.storage.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		account.Name = name
	}
	if email != "" {
		account.Email = email
	}
	account.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// RequestPasswordReset validates that the email belongs to an account. Mail
// delivery is out of scope for the mock; the caller reports success once the
// address checks out.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := s.storage.GetAccountByNameOrEmail(ctx, email)
	return err
}

func (s *Service) issueToken(id model.AccountID) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   string(id),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
