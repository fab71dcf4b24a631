package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/luckyroad/casinohub/internal/dependencies/mocks"
	"github.com/luckyroad/casinohub/internal/model"
	"github.com/luckyroad/casinohub/internal/services/auth"
	"github.com/luckyroad/casinohub/internal/storage/memory"
)

type AuthSuite struct {
	suite.Suite

	clock   *mocks.MockClock
	storage *memory.Storage
	service *auth.Service
}

func (s *AuthSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.storage = memory.New()
	s.service = auth.New(s.storage, s.clock, auth.Config{
		Secret:        "test-secret",
		TokenDuration: 7 * 24 * time.Hour,
	})
}

func (s *AuthSuite) register(name, email, password string) (*model.Account, string) {
	account, token, err := s.service.Register(context.Background(), name, email, password, password)
	s.Require().NoError(err)
	return account, token
}

func (s *AuthSuite) TestRegisterCreatesAccount() {
	account, token := s.register("alice", "alice@example.com", "hunter22")

	s.Require().NotEmpty(account.ID)
	s.Require().NotEmpty(token)
	s.Require().Equal("alice", account.Name)
	s.Require().Equal("alice@example.com", account.Email)
	s.Require().Zero(account.Balance)
	s.Require().NotEqual("hunter22", account.PasswordHash)
}

func (s *AuthSuite) TestRegisterPasswordMismatch() {
	_, _, err := s.service.Register(context.Background(), "alice", "alice@example.com", "hunter22", "hunter23")
	s.Require().ErrorIs(err, auth.ErrPasswordMismatch)
}

func (s *AuthSuite) TestRegisterDuplicateName() {
	s.register("alice", "alice@example.com", "hunter22")

	_, _, err := s.service.Register(context.Background(), "alice", "other@example.com", "hunter22", "hunter22")
	s.Require().ErrorIs(err, model.ErrAccountExists)
}

func (s *AuthSuite) TestRegisterDuplicateEmail() {
	s.register("alice", "alice@example.com", "hunter22")

	_, _, err := s.service.Register(context.Background(), "bob", "alice@example.com", "hunter22", "hunter22")
	s.Require().ErrorIs(err, model.ErrAccountExists)
}

func (s *AuthSuite) TestLoginByName() {
	s.register("alice", "alice@example.com", "hunter22")

	account, token, err := s.service.Login(context.Background(), "alice", "hunter22")
	s.Require().NoError(err)
	s.Require().Equal("alice", account.Name)
	s.Require().NotEmpty(token)
}

func (s *AuthSuite) TestLoginByEmail() {
	s.register("alice", "alice@example.com", "hunter22")

	account, _, err := s.service.Login(context.Background(), "alice@example.com", "hunter22")
	s.Require().NoError(err)
	s.Require().Equal("alice", account.Name)
}

func (s *AuthSuite) TestLoginWrongPassword() {
	s.register("alice", "alice@example.com", "hunter22")

	_, _, err := s.service.Login(context.Background(), "alice", "wrong")
	s.Require().ErrorIs(err, auth.ErrInvalidCredentials)
}

func (s *AuthSuite) TestLoginUnknownAccount() {
	_, _, err := s.service.Login(context.Background(), "nobody", "hunter22")
	s.Require().ErrorIs(err, auth.ErrInvalidCredentials)
}

func (s *AuthSuite) TestAuthenticateRoundTrip() {
	registered, token := s.register("alice", "alice@example.com", "hunter22")

	account, err := s.service.Authenticate(context.Background(), token)
	s.Require().NoError(err)
	s.Require().Equal(registered.ID, account.ID)
}

func (s *AuthSuite) TestAuthenticateGarbageToken() {
	_, err := s.service.Authenticate(context.Background(), "not-a-token")
	s.Require().ErrorIs(err, auth.ErrInvalidToken)
}

func (s *AuthSuite) TestAuthenticateExpiredToken() {
	_, token := s.register("alice", "alice@example.com", "hunter22")

	s.clock.Advance(8 * 24 * time.Hour)

	_, err := s.service.Authenticate(context.Background(), token)
	s.Require().ErrorIs(err, auth.ErrInvalidToken)
}

func (s *AuthSuite) TestAuthenticateWrongSecret() {
	other := auth.New(s.storage, s.clock, auth.Config{Secret: "other-secret"})
	_, token := s.register("alice", "alice@example.com", "hunter22")

	_, err := other.Authenticate(context.Background(), token)
	s.Require().ErrorIs(err, auth.ErrInvalidToken)
}

func (s *AuthSuite) TestAuthenticateDeletedAccount() {
	registered, token := s.register("alice", "alice@example.com", "hunter22")

	s.Require().NoError(s.storage.DeleteAccount(context.Background(), registered.ID))

	_, err := s.service.Authenticate(context.Background(), token)
	s.Require().ErrorIs(err, auth.ErrInvalidToken)
}

func (s *AuthSuite) TestUpdateProfile() {
	registered, _ := s.register("alice", "alice@example.com", "hunter22")

	s.clock.Advance(time.Hour)
	account, err := s.service.UpdateProfile(context.Background(), registered.ID, "alicia", "")
	s.Require().NoError(err)
	s.Require().Equal("alicia", account.Name)
	s.Require().Equal("alice@example.com", account.Email)
	s.Require().Equal(registered.CreatedAt.Add(time.Hour), account.UpdatedAt)
}

func (s *AuthSuite) TestRequestPasswordReset() {
	s.register("alice", "alice@example.com", "hunter22")

	s.Require().NoError(s.service.RequestPasswordReset(context.Background(), "alice@example.com"))
	s.Require().ErrorIs(s.service.RequestPasswordReset(context.Background(), "nobody@example.com"), model.ErrAccountNotFound)
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}
