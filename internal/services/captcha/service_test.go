package captcha

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/luckyroad/casinohub/internal/dependencies/mocks"
	"github.com/luckyroad/casinohub/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.service = New(s.clock, s.random, DefaultConfig())
}

func (s *ServiceSuite) TestCreateReturnsKeyAndImage() {
	s.random.QueueString("ab12")

	ch := s.service.Create()

	s.NotEmpty(ch.Key)
	s.True(strings.HasPrefix(ch.Img, "data:image/svg+xml;base64,"))
}

func (s *ServiceSuite) TestVerifySucceeds() {
	s.random.QueueString("ab12")
	ch := s.service.Create()

	err := s.service.Verify(ch.Key, "ab12")
	s.NoError(err)
}

func (s *ServiceSuite) TestVerifyIsCaseInsensitive() {
	s.random.QueueString("ab12")
	ch := s.service.Create()

	err := s.service.Verify(ch.Key, "AB12")
	s.NoError(err)
}

func (s *ServiceSuite) TestVerifyConsumesChallenge() {
	s.random.QueueString("ab12")
	ch := s.service.Create()

	s.NoError(s.service.Verify(ch.Key, "ab12"))
	s.ErrorIs(s.service.Verify(ch.Key, "ab12"), model.ErrCaptchaNotFound)
}

func (s *ServiceSuite) TestVerifyFailsOnWrongAnswer() {
	s.random.QueueString("ab12")
	ch := s.service.Create()

	err := s.service.Verify(ch.Key, "zzzz")
	s.ErrorIs(err, model.ErrCaptchaMismatch)
}

func (s *ServiceSuite) TestVerifyFailsOnUnknownKey() {
	err := s.service.Verify("no-such-key", "ab12")
	s.ErrorIs(err, model.ErrCaptchaNotFound)
}

func (s *ServiceSuite) TestVerifyFailsAfterExpiry() {
	s.random.QueueString("ab12")
	ch := s.service.Create()

	s.clock.Advance(6 * time.Minute)

	err := s.service.Verify(ch.Key, "ab12")
	s.ErrorIs(err, model.ErrCaptchaNotFound)
}

func (s *ServiceSuite) TestCleanExpiredRemovesStaleEntries() {
	s.random.QueueString("ab12", "cd34")
	old := s.service.Create()
	s.clock.Advance(6 * time.Minute)
	fresh := s.service.Create()

	s.service.CleanExpired()

	s.ErrorIs(s.service.Verify(old.Key, "ab12"), model.ErrCaptchaNotFound)
	s.NoError(s.service.Verify(fresh.Key, "cd34"))
}
