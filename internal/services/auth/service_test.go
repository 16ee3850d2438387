package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quizhost/quizhost/internal/dependencies/mocks"
	"github.com/quizhost/quizhost/internal/services/auth"
	"github.com/quizhost/quizhost/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite

	clock   *mocks.MockClock
	service *auth.Service

	ctx context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.service = auth.New(memory.New(), s.clock, auth.Config{SessionDuration: time.Hour}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRegister() {
	session, err := s.service.Register(s.ctx, "quizmaster", "The Quizmaster", "s3cret-pass")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("quizmaster", session.Host.Username)
	s.Equal("The Quizmaster", session.Host.DisplayName)
	s.NotEqual("s3cret-pass", session.Host.PasswordHash)
	s.Equal(s.clock.Now().Add(time.Hour), session.ExpiresAt)
}

func (s *ServiceSuite) TestRegisterDefaultsDisplayName() {
	session, err := s.service.Register(s.ctx, "quizmaster", "", "s3cret-pass")
	s.Require().NoError(err)
	s.Equal("quizmaster", session.Host.DisplayName)
}

func (s *ServiceSuite) TestRegisterValidation() {
	_, err := s.service.Register(s.ctx, "", "", "s3cret-pass")
	s.ErrorIs(err, auth.ErrInvalidUsername)

	_, err = s.service.Register(s.ctx, "quizmaster", "", "short")
	s.ErrorIs(err, auth.ErrInvalidPassword)
}

func (s *ServiceSuite) TestRegisterDuplicateUsername() {
	_, err := s.service.Register(s.ctx, "quizmaster", "", "s3cret-pass")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "quizmaster", "", "other-pass1")
	s.ErrorIs(err, auth.ErrUsernameExists)
}

func (s *ServiceSuite) TestLogin() {
	_, err := s.service.Register(s.ctx, "quizmaster", "", "s3cret-pass")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "quizmaster", "s3cret-pass")
	s.Require().NoError(err)
	s.NotEmpty(session.Token)
}

func (s *ServiceSuite) TestLoginBadCredentials() {
	_, err := s.service.Register(s.ctx, "quizmaster", "", "s3cret-pass")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "quizmaster", "wrong-pass")
	s.ErrorIs(err, auth.ErrInvalidCredentials)

	_, err = s.service.Login(s.ctx, "nobody", "s3cret-pass")
	s.ErrorIs(err, auth.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestValidateSession() {
	registered, err := s.service.Register(s.ctx, "quizmaster", "", "s3cret-pass")
	s.Require().NoError(err)

	session, err := s.service.ValidateSession(registered.Token)
	s.Require().NoError(err)
	s.Equal(registered.HostID, session.HostID)

	_, err = s.service.ValidateSession("bogus-token")
	s.ErrorIs(err, auth.ErrInvalidSession)
}

func (s *ServiceSuite) TestSessionExpiry() {
	registered, err := s.service.Register(s.ctx, "quizmaster", "", "s3cret-pass")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)

	_, err = s.service.ValidateSession(registered.Token)
	s.ErrorIs(err, auth.ErrInvalidSession)
}

func (s *ServiceSuite) TestLogout() {
	registered, err := s.service.Register(s.ctx, "quizmaster", "", "s3cret-pass")
	s.Require().NoError(err)

	s.service.Logout(registered.Token)

	_, err = s.service.ValidateSession(registered.Token)
	s.ErrorIs(err, auth.ErrInvalidSession)
}
