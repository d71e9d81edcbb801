package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/GlebRadaev/charity/internal/config"
	"github.com/GlebRadaev/charity/internal/events"
	"github.com/GlebRadaev/charity/internal/lock"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/GlebRadaev/charity/pkg/mailer"
	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_ReleasesResourcesInReverseOrder() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var order []string
	s.app.closers = []func() error{
		func() error { order = append(order, "pool"); return nil },
		func() error { order = append(order, "redis"); return errors.New("already closed") },
	}

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
	s.Equal([]string{"redis", "pool"}, order)
}

func (s *ApplicationSuite) TestNewMailer() {
	tests := []struct {
		name      string
		cfg       *config.Config
		expectErr bool
	}{
		{name: "Log provider", cfg: &config.Config{MailProvider: "log", MailRatePerSec: 5, MailBurst: 5}},
		{name: "Empty provider falls back to log", cfg: &config.Config{MailRatePerSec: 5, MailBurst: 5}},
		{name: "SMTP provider", cfg: &config.Config{MailProvider: "smtp", SMTPHost: "smtp.example.com", SMTPPort: 587, MailRatePerSec: 5, MailBurst: 5}},
		{name: "SendGrid provider", cfg: &config.Config{MailProvider: "sendgrid", SendGridAPIKey: "SG.key", MailRatePerSec: 5, MailBurst: 5}},
		{name: "SendGrid without key", cfg: &config.Config{MailProvider: "sendgrid"}, expectErr: true},
		{name: "Unknown provider", cfg: &config.Config{MailProvider: "pigeon"}, expectErr: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			m, err := newMailer(tt.cfg)
			if tt.expectErr {
				s.Error(err)
				return
			}
			s.Require().NoError(err)
			s.IsType(&mailer.RateLimited{}, m)
		})
	}
}

func (s *ApplicationSuite) TestNewVerifier_DefaultsToJWT() {
	v, err := newVerifier(context.Background(), &config.Config{JWTSecret: "secret"})

	s.Require().NoError(err)
	s.IsType(&auth.JWTVerifier{}, v)
}

func (s *ApplicationSuite) TestNewVerifier_RequiresSecret() {
	v, err := newVerifier(context.Background(), &config.Config{})

	s.Error(err)
	s.Nil(v)
}

func (s *ApplicationSuite) TestNewLocker_DefaultsToMemory() {
	l, err := s.app.newLocker(context.Background(), &config.Config{})

	s.Require().NoError(err)
	s.IsType(&lock.Memory{}, l)
	s.Empty(s.app.closers)
}

func (s *ApplicationSuite) TestNewEventBus_DefaultsToLocal() {
	publisher, consumer := s.app.newEventBus(&config.Config{})

	s.IsType(&events.LocalBus{}, publisher)
	s.Same(publisher, consumer)
}
