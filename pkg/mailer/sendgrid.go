package mailer

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

type SendGridMailer struct {
	client sendClient
}

func NewSendGridMailer(apiKey string) *SendGridMailer {
	return &SendGridMailer{client: sendgrid.NewSendClient(apiKey)}
}

func parseSender(from string) *sgmail.Email {
	addr, err := mail.ParseAddress(from)
	if err != nil {
		return sgmail.NewEmail("", from)
	}
	return sgmail.NewEmail(addr.Name, addr.Address)
}

func buildV3(email Email) *sgmail.SGMailV3 {
	message := sgmail.NewV3Mail()
	message.SetFrom(parseSender(email.From))
	message.Subject = email.Subject

	p := sgmail.NewPersonalization()
	for _, to := range email.To {
		p.AddTos(sgmail.NewEmail("", to))
	}
	message.AddPersonalizations(p)

	if email.Text != "" {
		message.AddContent(sgmail.NewContent("text/plain", email.Text))
	}
	if email.HTML != "" {
		message.AddContent(sgmail.NewContent("text/html", email.HTML))
	}
	for k, v := range email.Headers {
		message.SetHeader(k, v)
	}
	return message
}

func (s *SendGridMailer) Send(ctx context.Context, email Email) error {
	resp, err := s.client.SendWithContext(ctx, buildV3(email))
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid API error: %d %s", resp.StatusCode, resp.Body)
	}
	return nil
}
