package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/metrics"
	"github.com/GlebRadaev/charity/pkg/emailtmpl"
	"github.com/GlebRadaev/charity/pkg/mailer"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EmailLogRepo interface {
	Save(ctx context.Context, l *domain.EmailLog) error
	ExistsSent(ctx context.Context, subscriptionID, emailType, period string) (bool, error)
}

// Message is one donor email tied to a subscription and period.
type Message struct {
	Type           string
	UserID         string
	Name           string
	Email          string
	SubscriptionID string
	Period         string
	Amount         int64
	CauseName      string
}

func MessageFor(emailType string, sub *domain.Subscription, period string) Message {
	return Message{
		Type:           emailType,
		UserID:         sub.UserID,
		Name:           sub.UserName,
		Email:          sub.UserEmail,
		SubscriptionID: sub.ID,
		Period:         period,
		Amount:         sub.Amount,
		CauseName:      sub.CauseName,
	}
}

// Notifier renders, sends and audits donor emails. Every attempt leaves an
// EmailLog, with status failed and the error text when sending did not work.
type Notifier struct {
	mailer mailer.Mailer
	logs   EmailLogRepo
	from   string
	now    func() time.Time
}

func New(m mailer.Mailer, logs EmailLogRepo, from string) *Notifier {
	return &Notifier{
		mailer: m,
		logs:   logs,
		from:   from,
		now:    time.Now,
	}
}

func (n *Notifier) AlreadySent(ctx context.Context, msg Message) (bool, error) {
	return n.logs.ExistsSent(ctx, msg.SubscriptionID, msg.Type, msg.Period)
}

func (n *Notifier) Deliver(ctx context.Context, msg Message, quote domain.Quote) error {
	if msg.Email == "" {
		return n.record(ctx, msg, quote, errors.New("recipient has no email address"))
	}

	content, err := render(msg, quote)
	if err != nil {
		return n.record(ctx, msg, quote, err)
	}

	email := mailer.NewEmail(n.from, []string{msg.Email},
		mailer.WithSubject(content.subject),
		mailer.WithText(content.text),
		mailer.WithHTML(content.html),
		mailer.Header("X-Charity-Email-Type", msg.Type),
	)
	return n.record(ctx, msg, quote, n.mailer.Send(ctx, email))
}

type rendered struct {
	subject string
	html    string
	text    string
}

func render(msg Message, quote domain.Quote) (rendered, error) {
	c := emailtmpl.Context{
		Name:        msg.Name,
		Amount:      msg.Amount,
		CauseName:   msg.CauseName,
		Quote:       quote.Text,
		QuoteSource: quote.Source,
	}
	var (
		out    rendered
		htmlFn func(emailtmpl.Context) (string, error)
		textFn func(emailtmpl.Context) (string, error)
		err    error
	)
	switch msg.Type {
	case domain.EmailTypeWelcome:
		out.subject, htmlFn, textFn = emailtmpl.WelcomeSubject, emailtmpl.RenderWelcome, emailtmpl.RenderWelcomeText
	case domain.EmailTypeMonthly:
		out.subject, htmlFn, textFn = emailtmpl.MonthlySubject, emailtmpl.RenderMonthly, emailtmpl.RenderMonthlyText
	default:
		return rendered{}, fmt.Errorf("unknown email type %q", msg.Type)
	}
	if out.html, err = htmlFn(c); err != nil {
		return rendered{}, err
	}
	if out.text, err = textFn(c); err != nil {
		return rendered{}, err
	}
	return out, nil
}

// record writes the audit row and returns the send error, joined with the
// log write error if that failed too.
func (n *Notifier) record(ctx context.Context, msg Message, quote domain.Quote, sendErr error) error {
	entry := &domain.EmailLog{
		ID:        uuid.NewString(),
		UserID:    msg.UserID,
		Email:     msg.Email,
		Type:      msg.Type,
		Period:    msg.Period,
		Status:    domain.EmailStatusSent,
		QuoteUsed: quote.Text,
		Amount:    msg.Amount,
		SentAt:    n.now(),
	}
	if msg.SubscriptionID != "" {
		subscriptionID := msg.SubscriptionID
		entry.SubscriptionID = &subscriptionID
	}
	if sendErr != nil {
		entry.Status = domain.EmailStatusFailed
		entry.Error = sendErr.Error()
		zap.L().Warn("email not sent",
			zap.String("type", msg.Type), zap.String("subscription_id", msg.SubscriptionID), zap.Error(sendErr))
	}
	metrics.EmailsTotal.WithLabelValues(msg.Type, entry.Status).Inc()

	// The audit row is written even when ctx is already cancelled.
	logCtx := context.WithoutCancel(ctx)
	if err := n.logs.Save(logCtx, entry); err != nil {
		zap.L().Error("can't write email log", zap.String("subscription_id", msg.SubscriptionID), zap.Error(err))
		if sendErr != nil {
			return errors.Join(sendErr, err)
		}
		return fmt.Errorf("email sent but not logged: %w", err)
	}
	return sendErr
}
