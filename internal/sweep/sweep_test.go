package sweep

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/lock"
	"github.com/GlebRadaev/charity/internal/notify"
	"github.com/GlebRadaev/charity/internal/pg"
	"github.com/GlebRadaev/charity/internal/service/donationservice"
	"github.com/GlebRadaev/charity/pkg/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lastDayOfOctober = time.Date(2026, 10, 31, 9, 0, 0, 0, time.UTC)

type passthroughTx struct{}

func (passthroughTx) Begin(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }

type ledger struct {
	mu      sync.Mutex
	byKey   map[string]domain.Donation
	failFor map[string]bool
}

func (l *ledger) Insert(_ context.Context, d *domain.Donation) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if d.SubscriptionID != nil && l.failFor[*d.SubscriptionID] {
		return false, errors.New("write conflict")
	}
	if _, ok := l.byKey[*d.IdempotencyKey]; ok {
		return false, nil
	}
	l.byKey[*d.IdempotencyKey] = *d
	return true, nil
}

func (l *ledger) FindByUserID(context.Context, string, string) ([]domain.Donation, error) {
	return nil, nil
}
func (l *ledger) FindAll(context.Context) ([]domain.Donation, error) { return nil, nil }
func (l *ledger) FindBySubscriptionID(context.Context, string) ([]domain.Donation, error) {
	return nil, nil
}

func (l *ledger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byKey)
}

type causeStore struct {
	mu     sync.Mutex
	causes map[string]*domain.Cause
}

func (c *causeStore) IncrementRaised(_ context.Context, id string, amount int64) (*domain.Cause, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cause, ok := c.causes[id]
	if !ok {
		return nil, nil
	}
	cause.Raised += amount
	cause.Progress = domain.Progress(cause.Raised, cause.Goal)
	updated := *cause
	return &updated, nil
}

func (c *causeStore) get(id string) domain.Cause {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.causes[id]
}

type emailLogs struct {
	mu   sync.Mutex
	rows []domain.EmailLog
}

func (e *emailLogs) Save(_ context.Context, l *domain.EmailLog) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rows = append(e.rows, *l)
	return nil
}

func (e *emailLogs) ExistsSent(_ context.Context, subscriptionID, emailType, period string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, row := range e.rows {
		if row.SubscriptionID != nil && *row.SubscriptionID == subscriptionID &&
			row.Type == emailType && row.Period == period && row.Status == domain.EmailStatusSent {
			return true, nil
		}
	}
	return false, nil
}

func (e *emailLogs) byType(emailType, status string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, row := range e.rows {
		if row.Type == emailType && row.Status == status {
			n++
		}
	}
	return n
}

type outbox struct {
	mu      sync.Mutex
	sent    []mailer.Email
	failFor map[string]bool
}

func (o *outbox) Send(_ context.Context, email mailer.Email) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.failFor[email.To[0]] {
		return errors.New("smtp: 421 try again later")
	}
	o.sent = append(o.sent, email)
	return nil
}

type staticQuotes struct{}

func (staticQuotes) Random(context.Context) domain.Quote {
	return domain.Quote{Text: "Charity does not decrease wealth.", Source: "Hadith - Muslim"}
}

type subscriptions struct {
	active []domain.Subscription
	err    error
}

func (s *subscriptions) FindActive(context.Context) ([]domain.Subscription, error) {
	return s.active, s.err
}

type harness struct {
	job       *Job
	subs      *subscriptions
	ledger    *ledger
	causes    *causeStore
	logs      *emailLogs
	outbox    *outbox
	donations *donationservice.Service
	notifier  *notify.Notifier
}

func newHarness(workers int) *harness {
	h := &harness{
		subs:   &subscriptions{},
		ledger: &ledger{byKey: map[string]domain.Donation{}, failFor: map[string]bool{}},
		causes: &causeStore{causes: map[string]*domain.Cause{}},
		logs:   &emailLogs{},
		outbox: &outbox{failFor: map[string]bool{}},
	}
	h.donations = donationservice.New(h.ledger, h.causes, passthroughTx{}, time.UTC)
	h.notifier = notify.New(h.outbox, h.logs, "HUMSJ Charity <noreply@humsj.edu.et>")
	h.job = New(h.subs, h.donations, staticQuotes{}, h.notifier, lock.NewMemory(), Options{
		Location: time.UTC,
		Workers:  workers,
	})
	return h
}

func subscription(id, causeID string, amount int64) domain.Subscription {
	sub := domain.Subscription{
		ID:        id,
		UserID:    "uid-" + id,
		UserName:  "Donor " + id,
		UserEmail: id + "@example.com",
		Amount:    amount,
		CauseName: domain.DefaultCauseName,
		Active:    true,
	}
	if causeID != "" {
		sub.CauseID = &causeID
		sub.CauseName = "Cause " + causeID
	}
	return sub
}

func sorted(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}

func TestRun_NotLastDay(t *testing.T) {
	h := newHarness(2)
	h.subs.active = []domain.Subscription{subscription("s1", "", 100)}

	result, err := h.job.Run(context.Background(), time.Date(2026, 10, 30, 9, 0, 0, 0, time.UTC), false)

	require.NoError(t, err)
	assert.True(t, result.NotDue)
	assert.Equal(t, "2026-10", result.Period)
	assert.Equal(t, 0, h.ledger.count())
}

func TestRun_LastDayUsesTimezone(t *testing.T) {
	h := newHarness(1)
	addis, err := time.LoadLocation("Africa/Addis_Ababa")
	require.NoError(t, err)
	h.job.opts.Location = addis
	h.subs.active = []domain.Subscription{subscription("s1", "", 100)}

	// 22:00 UTC on the 30th is already the 31st in Addis Ababa.
	result, err := h.job.Run(context.Background(), time.Date(2026, 10, 30, 22, 0, 0, 0, time.UTC), false)

	require.NoError(t, err)
	assert.False(t, result.NotDue)
	assert.Equal(t, 1, h.ledger.count())
}

func TestRun_ForceBypassesLastDayCheck(t *testing.T) {
	h := newHarness(2)
	h.subs.active = []domain.Subscription{subscription("s1", "", 100)}

	result, err := h.job.Run(context.Background(), time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC), true)

	require.NoError(t, err)
	assert.False(t, result.NotDue)
	assert.Equal(t, []string{"s1"}, result.Succeeded)
}

func TestRun_NoActiveSubscriptions(t *testing.T) {
	h := newHarness(2)

	result, err := h.job.Run(context.Background(), lastDayOfOctober, false)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Empty(t, result.Failed)
}

func TestRun_OneDonationPerActiveSubscription(t *testing.T) {
	h := newHarness(4)
	for i := 0; i < 25; i++ {
		h.subs.active = append(h.subs.active, subscription(fmt.Sprintf("s%02d", i), "", 50+int64(i)))
	}

	result, err := h.job.Run(context.Background(), lastDayOfOctober, false)

	require.NoError(t, err)
	assert.Equal(t, 25, result.Processed)
	assert.Len(t, result.Succeeded, 25)
	assert.Empty(t, result.Failed)
	assert.Equal(t, 25, h.ledger.count())
	assert.Equal(t, 25, h.logs.byType(domain.EmailTypeMonthly, domain.EmailStatusSent))
	assert.Len(t, h.outbox.sent, 25)
}

func TestRun_RetryDoesNotDuplicate(t *testing.T) {
	h := newHarness(2)
	h.causes.causes["c1"] = &domain.Cause{ID: "c1", Goal: 1000}
	h.subs.active = []domain.Subscription{subscription("s1", "c1", 100), subscription("s2", "", 80)}

	first, err := h.job.Run(context.Background(), lastDayOfOctober, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, sorted(first.Succeeded))

	second, err := h.job.Run(context.Background(), lastDayOfOctober, false)
	require.NoError(t, err)

	assert.Empty(t, second.Succeeded)
	assert.Equal(t, []string{"s1", "s2"}, sorted(second.Skipped))
	assert.Equal(t, 2, h.ledger.count())
	assert.Equal(t, int64(100), h.causes.get("c1").Raised)
	assert.Len(t, h.outbox.sent, 2)
}

func TestRun_FailureIsIsolatedAndRetried(t *testing.T) {
	h := newHarness(3)
	h.causes.causes["c1"] = &domain.Cause{ID: "c1", Goal: 1000}
	h.subs.active = []domain.Subscription{
		subscription("s1", "c1", 100),
		subscription("s2", "c1", 100),
		subscription("s3", "", 100),
	}
	h.outbox.failFor["s2@example.com"] = true
	h.ledger.failFor["s3"] = true

	first, err := h.job.Run(context.Background(), lastDayOfOctober, false)
	require.NoError(t, err)

	assert.Equal(t, 3, first.Processed)
	assert.Equal(t, []string{"s1"}, first.Succeeded)
	require.Len(t, first.Failed, 2)
	stages := map[string]string{}
	for _, f := range first.Failed {
		stages[f.SubscriptionID] = f.Stage
		assert.NotEmpty(t, f.Error)
	}
	assert.Equal(t, map[string]string{"s2": StageEmail, "s3": StageDonation}, stages)
	assert.Equal(t, 1, h.logs.byType(domain.EmailTypeMonthly, domain.EmailStatusFailed))
	assert.Equal(t, int64(200), h.causes.get("c1").Raised)

	h.outbox.failFor = map[string]bool{}
	h.ledger.failFor = map[string]bool{}

	second, err := h.job.Run(context.Background(), lastDayOfOctober, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"s1"}, second.Skipped)
	assert.Equal(t, []string{"s2", "s3"}, sorted(second.Succeeded))
	assert.Empty(t, second.Failed)
	assert.Equal(t, 3, h.ledger.count())
	assert.Equal(t, int64(200), h.causes.get("c1").Raised, "s2 donation is not charged twice")
	assert.Equal(t, 3, h.logs.byType(domain.EmailTypeMonthly, domain.EmailStatusSent))
}

func TestRun_ConcurrentSubscriptionsOnOneCause(t *testing.T) {
	h := newHarness(2)
	h.causes.causes["c1"] = &domain.Cause{ID: "c1", Goal: 1000, Raised: 0}
	h.subs.active = []domain.Subscription{subscription("s1", "c1", 100), subscription("s2", "c1", 100)}

	result, err := h.job.Run(context.Background(), lastDayOfOctober, false)

	require.NoError(t, err)
	assert.Len(t, result.Succeeded, 2)
	cause := h.causes.get("c1")
	assert.Equal(t, int64(200), cause.Raised)
	assert.Equal(t, 20, cause.Progress)
}

func TestRun_MissingCauseIsSkippedSilently(t *testing.T) {
	h := newHarness(1)
	h.subs.active = []domain.Subscription{subscription("s1", "gone", 100)}

	result, err := h.job.Run(context.Background(), lastDayOfOctober, false)

	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, result.Succeeded)
	assert.Equal(t, 1, h.ledger.count())
}

func TestRun_SubscriptionLifecycle(t *testing.T) {
	h := newHarness(2)
	h.causes.causes["C1"] = &domain.Cause{ID: "C1", Goal: 1000, Raised: 200, Progress: 20}
	sub := subscription("s1", "C1", 100)
	created := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

	// Creation records the first monthly donation and sends the welcome email.
	inserted, err := h.donations.Record(context.Background(), domain.MonthlyDonation("", &sub, domain.Period(created), created))
	require.NoError(t, err)
	require.True(t, inserted)
	require.NoError(t, h.notifier.Deliver(context.Background(),
		notify.MessageFor(domain.EmailTypeWelcome, &sub, domain.Period(created)), staticQuotes{}.Random(context.Background())))
	assert.Equal(t, 1, h.logs.byType(domain.EmailTypeWelcome, domain.EmailStatusSent))
	assert.Equal(t, int64(300), h.causes.get("C1").Raised)

	h.subs.active = []domain.Subscription{sub}

	october, err := h.job.Run(context.Background(), lastDayOfOctober, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, october.Succeeded)

	donation, ok := h.ledger.byKey[domain.MonthlyDonationKey("s1", "2026-10")]
	require.True(t, ok)
	assert.Equal(t, int64(100), donation.Amount)
	assert.Equal(t, domain.DonationTypeMonthly, donation.Type)
	cause := h.causes.get("C1")
	assert.Equal(t, int64(300), cause.Raised)
	assert.Equal(t, 30, cause.Progress)
	assert.Equal(t, 1, h.logs.byType(domain.EmailTypeMonthly, domain.EmailStatusSent))

	november, err := h.job.Run(context.Background(), time.Date(2026, 11, 30, 9, 0, 0, 0, time.UTC), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, november.Succeeded)
	assert.Equal(t, int64(400), h.causes.get("C1").Raised)
	assert.Equal(t, 40, h.causes.get("C1").Progress)
}

func TestRun_LockHeld(t *testing.T) {
	h := newHarness(1)
	locker := lock.NewMemory()
	h.job.locker = locker
	_, err := locker.Acquire(context.Background(), "sweep:2026-10", time.Hour)
	require.NoError(t, err)

	result, err := h.job.Run(context.Background(), lastDayOfOctober, false)

	assert.ErrorIs(t, err, ErrSweepInProgress)
	assert.Nil(t, result)
}

func TestRun_ListFailure(t *testing.T) {
	h := newHarness(1)
	h.subs.err = errors.New("db down")

	_, err := h.job.Run(context.Background(), lastDayOfOctober, false)

	assert.ErrorContains(t, err, "db down")
}

func TestRun_CanceledContext(t *testing.T) {
	h := newHarness(1)
	h.subs.active = []domain.Subscription{subscription("s1", "", 100)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := h.job.Run(ctx, lastDayOfOctober, false)

	require.NoError(t, err)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, StageSchedule, result.Failed[0].Stage)
	assert.Equal(t, 0, h.ledger.count())
}
