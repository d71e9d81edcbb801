package sweep

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/lock"
	"github.com/GlebRadaev/charity/internal/metrics"
	"github.com/GlebRadaev/charity/internal/notify"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrSweepInProgress = errors.New("sweep already in progress for this period")

const (
	StageDonation = "donation"
	StageEmail    = "email"
	StageSchedule = "schedule"
)

type SubscriptionRepo interface {
	FindActive(ctx context.Context) ([]domain.Subscription, error)
}

type DonationRecorder interface {
	Record(ctx context.Context, d *domain.Donation) (bool, error)
}

type QuoteProvider interface {
	Random(ctx context.Context) domain.Quote
}

type Notifier interface {
	AlreadySent(ctx context.Context, msg notify.Message) (bool, error)
	Deliver(ctx context.Context, msg notify.Message, quote domain.Quote) error
}

type Failure struct {
	SubscriptionID string `json:"subscriptionId"`
	Stage          string `json:"stage"`
	Error          string `json:"error"`
}

// Result reports one sweep run. Succeeded subscriptions got their donation or
// email this run, Skipped ones were already fully processed for the period.
type Result struct {
	Period    string    `json:"period"`
	NotDue    bool      `json:"notDue"`
	Processed int       `json:"processed"`
	Succeeded []string  `json:"succeeded"`
	Skipped   []string  `json:"skipped"`
	Failed    []Failure `json:"failed"`

	mu sync.Mutex
}

func (r *Result) succeed(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Processed++
	r.Succeeded = append(r.Succeeded, id)
}

func (r *Result) skip(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Processed++
	r.Skipped = append(r.Skipped, id)
}

func (r *Result) fail(id, stage string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Processed++
	r.Failed = append(r.Failed, Failure{SubscriptionID: id, Stage: stage, Error: err.Error()})
}

type Options struct {
	Location *time.Location
	Workers  int
	LockTTL  time.Duration
}

type Job struct {
	subs      SubscriptionRepo
	donations DonationRecorder
	quotes    QuoteProvider
	notifier  Notifier
	locker    lock.Locker
	opts      Options
}

func New(subs SubscriptionRepo, donations DonationRecorder, quotes QuoteProvider, notifier Notifier,
	locker lock.Locker, opts Options,
) *Job {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = time.Hour
	}
	return &Job{
		subs:      subs,
		donations: donations,
		quotes:    quotes,
		notifier:  notifier,
		locker:    locker,
		opts:      opts,
	}
}

// Run processes every active subscription for the period containing at.
// Unless force is set it does nothing before the last day of the month.
// Failures of single subscriptions are reported in the result, never returned.
func (j *Job) Run(ctx context.Context, at time.Time, force bool) (*Result, error) {
	local := at.In(j.opts.Location)
	period := domain.Period(local)
	result := &Result{Period: period, Succeeded: []string{}, Skipped: []string{}, Failed: []Failure{}}

	if !force && !domain.IsLastDayOfMonth(local) {
		result.NotDue = true
		metrics.SweepRunsTotal.WithLabelValues("not_due").Inc()
		return result, nil
	}

	unlock, err := j.locker.Acquire(ctx, "sweep:"+period, j.opts.LockTTL)
	if errors.Is(err, lock.ErrLocked) {
		metrics.SweepRunsTotal.WithLabelValues("in_progress").Inc()
		return nil, ErrSweepInProgress
	}
	if err != nil {
		metrics.SweepRunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	defer unlock()

	start := time.Now()
	defer func() { metrics.SweepDuration.Observe(time.Since(start).Seconds()) }()

	subs, err := j.subs.FindActive(ctx)
	if err != nil {
		metrics.SweepRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("can't list active subscriptions: %w", err)
	}
	zap.L().Info("monthly sweep started", zap.String("period", period), zap.Int("subscriptions", len(subs)))

	wp := NewWorkerPool(j.opts.Workers)
	for i := range subs {
		sub := subs[i]
		err := wp.AddTask(ctx, func() error {
			j.process(ctx, &sub, period, local, result)
			return nil
		})
		if err != nil {
			result.fail(sub.ID, StageSchedule, err)
		}
	}
	wp.Close()

	metrics.SweepRunsTotal.WithLabelValues("completed").Inc()
	metrics.SweepSubscriptionsTotal.WithLabelValues("succeeded").Add(float64(len(result.Succeeded)))
	metrics.SweepSubscriptionsTotal.WithLabelValues("skipped").Add(float64(len(result.Skipped)))
	metrics.SweepSubscriptionsTotal.WithLabelValues("failed").Add(float64(len(result.Failed)))
	zap.L().Info("monthly sweep finished",
		zap.String("period", period),
		zap.Int("processed", result.Processed),
		zap.Int("succeeded", len(result.Succeeded)),
		zap.Int("skipped", len(result.Skipped)),
		zap.Int("failed", len(result.Failed)))

	return result, nil
}

func (j *Job) process(ctx context.Context, sub *domain.Subscription, period string, at time.Time, result *Result) {
	inserted, err := j.donations.Record(ctx, domain.MonthlyDonation(uuid.NewString(), sub, period, at))
	if err != nil {
		zap.L().Error("sweep donation failed", zap.String("subscription_id", sub.ID), zap.Error(err))
		result.fail(sub.ID, StageDonation, err)
		return
	}

	msg := notify.MessageFor(domain.EmailTypeMonthly, sub, period)
	sent, err := j.notifier.AlreadySent(ctx, msg)
	if err != nil {
		result.fail(sub.ID, StageEmail, err)
		return
	}
	if sent {
		if inserted {
			result.succeed(sub.ID)
		} else {
			result.skip(sub.ID)
		}
		return
	}

	if err := j.notifier.Deliver(ctx, msg, j.quotes.Random(ctx)); err != nil {
		result.fail(sub.ID, StageEmail, err)
		return
	}
	result.succeed(sub.ID)
}
