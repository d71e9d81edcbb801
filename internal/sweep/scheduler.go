package sweep

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Runner interface {
	Run(ctx context.Context, at time.Time, force bool) (*Result, error)
}

// Scheduler fires the sweep at hour Hour on days 28-31 in Location, at most
// once per calendar date. The job itself decides whether the day is the last.
type Scheduler struct {
	job          Runner
	hour         int
	loc          *time.Location
	pollInterval time.Duration
	now          func() time.Time
	lastFired    string
}

func NewScheduler(job Runner, hour int, loc *time.Location, pollInterval time.Duration) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if pollInterval <= 0 {
		pollInterval = time.Minute
	}
	return &Scheduler{
		job:          job,
		hour:         hour,
		loc:          loc,
		pollInterval: pollInterval,
		now:          time.Now,
	}
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	zap.L().Info("sweep scheduler started",
		zap.Int("hour", s.hour), zap.String("timezone", s.loc.String()), zap.Duration("poll", s.pollInterval))

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		s.tick(ctx)
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweep scheduler")
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) due(t time.Time) bool {
	local := t.In(s.loc)
	return local.Day() >= 28 && local.Hour() == s.hour && local.Format(time.DateOnly) != s.lastFired
}

func (s *Scheduler) tick(ctx context.Context) {
	now := s.now()
	if !s.due(now) {
		return
	}
	s.lastFired = now.In(s.loc).Format(time.DateOnly)

	result, err := s.job.Run(ctx, now, false)
	if err != nil {
		zap.L().Error("scheduled sweep failed", zap.String("date", s.lastFired), zap.Error(err))
		return
	}
	if result.NotDue {
		zap.L().Debug("sweep not due today", zap.String("date", s.lastFired))
	}
}
