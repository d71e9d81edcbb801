package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/GlebRadaev/charity/internal/config"
	"github.com/GlebRadaev/charity/internal/events"
	"github.com/GlebRadaev/charity/internal/handlers"
	"github.com/GlebRadaev/charity/internal/lock"
	"github.com/GlebRadaev/charity/internal/metrics"
	"github.com/GlebRadaev/charity/internal/notify"
	"github.com/GlebRadaev/charity/internal/pg"
	"github.com/GlebRadaev/charity/internal/repo"
	"github.com/GlebRadaev/charity/internal/service"
	"github.com/GlebRadaev/charity/internal/sweep"
	"github.com/GlebRadaev/charity/internal/welcome"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/GlebRadaev/charity/pkg/logger"
	"github.com/GlebRadaev/charity/pkg/mailer"
)

const senderName = "HUMSJ Charity"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	scheduler *sweep.Scheduler
	consumer  events.Consumer
	welcome   *welcome.Trigger
	closers   []func() error

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	metrics.Init()

	loc, err := time.LoadLocation(cfg.SweepTimezone)
	if err != nil {
		return fmt.Errorf("can't load sweep timezone %q: %w", cfg.SweepTimezone, err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, func() error { pool.Close(); return nil })
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	verifier, err := newVerifier(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't build identity verifier: %w", err)
	}
	mail, err := newMailer(cfg)
	if err != nil {
		return fmt.Errorf("can't build mailer: %w", err)
	}
	locker, err := a.newLocker(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't build sweep lock: %w", err)
	}
	publisher, consumer := a.newEventBus(cfg)

	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, service.Deps{
		TXManager: txManager,
		Publisher: publisher,
		MinAmount: cfg.MinDonationAmount,
		Location:  loc,
	})

	notifier := notify.New(mail, a.repo.EmailLogRepo, fmt.Sprintf("%s <%s>", senderName, cfg.MailFrom))
	job := sweep.New(a.repo.SubscriptionRepo, a.srv.Ledger, a.srv.Quotes, notifier, locker, sweep.Options{
		Location: loc,
		Workers:  cfg.SweepWorkers,
		LockTTL:  cfg.SweepLockTTL,
	})
	a.scheduler = sweep.NewScheduler(job, cfg.SweepHour, loc, cfg.SweepPollInterval)
	a.consumer = consumer
	a.welcome = welcome.New(a.srv.Quotes, notifier)
	a.api = handlers.New(a.srv, verifier, job, handlers.Options{
		ContactRate:  rate.Limit(cfg.ContactRatePerMin / 60),
		ContactBurst: cfg.ContactBurst,
	})

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startWorkers(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func newVerifier(ctx context.Context, cfg *config.Config) (auth.Verifier, error) {
	if cfg.OIDCIssuer == "" {
		if cfg.JWTSecret == "" {
			return nil, errors.New("either OIDC_ISSUER or JWT_SECRET must be set")
		}
		zap.L().Info("verifying bearer tokens with the shared JWT secret")
		return auth.NewJWTVerifier(cfg.JWTSecret), nil
	}
	zap.L().Info("verifying bearer tokens with OIDC", zap.String("issuer", cfg.OIDCIssuer))
	return auth.NewOIDCVerifier(ctx, cfg.OIDCIssuer, cfg.OIDCAudience)
}

func newMailer(cfg *config.Config) (mailer.Mailer, error) {
	var m mailer.Mailer
	switch cfg.MailProvider {
	case "smtp":
		m = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	case "sendgrid":
		if cfg.SendGridAPIKey == "" {
			return nil, errors.New("SENDGRID_API_KEY is required for the sendgrid provider")
		}
		m = mailer.NewSendGridMailer(cfg.SendGridAPIKey)
	case "", "log":
		m = mailer.LogMailer{}
	default:
		return nil, fmt.Errorf("unsupported mail provider: %s", cfg.MailProvider)
	}
	zap.L().Info("mail provider selected", zap.String("provider", cfg.MailProvider))
	return mailer.NewRateLimited(m, cfg.MailRatePerSec, cfg.MailBurst), nil
}

func (a *Application) newLocker(ctx context.Context, cfg *config.Config) (lock.Locker, error) {
	if cfg.RedisAddr == "" {
		return lock.NewMemory(), nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("can't reach redis at %s: %w", cfg.RedisAddr, err)
	}
	a.closers = append(a.closers, client.Close)
	return lock.NewRedis(client), nil
}

func (a *Application) newEventBus(cfg *config.Config) (events.Publisher, events.Consumer) {
	if len(cfg.KafkaBrokers) == 0 {
		bus := events.NewLocalBus(64)
		return bus, bus
	}
	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers)
	consumer := events.NewKafkaConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID)
	a.closers = append(a.closers, publisher.Close, consumer.Close)
	return publisher, consumer
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startWorkers runs the sweep scheduler and the welcome consumer until ctx is
// cancelled. The first one to fail is reported on errCh.
func (a *Application) startWorkers(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return a.scheduler.Start(gCtx)
		})
		g.Go(func() error {
			return a.consumer.Consume(gCtx, a.welcome.Handle)
		})
		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			a.errCh <- fmt.Errorf("background workers exited with error: %w", err)
		}
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zap.L().Error("can't release resource", zap.Error(err))
		}
	}

	return appErr
}
