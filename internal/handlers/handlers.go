package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/charity/docs"
	causehandlers "github.com/GlebRadaev/charity/internal/handlers/causes"
	contacthandlers "github.com/GlebRadaev/charity/internal/handlers/contact"
	donationhandlers "github.com/GlebRadaev/charity/internal/handlers/donations"
	emailloghandlers "github.com/GlebRadaev/charity/internal/handlers/emaillogs"
	galleryhandlers "github.com/GlebRadaev/charity/internal/handlers/gallery"
	quotehandlers "github.com/GlebRadaev/charity/internal/handlers/quotes"
	subscriptionhandlers "github.com/GlebRadaev/charity/internal/handlers/subscriptions"
	sweephandlers "github.com/GlebRadaev/charity/internal/handlers/sweeper"
	userhandlers "github.com/GlebRadaev/charity/internal/handlers/users"
	"github.com/GlebRadaev/charity/internal/metrics"
	"github.com/GlebRadaev/charity/internal/service"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"
)

type SubscriptionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Pause(w http.ResponseWriter, r *http.Request)
	Resume(w http.ResponseWriter, r *http.Request)
	UpdateAmount(w http.ResponseWriter, r *http.Request)
	Donations(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
}

type CauseHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type GalleryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Upload(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type QuoteHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ContactHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkHandled(w http.ResponseWriter, r *http.Request)
}

type EmailLogHandler interface {
	Recent(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Provision(next http.Handler) http.Handler
	AdminOnly(next http.Handler) http.Handler
	Me(w http.ResponseWriter, r *http.Request)
	SetRole(w http.ResponseWriter, r *http.Request)
}

type SweepHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
}

type Options struct {
	ContactRate  rate.Limit
	ContactBurst int
}

type Handlers struct {
	SubscriptionHandler SubscriptionHandler
	DonationHandler     DonationHandler
	CauseHandler        CauseHandler
	GalleryHandler      GalleryHandler
	QuoteHandler        QuoteHandler
	ContactHandler      ContactHandler
	EmailLogHandler     EmailLogHandler
	UserHandler         UserHandler
	SweepHandler        SweepHandler

	verifier       auth.Verifier
	contactLimiter *RateLimiter
}

func New(s *service.Services, verifier auth.Verifier, runner sweephandlers.Runner, opts Options) *Handlers {
	return &Handlers{
		SubscriptionHandler: subscriptionhandlers.New(s.SubscriptionService),
		DonationHandler:     donationhandlers.New(s.DonationService),
		CauseHandler:        causehandlers.New(s.CauseService),
		GalleryHandler:      galleryhandlers.New(s.GalleryService),
		QuoteHandler:        quotehandlers.New(s.QuoteService),
		ContactHandler:      contacthandlers.New(s.ContactService),
		EmailLogHandler:     emailloghandlers.New(s.EmailLogService),
		UserHandler:         userhandlers.New(s.UserService),
		SweepHandler:        sweephandlers.New(runner),
		verifier:            verifier,
		contactLimiter:      NewRateLimiter(opts.ContactRate, opts.ContactBurst),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/gallery", h.GalleryHandler.List)
		r.Get("/causes", h.CauseHandler.List)
		r.With(h.contactLimiter.Middleware).Post("/contact", h.ContactHandler.Submit)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.verifier), h.UserHandler.Provision)

			r.Get("/me", h.UserHandler.Me)
			r.Get("/donations", h.DonationHandler.Mine)
			r.Route("/subscriptions", func(r chi.Router) {
				r.Post("/", h.SubscriptionHandler.Create)
				r.Get("/", h.SubscriptionHandler.List)
				r.Patch("/{id}", h.SubscriptionHandler.UpdateAmount)
				r.Post("/{id}/cancel", h.SubscriptionHandler.Cancel)
				r.Post("/{id}/pause", h.SubscriptionHandler.Pause)
				r.Post("/{id}/resume", h.SubscriptionHandler.Resume)
				r.Get("/{id}/donations", h.SubscriptionHandler.Donations)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.UserHandler.AdminOnly)

				r.Post("/users/role", h.UserHandler.SetRole)
				r.Get("/subscriptions", h.SubscriptionHandler.ListAll)
				r.Get("/donations", h.DonationHandler.All)
				r.Post("/causes", h.CauseHandler.Create)
				r.Post("/gallery", h.GalleryHandler.Upload)
				r.Delete("/gallery/{id}", h.GalleryHandler.Delete)
				r.Get("/quotes", h.QuoteHandler.List)
				r.Post("/quotes", h.QuoteHandler.Create)
				r.Delete("/quotes/{id}", h.QuoteHandler.Delete)
				r.Get("/contact", h.ContactHandler.List)
				r.Post("/contact/{id}/handled", h.ContactHandler.MarkHandled)
				r.Get("/email-logs", h.EmailLogHandler.Recent)
				r.Post("/sweep", h.SweepHandler.Run)
			})
		})
	})

	return r
}
