package service

import (
	"time"

	"github.com/GlebRadaev/charity/internal/events"
	"github.com/GlebRadaev/charity/internal/handlers/causes"
	"github.com/GlebRadaev/charity/internal/handlers/contact"
	"github.com/GlebRadaev/charity/internal/handlers/donations"
	"github.com/GlebRadaev/charity/internal/handlers/emaillogs"
	"github.com/GlebRadaev/charity/internal/handlers/gallery"
	"github.com/GlebRadaev/charity/internal/handlers/quotes"
	"github.com/GlebRadaev/charity/internal/handlers/subscriptions"
	"github.com/GlebRadaev/charity/internal/handlers/users"
	"github.com/GlebRadaev/charity/internal/pg"
	"github.com/GlebRadaev/charity/internal/repo"
	"github.com/GlebRadaev/charity/internal/service/causeservice"
	"github.com/GlebRadaev/charity/internal/service/contactservice"
	"github.com/GlebRadaev/charity/internal/service/donationservice"
	"github.com/GlebRadaev/charity/internal/service/emaillogservice"
	"github.com/GlebRadaev/charity/internal/service/galleryservice"
	"github.com/GlebRadaev/charity/internal/service/quoteservice"
	"github.com/GlebRadaev/charity/internal/service/subscriptionservice"
	"github.com/GlebRadaev/charity/internal/service/userservice"
	"github.com/GlebRadaev/charity/internal/sweep"
)

type Deps struct {
	TXManager pg.TXManager
	Publisher events.Publisher
	MinAmount int64
	Location  *time.Location
}

type Services struct {
	UserService         users.Service
	SubscriptionService subscriptions.Service
	DonationService     donations.Service
	CauseService        causes.Service
	QuoteService        quotes.Service
	GalleryService      gallery.Service
	ContactService      contact.Service
	EmailLogService     emaillogs.Service

	// Used by the sweep and the welcome trigger.
	Ledger sweep.DonationRecorder
	Quotes sweep.QuoteProvider
}

func New(repos *repo.Repositories, deps Deps) *Services {
	donationService := donationservice.New(repos.DonationRepo, repos.CauseRepo, deps.TXManager, deps.Location)
	quoteService := quoteservice.New(repos.QuoteRepo)
	subscriptionService := subscriptionservice.New(
		repos.SubscriptionRepo,
		repos.UserRepo,
		repos.CauseRepo,
		donationService,
		deps.Publisher,
		deps.TXManager,
		subscriptionservice.Options{MinAmount: deps.MinAmount, Location: deps.Location},
	)

	return &Services{
		UserService:         userservice.New(repos.UserRepo),
		SubscriptionService: subscriptionService,
		DonationService:     donationService,
		CauseService:        causeservice.New(repos.CauseRepo),
		QuoteService:        quoteService,
		GalleryService:      galleryservice.New(repos.GalleryRepo),
		ContactService:      contactservice.New(repos.ContactRepo),
		EmailLogService:     emaillogservice.New(repos.EmailLogRepo),
		Ledger:              donationService,
		Quotes:              quoteService,
	}
}
