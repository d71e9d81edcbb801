package repo

import (
	"github.com/GlebRadaev/charity/internal/notify"
	"github.com/GlebRadaev/charity/internal/pg"
	causerepo "github.com/GlebRadaev/charity/internal/repo/cause-repo"
	contactrepo "github.com/GlebRadaev/charity/internal/repo/contact-repo"
	donationrepo "github.com/GlebRadaev/charity/internal/repo/donation-repo"
	emaillogrepo "github.com/GlebRadaev/charity/internal/repo/emaillog-repo"
	galleryrepo "github.com/GlebRadaev/charity/internal/repo/gallery-repo"
	quoterepo "github.com/GlebRadaev/charity/internal/repo/quote-repo"
	subscriptionrepo "github.com/GlebRadaev/charity/internal/repo/subscription-repo"
	userrepo "github.com/GlebRadaev/charity/internal/repo/user-repo"
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

// CauseRepo is read by subscriptions, incremented by the ledger and managed by admins.
type CauseRepo interface {
	causeservice.Repo
	subscriptionservice.CauseRepo
	donationservice.CauseRepo
}

type SubscriptionRepo interface {
	subscriptionservice.Repo
	sweep.SubscriptionRepo
}

type EmailLogRepo interface {
	emaillogservice.Repo
	notify.EmailLogRepo
}

type Repositories struct {
	UserRepo         userservice.Repo
	SubscriptionRepo SubscriptionRepo
	DonationRepo     donationservice.Repo
	CauseRepo        CauseRepo
	QuoteRepo        quoteservice.Repo
	EmailLogRepo     EmailLogRepo
	GalleryRepo      galleryservice.Repo
	ContactRepo      contactservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		SubscriptionRepo: subscriptionrepo.New(conn, txManager),
		DonationRepo:     donationrepo.New(conn),
		CauseRepo:        causerepo.New(conn),
		QuoteRepo:        quoterepo.New(conn),
		EmailLogRepo:     emaillogrepo.New(conn),
		GalleryRepo:      galleryrepo.New(conn),
		ContactRepo:      contactrepo.New(conn),
	}
}
