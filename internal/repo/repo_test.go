package repo

import (
	"testing"

	"github.com/GlebRadaev/charity/internal/pg"
	causerepo "github.com/GlebRadaev/charity/internal/repo/cause-repo"
	contactrepo "github.com/GlebRadaev/charity/internal/repo/contact-repo"
	donationrepo "github.com/GlebRadaev/charity/internal/repo/donation-repo"
	emaillogrepo "github.com/GlebRadaev/charity/internal/repo/emaillog-repo"
	galleryrepo "github.com/GlebRadaev/charity/internal/repo/gallery-repo"
	quoterepo "github.com/GlebRadaev/charity/internal/repo/quote-repo"
	subscriptionrepo "github.com/GlebRadaev/charity/internal/repo/subscription-repo"
	userrepo "github.com/GlebRadaev/charity/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &subscriptionrepo.Repository{}, repo.SubscriptionRepo)
	assert.IsType(t, &donationrepo.Repository{}, repo.DonationRepo)
	assert.IsType(t, &causerepo.Repository{}, repo.CauseRepo)
	assert.IsType(t, &quoterepo.Repository{}, repo.QuoteRepo)
	assert.IsType(t, &emaillogrepo.Repository{}, repo.EmailLogRepo)
	assert.IsType(t, &galleryrepo.Repository{}, repo.GalleryRepo)
	assert.IsType(t, &contactrepo.Repository{}, repo.ContactRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
