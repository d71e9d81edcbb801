package domain

import "time"

const (
	RoleDonor = "donor"
	RoleAdmin = "admin"
)

const (
	DonationTypeOneTime = "one-time"
	DonationTypeMonthly = "monthly"
)

const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusFailed    = "failed"
)

const (
	EmailTypeWelcome = "welcome"
	EmailTypeMonthly = "monthly"
)

const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

const (
	QuoteTypeQuran  = "quran"
	QuoteTypeHadith = "hadith"
)

// DefaultCauseName is used for subscriptions that are not attributed to a cause.
const DefaultCauseName = "General Fund"

type User struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type Subscription struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	UserName    string     `db:"user_name"`
	UserEmail   string     `db:"user_email"`
	Amount      int64      `db:"amount"`
	CauseID     *string    `db:"cause_id"`
	CauseName   string     `db:"cause_name"`
	StartDate   time.Time  `db:"start_date"`
	Active      bool       `db:"active"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	CancelledAt *time.Time `db:"cancelled_at"`
}

type Donation struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	UserName       string    `db:"user_name"`
	UserEmail      string    `db:"user_email"`
	Amount         int64     `db:"amount"`
	CauseID        *string   `db:"cause_id"`
	CauseName      string    `db:"cause_name"`
	Type           string    `db:"type"`
	SubscriptionID *string   `db:"subscription_id"`
	Status         string    `db:"status"`
	Period         string    `db:"period"`
	IdempotencyKey *string   `db:"idempotency_key"`
	CreatedAt      time.Time `db:"created_at"`
}

type Cause struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	ImageURL    string    `db:"image_url"`
	Category    string    `db:"category"`
	Goal        int64     `db:"goal"`
	Raised      int64     `db:"raised"`
	Progress    int       `db:"progress"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
}

type Quote struct {
	ID        string     `db:"id"`
	Text      string     `db:"text"`
	Source    string     `db:"source"`
	Type      string     `db:"type"`
	TimesUsed int        `db:"times_used"`
	LastUsed  *time.Time `db:"last_used"`
	CreatedAt time.Time  `db:"created_at"`
}

type EmailLog struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	Email          string    `db:"email"`
	Type           string    `db:"type"`
	SubscriptionID *string   `db:"subscription_id"`
	Period         string    `db:"period"`
	Status         string    `db:"status"`
	Error          string    `db:"error"`
	QuoteUsed      string    `db:"quote_used"`
	Amount         int64     `db:"amount"`
	SentAt         time.Time `db:"sent_at"`
}

type GalleryImage struct {
	ID         string    `db:"id"`
	ImageURL   string    `db:"image_url"`
	Caption    string    `db:"caption"`
	Title      string    `db:"title"`
	UploadedBy string    `db:"uploaded_by"`
	CreatedAt  time.Time `db:"created_at"`
}

type ContactMessage struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Message   string     `db:"message"`
	Handled   bool       `db:"handled"`
	Response  string     `db:"response"`
	CreatedAt time.Time  `db:"created_at"`
	HandledAt *time.Time `db:"handled_at"`
}
