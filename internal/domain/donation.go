package domain

import "time"

// MonthlyDonation builds the ledger entry a subscription produces for period.
// The idempotency key makes a second write for the same period a no-op.
func MonthlyDonation(id string, sub *Subscription, period string, at time.Time) *Donation {
	key := MonthlyDonationKey(sub.ID, period)
	subscriptionID := sub.ID
	return &Donation{
		ID:             id,
		UserID:         sub.UserID,
		UserName:       sub.UserName,
		UserEmail:      sub.UserEmail,
		Amount:         sub.Amount,
		CauseID:        sub.CauseID,
		CauseName:      sub.CauseName,
		Type:           DonationTypeMonthly,
		SubscriptionID: &subscriptionID,
		Status:         DonationStatusCompleted,
		Period:         period,
		IdempotencyKey: &key,
		CreatedAt:      at,
	}
}
