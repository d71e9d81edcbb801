package dto

import "github.com/GlebRadaev/charity/internal/domain"

type CreateSubscriptionRequestDTO struct {
	Amount    int64  `json:"amount" example:"100"`
	CauseID   string `json:"causeId,omitempty" example:"5b0f3c1e-8d1f-4a43-9b5e-2f6a8c1d7e90"`
	CauseName string `json:"causeName,omitempty" example:"Iftar Program"`
}

type CreateSubscriptionResponseDTO struct {
	SubscriptionID string `json:"subscriptionId" example:"0c6f1d7a-3b9e-4f21-8a55-6d2e9b4c1f03"`
}

type UpdateSubscriptionRequestDTO struct {
	Amount int64 `json:"amount" example:"150"`
}

type SubscriptionDTO struct {
	ID          string  `json:"id" example:"0c6f1d7a-3b9e-4f21-8a55-6d2e9b4c1f03"`
	UserID      string  `json:"userId" example:"firebase-uid-1"`
	UserName    string  `json:"userName" example:"Amina"`
	UserEmail   string  `json:"userEmail" example:"amina@example.com"`
	Amount      int64   `json:"amount" example:"100"`
	CauseID     *string `json:"causeId,omitempty"`
	CauseName   string  `json:"causeName" example:"General Fund"`
	StartDate   string  `json:"startDate" example:"2026-10-14T09:00:00+03:00"`
	Active      bool    `json:"active" example:"true"`
	CancelledAt *string `json:"cancelledAt,omitempty"`
}

type SubscriptionsResponseDTO struct {
	Subscriptions []SubscriptionDTO `json:"subscriptions"`
}

func NewSubscriptionDTO(s domain.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:          s.ID,
		UserID:      s.UserID,
		UserName:    s.UserName,
		UserEmail:   s.UserEmail,
		Amount:      s.Amount,
		CauseID:     s.CauseID,
		CauseName:   s.CauseName,
		StartDate:   formatTime(s.StartDate),
		Active:      s.Active,
		CancelledAt: formatTimePtr(s.CancelledAt),
	}
}

func NewSubscriptionsResponseDTO(subs []domain.Subscription) SubscriptionsResponseDTO {
	resp := SubscriptionsResponseDTO{Subscriptions: make([]SubscriptionDTO, 0, len(subs))}
	for _, s := range subs {
		resp.Subscriptions = append(resp.Subscriptions, NewSubscriptionDTO(s))
	}
	return resp
}
