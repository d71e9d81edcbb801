package dto

import "github.com/GlebRadaev/charity/internal/domain"

type DonationDTO struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	UserName       string  `json:"userName" example:"Amina"`
	Amount         int64   `json:"amount" example:"100"`
	CauseID        *string `json:"causeId,omitempty"`
	CauseName      string  `json:"causeName" example:"Iftar Program"`
	Type           string  `json:"type" example:"monthly"`
	SubscriptionID *string `json:"subscriptionId,omitempty"`
	Status         string  `json:"status" example:"completed"`
	Period         string  `json:"period" example:"2026-10"`
	CreatedAt      string  `json:"createdAt" example:"2026-10-31T09:00:00+03:00"`
}

type DonationsResponseDTO struct {
	Donations []DonationDTO `json:"donations"`
}

func NewDonationsResponseDTO(donations []domain.Donation) DonationsResponseDTO {
	resp := DonationsResponseDTO{Donations: make([]DonationDTO, 0, len(donations))}
	for _, d := range donations {
		resp.Donations = append(resp.Donations, DonationDTO{
			ID:             d.ID,
			UserID:         d.UserID,
			UserName:       d.UserName,
			Amount:         d.Amount,
			CauseID:        d.CauseID,
			CauseName:      d.CauseName,
			Type:           d.Type,
			SubscriptionID: d.SubscriptionID,
			Status:         d.Status,
			Period:         d.Period,
			CreatedAt:      formatTime(d.CreatedAt),
		})
	}
	return resp
}
