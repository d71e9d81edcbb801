package dto

import "github.com/GlebRadaev/charity/internal/domain"

type EmailLogDTO struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	Email          string  `json:"email"`
	Type           string  `json:"type" example:"monthly"`
	SubscriptionID *string `json:"subscriptionId,omitempty"`
	Period         string  `json:"period,omitempty" example:"2026-10"`
	Status         string  `json:"status" example:"sent"`
	Error          string  `json:"error,omitempty"`
	QuoteUsed      string  `json:"quoteUsed,omitempty"`
	Amount         int64   `json:"amount" example:"100"`
	SentAt         string  `json:"sentAt"`
}

type EmailLogsResponseDTO struct {
	Logs []EmailLogDTO `json:"logs"`
}

func NewEmailLogsResponseDTO(logs []domain.EmailLog) EmailLogsResponseDTO {
	resp := EmailLogsResponseDTO{Logs: make([]EmailLogDTO, 0, len(logs))}
	for _, l := range logs {
		resp.Logs = append(resp.Logs, EmailLogDTO{
			ID:             l.ID,
			UserID:         l.UserID,
			Email:          l.Email,
			Type:           l.Type,
			SubscriptionID: l.SubscriptionID,
			Period:         l.Period,
			Status:         l.Status,
			Error:          l.Error,
			QuoteUsed:      l.QuoteUsed,
			Amount:         l.Amount,
			SentAt:         formatTime(l.SentAt),
		})
	}
	return resp
}
