package dto

import "github.com/GlebRadaev/charity/internal/domain"

type CreateQuoteRequestDTO struct {
	Text   string `json:"text" example:"The upper hand is better than the lower hand."`
	Source string `json:"source" example:"Hadith - Bukhari"`
	Type   string `json:"type" example:"hadith"`
}

type CreateQuoteResponseDTO struct {
	QuoteID string `json:"quoteId"`
}

type QuoteDTO struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Source    string  `json:"source"`
	Type      string  `json:"type" example:"quran"`
	TimesUsed int     `json:"timesUsed" example:"3"`
	LastUsed  *string `json:"lastUsed,omitempty"`
}

type QuotesResponseDTO struct {
	Quotes []QuoteDTO `json:"quotes"`
}

func NewQuotesResponseDTO(quotes []domain.Quote) QuotesResponseDTO {
	resp := QuotesResponseDTO{Quotes: make([]QuoteDTO, 0, len(quotes))}
	for _, q := range quotes {
		resp.Quotes = append(resp.Quotes, QuoteDTO{
			ID:        q.ID,
			Text:      q.Text,
			Source:    q.Source,
			Type:      q.Type,
			TimesUsed: q.TimesUsed,
			LastUsed:  formatTimePtr(q.LastUsed),
		})
	}
	return resp
}
