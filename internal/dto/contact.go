package dto

import "github.com/GlebRadaev/charity/internal/domain"

type ContactRequestDTO struct {
	Name    string `json:"name" example:"Yusuf"`
	Email   string `json:"email" example:"yusuf@example.com"`
	Message string `json:"message" example:"How can I volunteer?"`
}

type ContactResponseDTO struct {
	MessageID string `json:"messageId"`
}

type MarkHandledRequestDTO struct {
	Response string `json:"response" example:"Thank you, we will reach out."`
}

type ContactMessageDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Message   string  `json:"message"`
	Handled   bool    `json:"handled"`
	Response  string  `json:"response,omitempty"`
	CreatedAt string  `json:"createdAt"`
	HandledAt *string `json:"handledAt,omitempty"`
}

type ContactMessagesResponseDTO struct {
	Messages []ContactMessageDTO `json:"messages"`
}

func NewContactMessagesResponseDTO(messages []domain.ContactMessage) ContactMessagesResponseDTO {
	resp := ContactMessagesResponseDTO{Messages: make([]ContactMessageDTO, 0, len(messages))}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, ContactMessageDTO{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			Handled:   m.Handled,
			Response:  m.Response,
			CreatedAt: formatTime(m.CreatedAt),
			HandledAt: formatTimePtr(m.HandledAt),
		})
	}
	return resp
}
