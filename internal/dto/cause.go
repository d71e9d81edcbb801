package dto

import "github.com/GlebRadaev/charity/internal/domain"

type CreateCauseRequestDTO struct {
	Title       string `json:"title" example:"Iftar Program"`
	Description string `json:"description" example:"Evening meals for students during Ramadan"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Category    string `json:"category,omitempty" example:"food"`
	Goal        int64  `json:"goal" example:"1000"`
}

type CreateCauseResponseDTO struct {
	CauseID string `json:"causeId"`
}

type CauseDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title" example:"Iftar Program"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Category    string `json:"category,omitempty"`
	Goal        int64  `json:"goal" example:"1000"`
	Raised      int64  `json:"raised" example:"300"`
	Progress    int    `json:"progress" example:"30"`
	Active      bool   `json:"active" example:"true"`
}

type CausesResponseDTO struct {
	Causes []CauseDTO `json:"causes"`
}

func NewCausesResponseDTO(causes []domain.Cause) CausesResponseDTO {
	resp := CausesResponseDTO{Causes: make([]CauseDTO, 0, len(causes))}
	for _, c := range causes {
		resp.Causes = append(resp.Causes, CauseDTO{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			ImageURL:    c.ImageURL,
			Category:    c.Category,
			Goal:        c.Goal,
			Raised:      c.Raised,
			Progress:    c.Progress,
			Active:      c.Active,
		})
	}
	return resp
}
