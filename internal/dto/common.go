package dto

type SuccessResponseDTO struct {
	Success bool `json:"success" example:"true"`
}
