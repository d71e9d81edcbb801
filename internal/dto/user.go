package dto

import "github.com/GlebRadaev/charity/internal/domain"

type SetRoleRequestDTO struct {
	UserID string `json:"userId" example:"firebase-uid-1"`
}

type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role" example:"donor"`
	CreatedAt string `json:"createdAt"`
}

func NewUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: formatTime(u.CreatedAt),
	}
}
