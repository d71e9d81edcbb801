package users

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/GlebRadaev/charity/pkg/utils"
)

type Service interface {
	EnsureUser(ctx context.Context, identity *auth.Identity) (*domain.User, error)
	RequireAdmin(ctx context.Context, identity *auth.Identity) (*domain.User, error)
	SetAdminRole(ctx context.Context, userID string) error
	Profile(ctx context.Context, identity *auth.Identity) (*domain.User, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Provision makes sure the authenticated caller has a user record.
func (h *UserHandler) Provision(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := h.userService.EnsureUser(r.Context(), auth.IdentityFrom(r.Context())); err != nil {
			utils.RespondWithDomainError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminOnly lets the request through only for callers holding the admin role.
func (h *UserHandler) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := h.userService.RequireAdmin(r.Context(), auth.IdentityFrom(r.Context())); err != nil {
			utils.RespondWithDomainError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Me godoc
//
//	@Summary	Current user profile
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UserDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Profile(r.Context(), auth.IdentityFrom(r.Context()))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(user))
}

// SetRole godoc
//
//	@Summary	Grant the admin role
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.SetRoleRequestDTO	true	"Target user"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.SuccessResponseDTO
//	@Failure	400	{object}	utils.Response	"Missing userId"
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/admin/users/role [post]
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req dto.SetRoleRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.userService.SetAdminRole(r.Context(), req.UserID); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuccessResponseDTO{Success: true})
}
