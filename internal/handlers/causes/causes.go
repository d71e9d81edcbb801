package causes

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/internal/service/causeservice"
	"github.com/GlebRadaev/charity/pkg/utils"
)

type Service interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Cause, error)
	Create(ctx context.Context, req causeservice.CreateRequest) (*domain.Cause, error)
}

type CauseHandler struct {
	causeService Service
}

func New(causeService Service) *CauseHandler {
	return &CauseHandler{
		causeService: causeService,
	}
}

// List godoc
//
//	@Summary		List causes
//	@Description	Active causes with their funding progress. Pass all=true to include closed ones.
//	@Tags			Causes
//	@Produce		json
//	@Param			all	query	bool	false	"Include inactive causes"
//	@Success		200	{object}	dto.CausesResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/causes [get]
func (h *CauseHandler) List(w http.ResponseWriter, r *http.Request) {
	causes, err := h.causeService.List(r.Context(), r.URL.Query().Get("all") != "true")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCausesResponseDTO(causes))
}

// Create godoc
//
//	@Summary	Create a cause
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.CreateCauseRequestDTO	true	"Cause details"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.CreateCauseResponseDTO
//	@Failure	400	{object}	utils.Response	"Missing title or non-positive goal"
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/causes [post]
func (h *CauseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCauseRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cause, err := h.causeService.Create(r.Context(), causeservice.CreateRequest{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Goal:        req.Goal,
	})
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateCauseResponseDTO{CauseID: cause.ID})
}
