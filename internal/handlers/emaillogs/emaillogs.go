package emaillogs

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/pkg/utils"
)

type Service interface {
	Recent(ctx context.Context, limit int) ([]domain.EmailLog, error)
}

type EmailLogHandler struct {
	emailLogService Service
}

func New(emailLogService Service) *EmailLogHandler {
	return &EmailLogHandler{
		emailLogService: emailLogService,
	}
}

// Recent godoc
//
//	@Summary		List email logs
//	@Description	Newest first. limit defaults to 100 and is capped at 500.
//	@Tags			Admin
//	@Produce		json
//	@Param			limit	query	int	false	"Maximum number of logs"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EmailLogsResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed limit"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/email-logs [get]
func (h *EmailLogHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = n
	}

	logs, err := h.emailLogService.Recent(r.Context(), limit)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEmailLogsResponseDTO(logs))
}
