package sweeper

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/internal/sweep"
	"github.com/GlebRadaev/charity/pkg/utils"
	"go.uber.org/zap"
)

type Runner interface {
	Run(ctx context.Context, at time.Time, force bool) (*sweep.Result, error)
}

type SweepHandler struct {
	runner Runner
	now    func() time.Time
}

func New(runner Runner) *SweepHandler {
	return &SweepHandler{
		runner: runner,
		now:    time.Now,
	}
}

// Run godoc
//
//	@Summary		Run the monthly sweep now
//	@Description	Without force the sweep only runs on the last day of the month. Already processed subscriptions are skipped.
//	@Tags			Admin
//	@Produce		json
//	@Param			force	query	bool	false	"Run even if today is not the last day of the month"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SweepResultDTO
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		409	{object}	utils.Response	"A sweep for this period is already running"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/sweep [post]
func (h *SweepHandler) Run(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"

	result, err := h.runner.Run(r.Context(), h.now(), force)
	if err != nil {
		if errors.Is(err, sweep.ErrSweepInProgress) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		zap.L().Error("manual sweep failed", zap.Bool("force", force), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSweepResultDTO(result))
}
