package donations

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/GlebRadaev/charity/pkg/utils"
)

type Service interface {
	Mine(ctx context.Context, identity *auth.Identity, month string) ([]domain.Donation, error)
	All(ctx context.Context) ([]domain.Donation, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// Mine godoc
//
//	@Summary		List caller's donations
//	@Description	Donation history of the caller, optionally limited to one month.
//	@Tags			Donations
//	@Produce		json
//	@Param			month	query	string	false	"Month as YYYY-MM"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DonationsResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed month"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donations [get]
func (h *DonationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationService.Mine(r.Context(), auth.IdentityFrom(r.Context()), r.URL.Query().Get("month"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDonationsResponseDTO(donations))
}

// All godoc
//
//	@Summary	List all donations
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DonationsResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/donations [get]
func (h *DonationHandler) All(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationService.All(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDonationsResponseDTO(donations))
}
