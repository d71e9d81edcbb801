package quotes

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/internal/service/quoteservice"
	"github.com/GlebRadaev/charity/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	List(ctx context.Context) ([]domain.Quote, error)
	Create(ctx context.Context, req quoteservice.CreateRequest) (*domain.Quote, error)
	Delete(ctx context.Context, id string) error
}

type QuoteHandler struct {
	quoteService Service
}

func New(quoteService Service) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// List godoc
//
//	@Summary	List quotes
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.QuotesResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/quotes [get]
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.quoteService.List(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewQuotesResponseDTO(quotes))
}

// Create godoc
//
//	@Summary	Add a quote
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.CreateQuoteRequestDTO	true	"Quote"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.CreateQuoteResponseDTO
//	@Failure	400	{object}	utils.Response	"Missing text or unknown type"
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Router		/api/admin/quotes [post]
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateQuoteRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote, err := h.quoteService.Create(r.Context(), quoteservice.CreateRequest{
		Text:   req.Text,
		Source: req.Source,
		Type:   req.Type,
	})
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateQuoteResponseDTO{QuoteID: quote.ID})
}

// Delete godoc
//
//	@Summary	Delete a quote
//	@Tags		Admin
//	@Produce	json
//	@Param		id	path	string	true	"Quote ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.SuccessResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	404	{object}	utils.Response	"Quote not found"
//	@Router		/api/admin/quotes/{id} [delete]
func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.quoteService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuccessResponseDTO{Success: true})
}
