package subscriptions

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/internal/service/subscriptionservice"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/GlebRadaev/charity/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, identity *auth.Identity, req subscriptionservice.CreateRequest) (*domain.Subscription, error)
	List(ctx context.Context, identity *auth.Identity) ([]domain.Subscription, error)
	ListAll(ctx context.Context) ([]domain.Subscription, error)
	Cancel(ctx context.Context, identity *auth.Identity, id string) error
	Pause(ctx context.Context, identity *auth.Identity, id string) error
	Resume(ctx context.Context, identity *auth.Identity, id string) error
	UpdateAmount(ctx context.Context, identity *auth.Identity, id string, amount int64) error
	Donations(ctx context.Context, identity *auth.Identity, id string) ([]domain.Donation, error)
}

type SubscriptionHandler struct {
	subscriptionService Service
}

func New(subscriptionService Service) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// Create godoc
//
//	@Summary		Create a monthly subscription
//	@Description	Start a recurring monthly donation for the caller. The first donation is recorded immediately and a welcome email is sent.
//	@Tags			Subscriptions
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateSubscriptionRequestDTO	true	"Subscription details"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CreateSubscriptionResponseDTO
//	@Failure		400	{object}	utils.Response	"Amount below the minimum or malformed body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Cause not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions [post]
func (h *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSubscriptionRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := h.subscriptionService.Create(r.Context(), auth.IdentityFrom(r.Context()), subscriptionservice.CreateRequest{
		Amount:    req.Amount,
		CauseID:   req.CauseID,
		CauseName: req.CauseName,
	})
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateSubscriptionResponseDTO{SubscriptionID: sub.ID})
}

// List godoc
//
//	@Summary		List caller's subscriptions
//	@Tags			Subscriptions
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SubscriptionsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions [get]
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscriptionService.List(r.Context(), auth.IdentityFrom(r.Context()))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSubscriptionsResponseDTO(subs))
}

// ListAll godoc
//
//	@Summary		List all subscriptions
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SubscriptionsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/subscriptions [get]
func (h *SubscriptionHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscriptionService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSubscriptionsResponseDTO(subs))
}

// Cancel godoc
//
//	@Summary		Cancel a subscription
//	@Description	Only the owner may cancel. Cancelled subscriptions are skipped by the monthly sweep.
//	@Tags			Subscriptions
//	@Produce		json
//	@Param			id	path	string	true	"Subscription ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SuccessResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Subscription belongs to another user"
//	@Failure		404	{object}	utils.Response	"Subscription not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.subscriptionService.Cancel)
}

// Pause godoc
//
//	@Summary		Pause a subscription
//	@Tags			Subscriptions
//	@Produce		json
//	@Param			id	path	string	true	"Subscription ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SuccessResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Subscription belongs to another user"
//	@Failure		404	{object}	utils.Response	"Subscription not found"
//	@Router			/api/subscriptions/{id}/pause [post]
func (h *SubscriptionHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.subscriptionService.Pause)
}

// Resume godoc
//
//	@Summary		Resume a paused subscription
//	@Tags			Subscriptions
//	@Produce		json
//	@Param			id	path	string	true	"Subscription ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SuccessResponseDTO
//	@Failure		400	{object}	utils.Response	"Subscription is cancelled"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Subscription belongs to another user"
//	@Failure		404	{object}	utils.Response	"Subscription not found"
//	@Router			/api/subscriptions/{id}/resume [post]
func (h *SubscriptionHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.subscriptionService.Resume)
}

// UpdateAmount godoc
//
//	@Summary		Change the monthly amount
//	@Tags			Subscriptions
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string								true	"Subscription ID"
//	@Param			request	body	dto.UpdateSubscriptionRequestDTO	true	"New amount"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SuccessResponseDTO
//	@Failure		400	{object}	utils.Response	"Amount below the minimum or malformed body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Subscription belongs to another user"
//	@Failure		404	{object}	utils.Response	"Subscription not found"
//	@Router			/api/subscriptions/{id} [patch]
func (h *SubscriptionHandler) UpdateAmount(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSubscriptionRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.mutate(w, r, func(ctx context.Context, identity *auth.Identity, id string) error {
		return h.subscriptionService.UpdateAmount(ctx, identity, id, req.Amount)
	})
}

// Donations godoc
//
//	@Summary		Donation history of a subscription
//	@Tags			Subscriptions
//	@Produce		json
//	@Param			id	path	string	true	"Subscription ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DonationsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Subscription belongs to another user"
//	@Failure		404	{object}	utils.Response	"Subscription not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions/{id}/donations [get]
func (h *SubscriptionHandler) Donations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.subscriptionService.Donations(r.Context(), auth.IdentityFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDonationsResponseDTO(donations))
}

func (h *SubscriptionHandler) mutate(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, identity *auth.Identity, id string) error,
) {
	if err := op(r.Context(), auth.IdentityFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuccessResponseDTO{Success: true})
}
