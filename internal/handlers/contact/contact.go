package contact

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/internal/service/contactservice"
	"github.com/GlebRadaev/charity/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Submit(ctx context.Context, req contactservice.SubmitRequest) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkHandled(ctx context.Context, id, response string) error
}

type ContactHandler struct {
	contactService Service
}

func New(contactService Service) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit godoc
//
//	@Summary	Send a message to the organisers
//	@Tags		Contact
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.ContactRequestDTO	true	"Message"
//	@Success	201	{object}	dto.ContactResponseDTO
//	@Failure	400	{object}	utils.Response	"Missing field or invalid email"
//	@Failure	429	{object}	utils.Response	"Too many messages"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/contact [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.contactService.Submit(r.Context(), contactservice.SubmitRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ContactResponseDTO{MessageID: msg.ID})
}

// List godoc
//
//	@Summary	List contact messages
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.ContactMessagesResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/contact [get]
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewContactMessagesResponseDTO(messages))
}

// MarkHandled godoc
//
//	@Summary	Mark a contact message as handled
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string						true	"Message ID"
//	@Param		request	body	dto.MarkHandledRequestDTO	false	"Response sent to the sender"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.SuccessResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	404	{object}	utils.Response	"Message not found"
//	@Router		/api/admin/contact/{id}/handled [post]
func (h *ContactHandler) MarkHandled(w http.ResponseWriter, r *http.Request) {
	var req dto.MarkHandledRequestDTO
	if r.ContentLength != 0 {
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	if err := h.contactService.MarkHandled(r.Context(), chi.URLParam(r, "id"), req.Response); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuccessResponseDTO{Success: true})
}
