package gallery

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/internal/service/galleryservice"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/GlebRadaev/charity/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	List(ctx context.Context) ([]domain.GalleryImage, error)
	Upload(ctx context.Context, uploader *auth.Identity, req galleryservice.UploadRequest) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

type GalleryHandler struct {
	galleryService Service
}

func New(galleryService Service) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
	}
}

// List godoc
//
//	@Summary	List gallery images
//	@Tags		Gallery
//	@Produce	json
//	@Success	200	{object}	dto.GalleryResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/gallery [get]
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.galleryService.List(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGalleryResponseDTO(images))
}

// Upload godoc
//
//	@Summary		Add a gallery image
//	@Description	Registers an image that was already uploaded to storage by the client.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.UploadImageRequestDTO	true	"Image details"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.UploadImageResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid image URL"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/gallery [post]
func (h *GalleryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req dto.UploadImageRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	img, err := h.galleryService.Upload(r.Context(), auth.IdentityFrom(r.Context()), galleryservice.UploadRequest{
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
		Title:    req.Title,
	})
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.UploadImageResponseDTO{ImageID: img.ID})
}

// Delete godoc
//
//	@Summary	Delete a gallery image
//	@Tags		Admin
//	@Produce	json
//	@Param		id	path	string	true	"Image ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.SuccessResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	404	{object}	utils.Response	"Image not found"
//	@Router		/api/admin/gallery/{id} [delete]
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.galleryService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuccessResponseDTO{Success: true})
}
