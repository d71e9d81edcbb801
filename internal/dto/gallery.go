package dto

import "github.com/GlebRadaev/charity/internal/domain"

type UploadImageRequestDTO struct {
	ImageURL string `json:"imageUrl" example:"https://cdn.example.com/iftar.jpg"`
	Caption  string `json:"caption" example:"Iftar night"`
	Title    string `json:"title" example:"Ramadan 2026"`
}

type UploadImageResponseDTO struct {
	ImageID string `json:"imageId"`
}

type GalleryImageDTO struct {
	ID        string `json:"id"`
	ImageURL  string `json:"imageUrl"`
	Caption   string `json:"caption"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
}

type GalleryResponseDTO struct {
	Images []GalleryImageDTO `json:"images"`
}

func NewGalleryResponseDTO(images []domain.GalleryImage) GalleryResponseDTO {
	resp := GalleryResponseDTO{Images: make([]GalleryImageDTO, 0, len(images))}
	for _, img := range images {
		resp.Images = append(resp.Images, GalleryImageDTO{
			ID:        img.ID,
			ImageURL:  img.ImageURL,
			Caption:   img.Caption,
			Title:     img.Title,
			CreatedAt: formatTime(img.CreatedAt),
		})
	}
	return resp
}
