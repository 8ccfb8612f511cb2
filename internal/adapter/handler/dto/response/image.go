package response

import (
	"time"

	"github.com/pillowcase/pillowcase/internal/domain/entity"
	"github.com/pillowcase/pillowcase/internal/pkg/pagination"
)

type ImageResponse struct {
	ImageID    string    `json:"image_id"`
	Filename   string    `json:"filename"`
	Path       string    `json:"path,omitempty"`
	MimeType   string    `json:"mime_type"`
	SizeBytes  int64     `json:"size_bytes"`
	Width      int       `json:"width,omitempty"`
	Height     int       `json:"height,omitempty"`
	ArchiveURL string    `json:"archive_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ImageFromEntity(img *entity.Image) ImageResponse {
	return ImageResponse{
		ImageID:    img.ID.String(),
		Filename:   img.Filename,
		Path:       img.Path,
		MimeType:   img.MimeType,
		SizeBytes:  img.Size,
		Width:      img.Width,
		Height:     img.Height,
		ArchiveURL: img.ArchiveURL,
		CreatedAt:  img.CreatedAt,
	}
}

type TransformResponse struct {
	Image ImageResponse `json:"image"`
	URL   string        `json:"url"`
}

func TransformToResponse(img *entity.Image) TransformResponse {
	return TransformResponse{
		Image: ImageFromEntity(img),
		URL:   "/api/v1/images/" + img.ID.String(),
	}
}

type ListImagesResponse struct {
	Images     []ImageResponse  `json:"images"`
	Pagination *pagination.Info `json:"pagination"`
}

func ListToResponse(imgs []entity.Image, info *pagination.Info) ListImagesResponse {
	out := make([]ImageResponse, 0, len(imgs))
	for i := range imgs {
		out = append(out, ImageFromEntity(&imgs[i]))
	}
	return ListImagesResponse{
		Images:     out,
		Pagination: info,
	}
}
