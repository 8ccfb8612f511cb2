package entity

import (
	"time"

	"github.com/google/uuid"
)

// Image describes one file stored in the image directory. Stored images are
// always PNG, so Filename is ID + ".png".
type Image struct {
	ID         uuid.UUID
	Filename   string
	Path       string
	MimeType   string
	Size       int64
	Width      int
	Height     int
	ArchiveURL string
	CreatedAt  time.Time
}

func NewImage(id uuid.UUID, filename, path string, size int64, width, height int) *Image {
	return &Image{
		ID:        id,
		Filename:  filename,
		Path:      path,
		MimeType:  "image/png",
		Size:      size,
		Width:     width,
		Height:    height,
		CreatedAt: time.Now().UTC(),
	}
}
