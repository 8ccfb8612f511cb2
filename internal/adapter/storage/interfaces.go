package storage

import (
	"context"
	"image"
	"io"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// StoredFile is one entry of the image directory listing.
type StoredFile struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// ImageStore persists images under flat filenames in the image directory.
type ImageStore interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
	Open(ctx context.Context, filename string) ([]byte, error)
	Exists(ctx context.Context, filename string) (bool, error)
	List(ctx context.Context) ([]StoredFile, error)
	Delete(ctx context.Context, filename string) error
}

// ImageTransformer wraps the underlying image library behind the four
// capabilities the service needs, so the library can be swapped without
// touching handlers or usecases.
type ImageTransformer interface {
	Decode(r io.Reader) (image.Image, string, error)
	Resize(img image.Image, width, height int, keepAspect bool) image.Image
	Rotate(img image.Image, degrees float64) image.Image
	Encode(w io.Writer, img image.Image) error
}

// ImageArchive mirrors stored images to a secondary location, best effort.
type ImageArchive interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	GetURL(key string) string
	Delete(ctx context.Context, key string) error
}
