package images

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pillowcase/pillowcase/internal/adapter/storage"
	"github.com/pillowcase/pillowcase/internal/domain"
	"github.com/pillowcase/pillowcase/internal/domain/entity"
	"github.com/pillowcase/pillowcase/internal/pkg/pagination"
)

const storedExt = ".png"

type Service struct {
	store       storage.ImageStore
	transformer storage.ImageTransformer
	archive     storage.ImageArchive
	logger      *zap.Logger
}

// NewService wires the image usecases. archive may be nil, in which case
// stored images live on disk only.
func NewService(
	store storage.ImageStore,
	transformer storage.ImageTransformer,
	archive storage.ImageArchive,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:       store,
		transformer: transformer,
		archive:     archive,
		logger:      logger,
	}
}

type UploadInput struct {
	File        io.Reader
	Filename    string
	ContentType string
	Size        int64
}

type ResizeInput struct {
	File            io.Reader
	Width           int
	Height          int
	LockAspectRatio bool
}

type RotateInput struct {
	File      io.Reader
	Degrees   float64
	Direction string
}

// Upload decodes the payload and stores it as a PNG under a fresh uuid.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*entity.Image, error) {
	img, _, err := s.transformer.Decode(input.File)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, img)
}

// Fetch returns the stored PNG bytes for an image id.
func (s *Service) Fetch(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return s.store.Open(ctx, filenameFor(id))
}

// List pages through the image directory, newest first.
func (s *Service) List(ctx context.Context, params pagination.Params) ([]entity.Image, *pagination.Info, error) {
	files, err := s.store.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	imgs := make([]entity.Image, 0, len(files))
	for _, f := range files {
		id, err := uuid.Parse(strings.TrimSuffix(f.Name, storedExt))
		if err != nil || !strings.HasSuffix(f.Name, storedExt) {
			continue
		}
		imgs = append(imgs, entity.Image{
			ID:        id,
			Filename:  f.Name,
			MimeType:  "image/png",
			Size:      f.Size,
			CreatedAt: f.ModTime,
		})
	}
	sort.Slice(imgs, func(i, j int) bool { return imgs[i].CreatedAt.After(imgs[j].CreatedAt) })

	info := pagination.NewInfo(params.Page, params.PerPage, len(imgs))
	start := params.Offset()
	if start > len(imgs) {
		start = len(imgs)
	}
	end := start + params.Limit()
	if end > len(imgs) {
		end = len(imgs)
	}
	return imgs[start:end], info, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	filename := filenameFor(id)
	if err := s.store.Delete(ctx, filename); err != nil {
		return err
	}
	if s.archive != nil {
		if err := s.archive.Delete(ctx, filename); err != nil {
			s.logger.Warn("deleting archived image", zap.String("filename", filename), zap.Error(err))
		}
	}
	return nil
}

// Resize transforms an uploaded payload and persists the result.
func (s *Service) Resize(ctx context.Context, input ResizeInput) (*entity.Image, error) {
	if input.Width <= 0 || input.Height <= 0 {
		return nil, fmt.Errorf("%w: width and height must be positive", domain.ErrInvalidParameter)
	}

	img, _, err := s.transformer.Decode(input.File)
	if err != nil {
		return nil, err
	}

	resized := s.transformer.Resize(img, input.Width, input.Height, input.LockAspectRatio)
	return s.persist(ctx, resized)
}

// Rotate transforms an uploaded payload and persists the result. Degrees may
// be any value; direction R (default) is clockwise, L counterclockwise.
func (s *Service) Rotate(ctx context.Context, input RotateInput) (*entity.Image, error) {
	degrees, err := signedDegrees(input.Degrees, input.Direction)
	if err != nil {
		return nil, err
	}

	img, _, err := s.transformer.Decode(input.File)
	if err != nil {
		return nil, err
	}

	rotated := s.transformer.Rotate(img, degrees)
	return s.persist(ctx, rotated)
}

// ResizeStored returns a resized copy of a stored image without persisting it.
func (s *Service) ResizeStored(ctx context.Context, id uuid.UUID, width, height int, lockAspectRatio bool) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width and height must be positive", domain.ErrInvalidParameter)
	}

	img, err := s.openStored(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.encode(s.transformer.Resize(img, width, height, lockAspectRatio))
}

// RotateStored returns a rotated copy of a stored image without persisting
// it. Rotations of stored images must be multiples of 90 degrees.
func (s *Service) RotateStored(ctx context.Context, id uuid.UUID, degrees int, direction string) ([]byte, error) {
	if degrees%90 != 0 {
		return nil, fmt.Errorf("%w: degrees must be a multiple of 90", domain.ErrInvalidParameter)
	}
	signed, err := signedDegrees(float64(degrees), direction)
	if err != nil {
		return nil, err
	}

	img, err := s.openStored(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.encode(s.transformer.Rotate(img, signed))
}

func (s *Service) openStored(ctx context.Context, id uuid.UUID) (image.Image, error) {
	data, err := s.store.Open(ctx, filenameFor(id))
	if err != nil {
		return nil, err
	}
	img, _, err := s.transformer.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.transformer.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Service) persist(ctx context.Context, img image.Image) (*entity.Image, error) {
	data, err := s.encode(img)
	if err != nil {
		return nil, err
	}

	id, filename, err := s.freshFilename(ctx)
	if err != nil {
		return nil, err
	}

	path, err := s.store.Save(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	ent := entity.NewImage(id, filename, path, int64(len(data)), bounds.Dx(), bounds.Dy())

	if s.archive != nil {
		if err := s.archive.Upload(ctx, filename, bytes.NewReader(data), ent.MimeType, ent.Size); err != nil {
			s.logger.Warn("archiving image", zap.String("filename", filename), zap.Error(err))
		} else {
			ent.ArchiveURL = s.archive.GetURL(filename)
		}
	}

	return ent, nil
}

// freshFilename re-rolls the uuid while a file with that name exists.
func (s *Service) freshFilename(ctx context.Context) (uuid.UUID, string, error) {
	for {
		id := uuid.New()
		filename := filenameFor(id)
		taken, err := s.store.Exists(ctx, filename)
		if err != nil {
			return uuid.Nil, "", err
		}
		if !taken {
			return id, filename, nil
		}
	}
}

func signedDegrees(degrees float64, direction string) (float64, error) {
	switch direction {
	case "", "R", "r":
		return degrees, nil
	case "L", "l":
		return -degrees, nil
	}
	return 0, fmt.Errorf("%w: direction must be R or L", domain.ErrInvalidParameter)
}

func filenameFor(id uuid.UUID) string {
	return id.String() + storedExt
}
