package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/pillowcase/pillowcase/internal/domain/entity"
	"github.com/pillowcase/pillowcase/internal/pkg/pagination"
	"github.com/pillowcase/pillowcase/internal/usecase/images"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type ImageService interface {
	Upload(ctx context.Context, input images.UploadInput) (*entity.Image, error)
	Fetch(ctx context.Context, id uuid.UUID) ([]byte, error)
	List(ctx context.Context, params pagination.Params) ([]entity.Image, *pagination.Info, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ResizeStored(ctx context.Context, id uuid.UUID, width, height int, lockAspectRatio bool) ([]byte, error)
	RotateStored(ctx context.Context, id uuid.UUID, degrees int, direction string) ([]byte, error)
}

type TransformService interface {
	Resize(ctx context.Context, input images.ResizeInput) (*entity.Image, error)
	Rotate(ctx context.Context, input images.RotateInput) (*entity.Image, error)
}
