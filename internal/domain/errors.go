package domain

import "errors"

var (
	ErrImageNotFound     = errors.New("image not found")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrImageTooLarge     = errors.New("image exceeds pixel limit")
	ErrStorageFailure    = errors.New("storage failure")
)
