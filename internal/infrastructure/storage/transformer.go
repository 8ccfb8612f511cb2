package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"

	"github.com/pillowcase/pillowcase/internal/domain"
)

const DefaultMaxPixels = 178956970

// Transformer implements the image capability interface on top of
// disintegration/imaging. Importing imaging registers the jpeg, png, gif,
// bmp and tiff decoders.
type Transformer struct {
	maxPixels int64
}

func NewTransformer(maxPixels int64) *Transformer {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Transformer{maxPixels: maxPixels}
}

func (t *Transformer) Decode(r io.Reader) (image.Image, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("reading image: %w", err)
	}

	// DecodeConfig reads only the header, so oversized payloads are
	// rejected before any pixel allocation.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", domain.ErrUnsupportedFormat
	}
	if int64(cfg.Width)*int64(cfg.Height) > t.maxPixels {
		return nil, "", domain.ErrImageTooLarge
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", domain.ErrUnsupportedFormat
	}
	return img, format, nil
}

// Resize stretches to exactly width x height, or bounds the image by
// width x height preserving the aspect ratio when keepAspect is set.
func (t *Transformer) Resize(img image.Image, width, height int, keepAspect bool) image.Image {
	if keepAspect {
		return imaging.Fit(img, width, height, imaging.Lanczos)
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Rotate turns the image clockwise by degrees. Negative and >360 values are
// normalized; multiples of 90 use exact transposes, anything else is
// interpolated over a transparent background.
func (t *Transformer) Rotate(img image.Image, degrees float64) image.Image {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}

	// imaging rotates counterclockwise.
	switch d {
	case 0:
		return imaging.Clone(img)
	case 90:
		return imaging.Rotate270(img)
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate90(img)
	}
	return imaging.Rotate(img, 360-d, color.NRGBA{})
}

// Encode always writes PNG, the canonical stored format.
func (t *Transformer) Encode(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
