package sampler

import (
	"context"
	"fmt"
	"image"

	"github.com/jmylchreest/colormine/internal/colour"
	imageloader "github.com/jmylchreest/colormine/internal/image"
)

// ImagePoint samples the pixel at (X, Y) of an image file.
type ImagePoint struct {
	Path   string
	X, Y   int
	Loader imageloader.Loader
}

// Sample implements Sampler.
func (p ImagePoint) Sample(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrCancelled
	}

	loader := p.Loader
	if loader == nil {
		loader = imageloader.NewFileLoader()
	}

	img, err := loader.Load(p.Path)
	if err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	return SampleImage(img, p.X, p.Y)
}

// SampleImage returns the colour of the pixel at (x, y) relative to the image
// origin.
func SampleImage(img image.Image, x, y int) (string, error) {
	b := img.Bounds()
	pt := image.Pt(b.Min.X+x, b.Min.Y+y)
	if !pt.In(b) {
		return "", fmt.Errorf("point (%d, %d) outside image bounds %dx%d", x, y, b.Dx(), b.Dy())
	}
	return colour.ToRGB(img.At(pt.X, pt.Y)).Hex(), nil
}
