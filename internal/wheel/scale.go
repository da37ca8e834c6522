package wheel

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/colormine/internal/colour"
)

// MinSize is the smallest wheel FitSize will return.
const MinSize = 16

// RenderScaled renders the wheel at scale times the requested size and
// downsamples it, which gives an anti-aliased rim on high-density displays.
// The disc keeps the same logical radius as Render(size, mode).
func RenderScaled(size int, mode colour.CenterMode, scale int) *image.RGBA {
	if scale <= 1 || size <= 0 {
		return Render(size, mode)
	}

	hi := RenderDense(size, mode, scale)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), hi, hi.Bounds(), draw.Src, nil)
	return dst
}

// RenderDense renders a wheel of logical side size at scale device pixels per
// logical pixel, without downsampling. The buffer is size*scale pixels square
// and is meant to be displayed at size logical units.
func RenderDense(size int, mode colour.CenterMode, scale int) *image.RGBA {
	if scale <= 1 || size <= 0 {
		return Render(size, mode)
	}
	return renderDisc(size*scale, Radius(size)*float64(scale), mode)
}

// FitSize picks the wheel side for the available layout: the container width,
// bounded by the viewport height minus reserve, and never below MinSize.
func FitSize(availableWidth, viewportHeight, reserve int) int {
	size := min(availableWidth, viewportHeight-reserve)
	if size < MinSize {
		return MinSize
	}
	return size
}
