// Package rdefault registers the "default" resizer, which picks a backend
// per filter and falls back to imaging when the preferred one fails.
package rdefault

import (
	"image"
	"runtime"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
	"github.com/srlehn/imgconv/resize/imaging"
	"github.com/srlehn/imgconv/resize/rez"
	"github.com/srlehn/imgconv/resize/xdraw"
)

func init() { convert.RegisterResizer(&Resizer{}) }

type Resizer struct{}

var _ convert.Resizer = (*Resizer)(nil)

var (
	fallback convert.Resizer = &imaging.Resizer{}
	nearest                  = xdraw.New()
	simd     convert.Resizer = &rez.Resizer{}
)

func (r *Resizer) Name() string { return convert.DefaultResizerName }

func (r *Resizer) Supports(f convert.Filter) bool { return fallback.Supports(f) }

// minSIMDSide is the smallest source or target side rez is used for.
const minSIMDSide = 16

// Backend returns the resizer used for scaling from src to dst size with f.
func (r *Resizer) Backend(f convert.Filter, src, dst image.Point) convert.Resizer {
	switch {
	case f == convert.Nearest:
		return nearest
	case runtime.GOARCH == `amd64` && simd.Supports(f) &&
		min(src.X, src.Y, dst.X, dst.Y) >= minSIMDSide:
		// use SIMD assembly if possible
		return simd
	default:
		return fallback
	}
}

func (r *Resizer) Resize(img image.Image, size image.Point, f convert.Filter) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	backend := r.Backend(f, img.Bounds().Size(), size)
	imgRet, err := backend.Resize(img, size, f)
	if err == nil && imgRet != nil && imgRet.Bounds().Size() == size {
		return imgRet, nil
	}
	if backend == fallback {
		if err == nil {
			err = errors.New(`imaging returned a wrong size`)
		}
		return nil, err
	}
	return fallback.Resize(img, size, f)
}
