package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
	"github.com/srlehn/imgconv/resize/internal/kernel"
)

func init() { convert.RegisterResizer(&Resizer{}) }

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct{}

var _ convert.Resizer = (*Resizer)(nil)

var hamming = transform.ResampleFilter{
	Support: kernel.Hamming.Support,
	Fn:      kernel.Hamming.Kernel,
}

var resampleFilters = map[convert.Filter]transform.ResampleFilter{
	convert.Nearest:    transform.NearestNeighbor,
	convert.Bilinear:   transform.Linear,
	convert.Hamming:    hamming,
	convert.CatmullRom: transform.CatmullRom,
	convert.Mitchell:   transform.MitchellNetravali,
	convert.Gaussian:   transform.Gaussian,
	convert.Lanczos3:   transform.Lanczos,
}

func (r *Resizer) Name() string { return `bild` }

func (r *Resizer) Supports(f convert.Filter) bool {
	_, ok := resampleFilters[f]
	return ok
}

func (r *Resizer) Resize(img image.Image, size image.Point, f convert.Filter) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	rf, ok := resampleFilters[f]
	if !ok {
		return nil, errors.WrapPrefix(errors.ErrUnsupported, `bild: filter `+f.String(), 0)
	}
	return transform.Resize(img, size.X, size.Y, rf), nil
}
