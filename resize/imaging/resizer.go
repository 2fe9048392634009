// Package imaging resamples with github.com/disintegration/imaging, which
// implements all filters and spreads the work over all CPUs.
package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
	"github.com/srlehn/imgconv/resize/internal/kernel"
)

func init() { convert.RegisterResizer(&Resizer{}) }

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct{}

var _ convert.Resizer = (*Resizer)(nil)

var filters = map[convert.Filter]imaging.ResampleFilter{
	convert.Nearest:    imaging.NearestNeighbor,
	convert.Bilinear:   imaging.Linear,
	convert.Hamming:    kernel.Hamming,
	convert.CatmullRom: imaging.CatmullRom,
	convert.Mitchell:   imaging.MitchellNetravali,
	convert.Gaussian:   imaging.Gaussian,
	convert.Lanczos3:   imaging.Lanczos,
}

func (r *Resizer) Name() string { return `imaging` }

func (r *Resizer) Supports(f convert.Filter) bool {
	_, ok := filters[f]
	return ok
}

func (r *Resizer) Resize(img image.Image, size image.Point, f convert.Filter) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	flt, ok := filters[f]
	if !ok {
		return nil, errors.WrapPrefix(errors.ErrUnsupported, `imaging: filter `+f.String(), 0)
	}
	return imaging.Resize(img, size.X, size.Y, flt), nil
}
