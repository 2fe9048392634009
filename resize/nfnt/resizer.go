package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

func init() { convert.RegisterResizer(&Resizer{}) }

// Resizer uses "github.com/nfnt/resize"
type Resizer struct{}

var _ convert.Resizer = (*Resizer)(nil)

// nfnt has no Hamming and no Gaussian interpolation.
var interpolations = map[convert.Filter]resize.InterpolationFunction{
	convert.Nearest:    resize.NearestNeighbor,
	convert.Bilinear:   resize.Bilinear,
	convert.CatmullRom: resize.Bicubic,
	convert.Mitchell:   resize.MitchellNetravali,
	convert.Lanczos3:   resize.Lanczos3,
}

func (r *Resizer) Name() string { return `nfnt` }

func (r *Resizer) Supports(f convert.Filter) bool {
	_, ok := interpolations[f]
	return ok
}

func (r *Resizer) Resize(img image.Image, size image.Point, f convert.Filter) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	interp, ok := interpolations[f]
	if !ok {
		return nil, errors.WrapPrefix(errors.ErrUnsupported, `nfnt: filter `+f.String(), 0)
	}
	return resize.Resize(uint(size.X), uint(size.Y), img, interp), nil
}
