package gift

import (
	"image"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
	"github.com/srlehn/imgconv/resize/internal/kernel"
)

func init() { convert.RegisterResizer(&Resizer{}) }

// Resizer uses "github.com/disintegration/gift"
type Resizer struct{}

var _ convert.Resizer = (*Resizer)(nil)

// resampling adapts an imaging filter to gift.Resampling.
type resampling struct{ f imaging.ResampleFilter }

func (r resampling) Support() float32         { return float32(r.f.Support) }
func (r resampling) Kernel(x float32) float32 { return float32(r.f.Kernel(float64(x))) }

var resamplings = map[convert.Filter]gift.Resampling{
	convert.Nearest:    gift.NearestNeighborResampling,
	convert.Bilinear:   gift.LinearResampling,
	convert.CatmullRom: gift.CubicResampling,
	convert.Lanczos3:   gift.LanczosResampling,
	convert.Hamming:    resampling{kernel.Hamming},
	convert.Mitchell:   resampling{kernel.Mitchell},
	convert.Gaussian:   resampling{kernel.Gaussian},
}

func (r *Resizer) Name() string { return `gift` }

func (r *Resizer) Supports(f convert.Filter) bool {
	_, ok := resamplings[f]
	return ok
}

func (r *Resizer) Resize(img image.Image, size image.Point, f convert.Filter) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	rs, ok := resamplings[f]
	if !ok {
		return nil, errors.WrapPrefix(errors.ErrUnsupported, `gift: filter `+f.String(), 0)
	}
	m := image.NewNRGBA(image.Rectangle{Max: size})
	gift.New(gift.Resize(size.X, size.Y, rs)).Draw(m, img)
	return m, nil
}
