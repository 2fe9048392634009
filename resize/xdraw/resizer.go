// Package xdraw resamples with golang.org/x/image/draw. The filters missing
// from x/image/draw are supplied as custom kernels.
package xdraw

import (
	"image"
	"runtime"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
	"github.com/srlehn/imgconv/resize/internal/kernel"
)

func init() { convert.RegisterResizer(New()) }

// resizer uses "golang.org/x/image/draw"
type resizer struct{}

var _ convert.Resizer = (*resizer)(nil)

// New returns the x/image/draw backend.
func New() convert.Resizer { return &resizer{} }

var (
	hamming  = &draw.Kernel{Support: kernel.Hamming.Support, At: kernel.Hamming.Kernel}
	mitchell = &draw.Kernel{Support: kernel.Mitchell.Support, At: kernel.Mitchell.Kernel}
	gaussian = &draw.Kernel{Support: kernel.Gaussian.Support, At: kernel.Gaussian.Kernel}
	lanczos3 = &draw.Kernel{Support: kernel.Lanczos3.Support, At: kernel.Lanczos3.Kernel}
)

func scalerFor(f convert.Filter) draw.Scaler {
	switch f {
	case convert.Nearest:
		return draw.NearestNeighbor
	case convert.Bilinear:
		return draw.BiLinear
	case convert.CatmullRom:
		return draw.CatmullRom
	case convert.Hamming:
		return hamming
	case convert.Mitchell:
		return mitchell
	case convert.Gaussian:
		return gaussian
	case convert.Lanczos3:
		return lanczos3
	}
	return nil
}

func (r *resizer) Name() string { return `xdraw` }

func (r *resizer) Supports(f convert.Filter) bool { return scalerFor(f) != nil }

// Resize scales img to size. Nearest-Neighbor is drawn in horizontal bands in
// parallel, the kernel scalers run their two passes once.
func (r *resizer) Resize(img image.Image, size image.Point, f convert.Filter) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	scaler := scalerFor(f)
	if scaler == nil {
		return nil, errors.WrapPrefix(errors.ErrUnsupported, `xdraw: filter `+f.String(), 0)
	}
	dst := image.NewRGBA(image.Rectangle{Max: size})
	if f != convert.Nearest {
		scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		return dst, nil
	}
	bands := min(runtime.GOMAXPROCS(0), size.Y)
	var g errgroup.Group
	for i := 0; i < bands; i++ {
		band := image.Rect(0, size.Y*i/bands, size.X, size.Y*(i+1)/bands)
		g.Go(func() error {
			// the sub image clips drawing to the band, dr keeps the full mapping
			sub := dst.SubImage(band).(*image.RGBA)
			scaler.Scale(sub, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dst, nil
}
