// Package rez resamples with github.com/bamiaux/rez, which has SIMD
// implementations on amd64.
package rez

import (
	"fmt"
	"image"

	"github.com/bamiaux/rez"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

func init() { convert.RegisterResizer(&Resizer{}) }

// Resizer uses "github.com/bamiaux/rez"
type Resizer struct{}

var _ convert.Resizer = (*Resizer)(nil)

func (r *Resizer) Name() string { return `rez` }

func filterFor(f convert.Filter) rez.Filter {
	switch f {
	case convert.Bilinear:
		return rez.NewBilinearFilter()
	case convert.CatmullRom:
		return rez.NewBicubicFilter()
	case convert.Lanczos3:
		return rez.NewLanczosFilter(3)
	}
	return nil
}

func (r *Resizer) Supports(f convert.Filter) bool { return filterFor(f) != nil }

func (r *Resizer) Resize(img image.Image, size image.Point, f convert.Filter) (_ image.Image, err error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	flt := filterFor(f)
	if flt == nil {
		return nil, errors.WrapPrefix(errors.ErrUnsupported, `rez: filter `+f.String(), 0)
	}
	// rez only converts between images of the same type
	src, ok := img.(*image.NRGBA)
	if !ok {
		src = convert.BufferFromImage(img).Image()
	}
	defer func() {
		// rez panics on geometries its kernels can't handle
		if r := recover(); r != nil {
			err = errors.New(fmt.Sprintf(`rez: %v`, r))
		}
	}()
	m := image.NewNRGBA(image.Rectangle{Max: size})
	if err := rez.Convert(m, src, flt); err != nil {
		return nil, errors.New(err)
	}
	return m, nil
}
