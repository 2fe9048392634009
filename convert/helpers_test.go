package convert

import (
	"image"
	"image/color"
	"sync/atomic"

	"github.com/srlehn/imgconv/internal/errors"
)

// fillResizer paints the target with a single color and counts its calls.
type fillResizer struct {
	calls    atomic.Int32
	fail     bool
	wrongDim bool
	only     []Filter
}

func (r *fillResizer) Name() string { return `fill` }

func (r *fillResizer) Supports(f Filter) bool {
	if len(r.only) == 0 {
		return f.Valid()
	}
	for _, o := range r.only {
		if o == f {
			return true
		}
	}
	return false
}

func (r *fillResizer) Resize(img image.Image, size image.Point, f Filter) (image.Image, error) {
	r.calls.Add(1)
	if r.fail {
		return nil, errors.New(`backend failure`)
	}
	if r.wrongDim {
		size = size.Add(image.Pt(1, 0))
	}
	m := image.NewNRGBA(image.Rectangle{Max: size})
	c := color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	return m, nil
}

func testBuffer(w, h int) *Buffer {
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = byte(i)
	}
	return &Buffer{Width: w, Height: h, Pix: pix, Format: RGBA8}
}
