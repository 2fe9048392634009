// Package resizetest checks resize backends against common expectations.
package resizetest

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgconv/convert"
)

// Solid returns an opaque image filled with c.
func Solid(w, h int, c color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(m.Pix); i += 4 {
		m.Pix[i+0] = c.R
		m.Pix[i+1] = c.G
		m.Pix[i+2] = c.B
		m.Pix[i+3] = c.A
	}
	return m
}

// Gradient returns an opaque image with a horizontal red and a vertical green ramp.
func Gradient(w, h int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 255 / max(w-1, 1)), G: uint8(y * 255 / max(h-1, 1)), B: 0x40, A: 0xff})
		}
	}
	return m
}

// Sizes are the default targets for a 40x30 source.
var Sizes = []image.Point{{20, 15}, {80, 60}, {1, 1}, {33, 7}}

// Run resizes down and up with every filter in supported and asserts the
// result size and that a solid color survives. All other filters must be
// reported as unsupported.
func Run(t *testing.T, rsz convert.Resizer, name string, supported ...convert.Filter) {
	t.Helper()
	RunSizes(t, rsz, name, Sizes, supported...)
}

func RunSizes(t *testing.T, rsz convert.Resizer, name string, sizes []image.Point, supported ...convert.Filter) {
	t.Helper()
	require.NotNil(t, rsz)
	assert.Equal(t, name, rsz.Name())
	assert.Same(t, rsz, convert.ResizerByName(name), `backend registers itself`)

	isSupported := make(map[convert.Filter]bool)
	for _, f := range supported {
		isSupported[f] = true
	}
	for _, f := range convert.Filters() {
		assert.Equal(t, isSupported[f], rsz.Supports(f), f.String())
	}

	col := color.NRGBA{R: 0xc0, G: 0x60, B: 0x20, A: 0xff}
	solid := Solid(40, 30, col)
	grad := Gradient(40, 30)
	for _, f := range supported {
		for _, size := range sizes {
			t.Run(f.Name()+`/`+sizeName(size), func(t *testing.T) {
				out, err := rsz.Resize(grad, size, f)
				require.NoError(t, err)
				assert.Equal(t, size, out.Bounds().Size())

				out, err = rsz.Resize(solid, size, f)
				require.NoError(t, err)
				buf := convert.BufferFromImage(out)
				AssertNear(t, col, buf, 3)
			})
		}
	}
}

// AssertNear asserts that every pixel of buf is within tol of c.
func AssertNear(t *testing.T, c color.NRGBA, buf *convert.Buffer, tol int) {
	t.Helper()
	want := [4]uint8{c.R, c.G, c.B, c.A}
	for i := 0; i < len(buf.Pix); i++ {
		d := int(buf.Pix[i]) - int(want[i%4])
		if d < -tol || d > tol {
			t.Fatalf(`pixel %d channel %d: got %d, want %d±%d`, i/4, i%4, buf.Pix[i], want[i%4], tol)
		}
	}
}

func sizeName(p image.Point) string { return image.Rectangle{Max: p}.String() }
