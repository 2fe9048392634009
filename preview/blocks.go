package preview

import (
	"image"
	"image/color"
	"strings"

	"github.com/muesli/termenv"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

// upper half block: the foreground paints the upper pixel, the background the lower one
const halfBlock = '▀'

// ascii ramp from dark to bright, used when no colors are available
const asciiRamp = ` .:-=+*#%@`

// Blocks renders images as colored half blocks, two pixels per cell.
// Lines are separated by newlines and no cursor movement is emitted, so the
// result can be embedded into other views.
type Blocks struct {
	Profile termenv.Profile
	// Resizer scales the image to the cell area, nil selects the default backend.
	Resizer convert.Resizer
	// CheckerSize is the side of the checkerboard squares in pixels shown
	// behind transparent areas. 0 means 4.
	CheckerSize int
}

// NewBlocks uses the color profile of the environment.
func NewBlocks() *Blocks {
	return &Blocks{Profile: termenv.EnvColorProfile()}
}

// PixelArea is the pixel size the renderer can show in cells.
func PixelArea(cells image.Point) image.Point { return image.Pt(cells.X, 2*cells.Y) }

// Render scales buf into cells keeping the aspect ratio and renders it.
func (r *Blocks) Render(buf *convert.Buffer, cells image.Point) (string, error) {
	if err := errors.NilReceiver(r); err != nil {
		return ``, err
	}
	if buf == nil {
		return ``, errors.NilParam()
	}
	if cells.X < 1 || cells.Y < 1 {
		return ``, errors.New(`no room for the preview`)
	}
	sz := Fit(buf.Size(), PixelArea(cells))
	scaled, err := convert.Resample(r.Resizer, buf, sz, convert.Nearest)
	if err != nil {
		return ``, err
	}
	return r.RenderImage(scaled.Image()), nil
}

// RenderImage renders img at its size, one cell per two rows of pixels.
func (r *Blocks) RenderImage(img *image.NRGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			upper := r.composite(img.NRGBAAt(x, y), x, y)
			lower := upper
			if y+1 < b.Max.Y {
				lower = r.composite(img.NRGBAAt(x, y+1), x, y+1)
			}
			r.writeCell(&sb, upper, lower)
		}
		if r.Profile != termenv.Ascii {
			sb.WriteString(termenv.CSI + termenv.ResetSeq + `m`)
		}
	}
	return sb.String()
}

func (r *Blocks) writeCell(sb *strings.Builder, upper, lower color.RGBA) {
	if r.Profile == termenv.Ascii {
		l := (luma(upper) + luma(lower)) / 2
		sb.WriteByte(asciiRamp[l*(len(asciiRamp)-1)/255])
		return
	}
	fg := r.Profile.FromColor(upper).Sequence(false)
	bg := r.Profile.FromColor(lower).Sequence(true)
	sb.WriteString(termenv.CSI + fg + `;` + bg + `m`)
	sb.WriteRune(halfBlock)
}

// composite blends c over the checkerboard square at x, y.
func (r *Blocks) composite(c color.NRGBA, x, y int) color.RGBA {
	if c.A == 0xff {
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	sq := r.CheckerSize
	if sq < 1 {
		sq = 4
	}
	var bg uint32 = 0x66
	if (x/sq+y/sq)%2 == 0 {
		bg = 0x99
	}
	a := uint32(c.A)
	blend := func(v uint8) uint8 { return uint8((uint32(v)*a + bg*(0xff-a) + 0x7f) / 0xff) }
	return color.RGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: 0xff}
}

func luma(c color.RGBA) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
