package convert

import (
	"image"
	"strconv"

	"github.com/disintegration/imaging"
)

// PixelFormat is the memory layout of a Buffer.
type PixelFormat uint8

const (
	RGBA8 PixelFormat = iota // 4 bytes per pixel, straight alpha
	RGB8                     // 3 bytes per pixel
)

func (p PixelFormat) BytesPerPixel() int {
	switch p {
	case RGB8:
		return 3
	default:
		return 4
	}
}

func (p PixelFormat) String() string {
	switch p {
	case RGBA8:
		return `rgba8`
	case RGB8:
		return `rgb8`
	default:
		return `pixelformat(` + strconv.Itoa(int(p)) + `)`
	}
}

// Buffer is a tightly packed pixel buffer with rows stored top to bottom.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte
	Format PixelFormat
}

// NewBuffer validates that pix holds exactly width*height pixels of pf.
func NewBuffer(width, height int, pix []byte, pf PixelFormat) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, newResizeError(KindBuffer, `buffer side with length < 1: `+strconv.Itoa(width)+`x`+strconv.Itoa(height))
	}
	if pf != RGBA8 && pf != RGB8 {
		return nil, newResizeError(KindBuffer, `unknown pixel format `+pf.String())
	}
	if want := width * height * pf.BytesPerPixel(); len(pix) != want {
		return nil, newResizeError(KindBuffer, `buffer holds `+strconv.Itoa(len(pix))+` bytes, `+strconv.Itoa(want)+` expected`)
	}
	return &Buffer{Width: width, Height: height, Pix: pix, Format: pf}, nil
}

// Parts returns width, height, data and pixel format.
func (b *Buffer) Parts() (int, int, []byte, PixelFormat) {
	if b == nil {
		return 0, 0, nil, RGBA8
	}
	return b.Width, b.Height, b.Pix, b.Format
}

func (b *Buffer) Size() image.Point {
	if b == nil {
		return image.Point{}
	}
	return image.Pt(b.Width, b.Height)
}

func (b *Buffer) valid() bool {
	if b == nil || b.Width < 1 || b.Height < 1 {
		return false
	}
	return len(b.Pix) == b.Width*b.Height*b.Format.BytesPerPixel()
}

// Image returns an *image.NRGBA. RGBA8 buffers share their memory with the
// returned image, RGB8 buffers are expanded into a copy.
func (b *Buffer) Image() *image.NRGBA {
	if !b.valid() {
		return image.NewNRGBA(image.Rectangle{})
	}
	rect := image.Rect(0, 0, b.Width, b.Height)
	if b.Format == RGBA8 {
		return &image.NRGBA{Pix: b.Pix, Stride: 4 * b.Width, Rect: rect}
	}
	m := image.NewNRGBA(rect)
	for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+4 {
		m.Pix[j+0] = b.Pix[i+0]
		m.Pix[j+1] = b.Pix[i+1]
		m.Pix[j+2] = b.Pix[i+2]
		m.Pix[j+3] = 0xff
	}
	return m
}

// ToRGB8 drops the alpha channel.
func (b *Buffer) ToRGB8() *Buffer {
	if b == nil || b.Format == RGB8 {
		return b
	}
	pix := make([]byte, b.Width*b.Height*3)
	for i, j := 0, 0; i < len(b.Pix); i, j = i+4, j+3 {
		pix[j+0] = b.Pix[i+0]
		pix[j+1] = b.Pix[i+1]
		pix[j+2] = b.Pix[i+2]
	}
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix, Format: RGB8}
}

// Opaque reports whether no pixel is translucent.
func (b *Buffer) Opaque() bool {
	if b == nil || b.Format == RGB8 {
		return true
	}
	for i := 3; i < len(b.Pix); i += 4 {
		if b.Pix[i] != 0xff {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix, Format: b.Format}
}

// BufferFromImage converts img to an RGBA8 buffer.
func BufferFromImage(img image.Image) *Buffer {
	if img == nil {
		return nil
	}
	var m *image.NRGBA
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == 4*n.Rect.Dx() {
		m = n
	} else {
		// imaging.Clone converts to NRGBA in parallel
		m = imaging.Clone(img)
	}
	sz := m.Rect.Size()
	pix := m.Pix[:sz.X*sz.Y*4]
	if m == img {
		pix = append([]byte(nil), pix...)
	}
	return &Buffer{Width: sz.X, Height: sz.Y, Pix: pix, Format: RGBA8}
}
