package encico_test

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/encoder/encico"
	_ "github.com/srlehn/imgconv/resize/rdefault"
)

func source(w, h int) *convert.Buffer {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	return convert.BufferFromImage(m)
}

func TestFrameSize(t *testing.T) {
	assert.Equal(t, image.Pt(16, 16), encico.FrameSize(image.Pt(50, 50), 16))
	assert.Equal(t, image.Pt(256, 128), encico.FrameSize(image.Pt(1000, 500), 256))
	assert.Equal(t, image.Pt(10, 16), encico.FrameSize(image.Pt(300, 480), 16))
	// sides never drop to 0
	assert.Equal(t, image.Pt(16, 1), encico.FrameSize(image.Pt(1000, 10), 16))
}

func TestFrameFilter(t *testing.T) {
	assert.Equal(t, convert.Mitchell, encico.FrameFilter(image.Pt(32, 32), image.Pt(48, 48)))
	assert.Equal(t, convert.Lanczos3, encico.FrameFilter(image.Pt(32, 32), image.Pt(32, 32)))
	assert.Equal(t, convert.Lanczos3, encico.FrameFilter(image.Pt(100, 100), image.Pt(16, 16)))
}

type icoEntry struct {
	width, height byte
	planes, bpp   uint16
	size, offset  uint32
}

func parse(t *testing.T, data []byte) []icoEntry {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 6)
	le := binary.LittleEndian
	assert.Equal(t, uint16(0), le.Uint16(data[0:]))
	assert.Equal(t, uint16(1), le.Uint16(data[2:]))
	n := int(le.Uint16(data[4:]))
	entries := make([]icoEntry, n)
	for i := range entries {
		e := data[6+16*i:]
		entries[i] = icoEntry{
			width:  e[0],
			height: e[1],
			planes: le.Uint16(e[4:]),
			bpp:    le.Uint16(e[6:]),
			size:   le.Uint32(e[8:]),
			offset: le.Uint32(e[12:]),
		}
	}
	return entries
}

func TestEncodeLadder(t *testing.T) {
	var b bytes.Buffer
	src := source(200, 100)
	err := (&encico.IcoEncoder{}).Encode(&b, src, convert.DefaultEncodeOptions())
	require.NoError(t, err)

	data := b.Bytes()
	entries := parse(t, data)
	require.Len(t, entries, len(encico.FrameSizes))
	for i, e := range entries {
		want := encico.FrameSize(src.Size(), encico.FrameSizes[i])
		assert.Equal(t, uint16(1), e.planes)
		assert.Equal(t, uint16(32), e.bpp)
		require.LessOrEqual(t, int(e.offset+e.size), len(data))
		frame, err := png.Decode(bytes.NewReader(data[e.offset : e.offset+e.size]))
		require.NoError(t, err)
		assert.Equal(t, want, frame.Bounds().Size())
		assert.Equal(t, byte(want.X%256), e.width)
		assert.Equal(t, byte(want.Y%256), e.height)
	}
	last := entries[len(entries)-1]
	assert.Equal(t, byte(0), last.width, `256 is stored as 0`)
	assert.Equal(t, byte(128), last.height)
}

func TestEncodeSingle(t *testing.T) {
	opts := convert.DefaultEncodeOptions()
	opts.ICOSingle = true
	var b bytes.Buffer
	require.NoError(t, (&encico.IcoEncoder{}).Encode(&b, source(48, 48), opts))
	img, format, err := image.Decode(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, `ico`, format)
	assert.Equal(t, image.Pt(48, 48), img.Bounds().Size())

	b.Reset()
	assert.Error(t, (&encico.IcoEncoder{}).Encode(&b, source(300, 20), opts))
}
