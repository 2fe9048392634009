package encall_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgconv/convert"
	_ "github.com/srlehn/imgconv/internal/encoder/encall"
	_ "github.com/srlehn/imgconv/resize/rdefault"
)

func checker(w, h int) *convert.Buffer {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 0x20, G: 0x40, B: 0x60, A: 0xff}
			if (x/4+y/4)%2 == 0 {
				c = color.NRGBA{R: 0xe0, G: 0xd0, B: 0xc0, A: 0xff}
			}
			m.SetNRGBA(x, y, c)
		}
	}
	return convert.BufferFromImage(m)
}

func TestEncodeAllFormats(t *testing.T) {
	src := checker(32, 24)
	for _, f := range convert.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			require.NotNil(t, convert.EncoderFor(f))
			var b bytes.Buffer
			require.NoError(t, convert.Encode(&b, src, f, nil))
			img, name, err := image.Decode(bytes.NewReader(b.Bytes()))
			require.NoError(t, err)
			if f == convert.ICO {
				// the largest frame of the ladder
				assert.Equal(t, `ico`, name)
				return
			}
			assert.Equal(t, f.String(), name)
			assert.Equal(t, image.Pt(32, 24), img.Bounds().Size())
		})
	}
}

func TestEncodeOptions(t *testing.T) {
	src := checker(64, 64)
	size := func(f convert.Format, opts *convert.EncodeOptions) int {
		var b bytes.Buffer
		require.NoError(t, convert.Encode(&b, src, f, opts))
		return b.Len()
	}
	lo := convert.DefaultEncodeOptions()
	lo.JPEGQuality = 5
	hi := convert.DefaultEncodeOptions()
	hi.JPEGQuality = 100
	assert.Less(t, size(convert.JPEG, lo), size(convert.JPEG, hi))

	none := convert.DefaultEncodeOptions()
	none.PNGCompression = convert.PNGNoCompression
	best := convert.DefaultEncodeOptions()
	best.PNGCompression = convert.PNGBestCompression
	assert.Less(t, size(convert.PNG, best), size(convert.PNG, none))

	lossless := convert.DefaultEncodeOptions()
	lossless.WebPLossless = true
	var b bytes.Buffer
	require.NoError(t, convert.Encode(&b, src, convert.WebP, lossless))
	img, _, err := image.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, convert.BufferFromImage(img).Pix, src.Pix, `lossless round trip`)
}

func TestEncodeInvalid(t *testing.T) {
	var b bytes.Buffer
	err := convert.Encode(&b, &convert.Buffer{Width: 3, Height: 3}, convert.PNG, nil)
	var se *convert.SaveError
	if assert.True(t, errors.As(err, &se)) {
		assert.Equal(t, convert.KindParameter, se.Kind)
	}
	err = convert.Encode(&b, checker(2, 2), convert.Format(77), nil)
	if assert.True(t, errors.As(err, &se)) {
		assert.Equal(t, convert.KindUnsupported, se.Kind)
	}
}

func TestFileWriter(t *testing.T) {
	dir := t.TempDir()
	wr := &convert.FileWriter{Options: convert.DefaultEncodeOptions()}
	path := filepath.Join(dir, `out.png`)
	require.NoError(t, wr.Save(path, checker(8, 8), convert.PNG))
	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, st.Size())

	err = wr.Save(filepath.Join(dir, `missing`, `out.png`), checker(8, 8), convert.PNG)
	kind, ok := convert.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, convert.KindIO, kind)
	_, err = os.Stat(filepath.Join(dir, `missing`))
	assert.True(t, os.IsNotExist(err))
}

func TestConverterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := convert.NewConverter()
	require.NoError(t, err)
	require.NoError(t, c.SetSource(checker(600, 300)))
	assert.Equal(t, image.Pt(256, 128), c.Settings().Size())

	out, err := c.Save(filepath.Join(dir, `icon`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, `icon.ico`), out)

	c.SetFormat(convert.PNG)
	c.SetWidth(100)
	out, err = c.Save(filepath.Join(dir, `small.png`))
	require.NoError(t, err)

	r := &convert.FileReader{}
	buf, err := r.Load(out)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(100, 50), buf.Size())
}
