package convert

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	interr "github.com/srlehn/imgconv/internal/errors"
)

func TestResample(t *testing.T) {
	rsz := &fillResizer{}
	src := testBuffer(8, 4)

	out, err := Resample(rsz, src, image.Pt(4, 2), Lanczos3)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, image.Pt(4, 2), out.Size())
	assert.Equal(t, RGBA8, out.Format)
	assert.Equal(t, []byte{0x10, 0x20, 0x30, 0xff}, out.Pix[:4])
	assert.Equal(t, int32(1), rsz.calls.Load())
}

func TestResampleSameSizeCopies(t *testing.T) {
	rsz := &fillResizer{}
	src := testBuffer(3, 3)
	out, err := Resample(rsz, src, image.Pt(3, 3), Gaussian)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, int32(0), rsz.calls.Load())
	assert.Equal(t, src.Pix, out.Pix)
	out.Pix[0] = 0xff
	assert.NotEqual(t, src.Pix[0], out.Pix[0])

	rgb := src.ToRGB8()
	out, err = Resample(rsz, rgb, image.Pt(3, 3), Gaussian)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, RGBA8, out.Format)
}

func TestResampleErrors(t *testing.T) {
	src := testBuffer(4, 4)
	tests := []struct {
		name string
		rsz  *fillResizer
		buf  *Buffer
		size image.Point
		f    Filter
		kind ErrorKind
	}{
		{`zero width`, &fillResizer{}, src, image.Pt(0, 3), Nearest, KindBuffer},
		{`invalid source`, &fillResizer{}, &Buffer{Width: 2, Height: 2}, image.Pt(1, 1), Nearest, KindBuffer},
		{`unsupported filter`, &fillResizer{only: []Filter{Nearest}}, src, image.Pt(2, 2), Hamming, KindResize},
		{`backend failure`, &fillResizer{fail: true}, src, image.Pt(2, 2), Nearest, KindResize},
		{`wrong result size`, &fillResizer{wrongDim: true}, src, image.Pt(2, 2), Nearest, KindResize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resample(tc.rsz, tc.buf, tc.size, tc.f)
			var re *ResizeError
			if assert.True(t, errors.As(err, &re)) {
				assert.Equal(t, tc.kind, re.Kind)
			}
		})
	}
	_, err := Resample(&fillResizer{only: []Filter{Nearest}}, src, image.Pt(2, 2), Mitchell)
	assert.True(t, errors.Is(err, interr.ErrUnsupported))
}

func TestResizerRegistry(t *testing.T) {
	rsz := &fillResizer{}
	RegisterResizer(rsz)
	assert.Equal(t, rsz, ResizerByName(`fill`))
	assert.Nil(t, ResizerByName(`does-not-exist`))
	assert.NotNil(t, DefaultResizer())
	found := false
	for _, r := range Resizers() {
		if r.Name() == `fill` {
			found = true
		}
	}
	assert.True(t, found)
}
