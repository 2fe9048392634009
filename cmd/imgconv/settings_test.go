package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/config"
)

func newFlags(t *testing.T, args ...string) *convFlags {
	t.Helper()
	cfg = config.Default()
	var f convFlags
	fs := pflag.NewFlagSet(`test`, pflag.ContinueOnError)
	f.register(fs)
	require.NoError(t, fs.Parse(args))
	return &f
}

func TestConvFlagsFallback(t *testing.T) {
	f := newFlags(t)
	flt, err := f.Filter()
	require.NoError(t, err)
	assert.Equal(t, convert.Lanczos3, flt)

	format, err := f.Format(``)
	require.NoError(t, err)
	assert.Equal(t, convert.ICO, format)

	format, err = f.Format(`out.webp`)
	require.NoError(t, err)
	assert.Equal(t, convert.WebP, format)

	rsz, err := f.Resizer()
	require.NoError(t, err)
	assert.Equal(t, convert.DefaultResizerName, rsz.Name())
	assert.True(t, f.KeepAspect())
}

func TestConvFlagsOverride(t *testing.T) {
	f := newFlags(t, `-f`, `catmull-rom`, `-F`, `jpg`, `--quality`, `55`, `--lossless`, `--keep-aspect=false`, `-W`, `64`)
	flt, err := f.Filter()
	require.NoError(t, err)
	assert.Equal(t, convert.CatmullRom, flt)

	format, err := f.Format(`out.png`)
	require.NoError(t, err)
	assert.Equal(t, convert.JPEG, format)
	assert.False(t, f.KeepAspect())

	opts, err := f.EncodeOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, 55, opts.JPEGQuality)
	assert.Equal(t, float32(55), opts.WebPQuality)
	assert.True(t, opts.WebPLossless)

	w, h, err := f.Size()
	require.NoError(t, err)
	assert.Equal(t, 64, w)
	assert.Zero(t, h)
}

func TestConvFlagsErrors(t *testing.T) {
	f := newFlags(t, `-r`, `nonexistent`, `--quality`, `101`)
	_, err := f.Resizer()
	assert.Error(t, err)
	_, err = f.EncodeOptions(nil)
	assert.Error(t, err)

	var flt convFlags
	fs := pflag.NewFlagSet(`test`, pflag.ContinueOnError)
	flt.register(fs)
	assert.Error(t, fs.Parse([]string{`--filter`, `sharpest`}))
}

func TestFilterMatrix(t *testing.T) {
	m := filterMatrix()
	for _, f := range convert.Filters() {
		assert.Contains(t, m, f.Name())
	}
	for _, rsz := range convert.Resizers() {
		assert.Contains(t, m, rsz.Name())
	}
	assert.True(t, strings.HasSuffix(m, "\n"))
}

func TestConvertUppercaseExtension(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, `in.png`)
	f, err := os.Create(input)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 40, 20))))
	require.NoError(t, f.Close())

	convertFlags = *newFlags(t, `-W`, `20`)
	var out bytes.Buffer
	convertCmd.SetOut(&out)
	output := filepath.Join(dir, `out.JPG`)
	require.NoError(t, convertFunc(convertCmd, []string{input, output})())

	_, err = os.Stat(output + `.jpg`)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), output+`.jpg`+"\t20x10"))
	assert.Contains(t, convertCmd.Long, `out.JPG is written as out.JPG.jpg`)
	assert.Contains(t, convertCmd.Long, `16, 24, 32, 48, 64, 72,`)
}
