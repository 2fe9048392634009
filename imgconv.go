// Package imgconv bundles all resize backends and encoders behind a few
// convenience functions.
package imgconv

import (
	"image"

	"github.com/srlehn/imgconv/convert"
	_ "github.com/srlehn/imgconv/internal/encoder/encall"
	_ "github.com/srlehn/imgconv/resize/all"
	"github.com/srlehn/imgconv/resize/rdefault"
)

var (
	// chosen defaults
	resizer convert.Resizer = &rdefault.Resizer{}

	DefaultConfig = convert.Options{
		convert.SetResizer(resizer),
	}
)

// NewConverter returns a conversion session using the default resizer
// unless opts select another one.
func NewConverter(opts ...convert.Option) (*convert.Converter, error) {
	return convert.NewConverter(append(convert.Options{DefaultConfig}, opts...)...)
}

// ConvertFile scales the image at src to size with filter f and writes it to
// dst. The output format is taken from the extension of dst, ICO if there is
// none. A zero side of size keeps the aspect ratio, a zero size keeps the
// source size. The final path is returned.
func ConvertFile(src, dst string, size image.Point, f convert.Filter) (string, error) {
	format, err := convert.FormatFromPath(dst)
	if err != nil {
		format = convert.DefaultFormat
	}
	conv, err := NewConverter(convert.SetFormat(format), convert.SetFilter(f))
	if err != nil {
		return ``, err
	}
	buf, err := (&convert.FileReader{AutoOrient: true}).Load(src)
	if err != nil {
		return ``, err
	}
	if err := conv.SetSource(buf); err != nil {
		return ``, err
	}
	conv.SetTargetSize(size.X, size.Y)
	return conv.Save(dst)
}

// Resize scales img with the default resizer.
func Resize(img image.Image, size image.Point, f convert.Filter) (image.Image, error) {
	out, err := convert.Resample(resizer, convert.BufferFromImage(img), size, f)
	if err != nil {
		return nil, err
	}
	return out.Image(), nil
}
