package preview

import (
	"bytes"
	"image"
	"io"

	"github.com/mattn/go-sixel"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

// Sixel writes buf as a sixel image, scaled down to fit maxSize if
// necessary. A zero maxSize keeps the size.
func Sixel(w io.Writer, buf *convert.Buffer, maxSize image.Point, rsz convert.Resizer) error {
	if w == nil || buf == nil {
		return errors.NilParam()
	}
	img := buf.Image()
	if maxSize.X > 0 && maxSize.Y > 0 && (buf.Width > maxSize.X || buf.Height > maxSize.Y) {
		scaled, err := convert.Resample(rsz, buf, Fit(buf.Size(), maxSize), convert.Lanczos3)
		if err != nil {
			return err
		}
		img = scaled.Image()
	}
	// https://vt100.net/docs/vt3xx-gp/chapter14.html
	var b bytes.Buffer
	enc := sixel.NewEncoder(&b)
	enc.Dither = true
	if err := enc.Encode(img); err != nil {
		return errors.New(err)
	}
	if _, err := b.WriteTo(w); err != nil {
		return errors.New(err)
	}
	return nil
}
