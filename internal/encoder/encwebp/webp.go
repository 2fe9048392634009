package encwebp

import (
	"io"

	"github.com/chai2010/webp"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

func init() { convert.RegisterEncoder(&WebpEncoder{}) }

var _ convert.Encoder = (*WebpEncoder)(nil)

// WebpEncoder uses "github.com/chai2010/webp" (libwebp via cgo)
type WebpEncoder struct{}

func (e *WebpEncoder) Format() convert.Format { return convert.WebP }

func (e *WebpEncoder) Encode(w io.Writer, buf *convert.Buffer, opts *convert.EncodeOptions) error {
	if w == nil || buf == nil {
		return errors.NilParam()
	}
	o := &webp.Options{Quality: convert.DefaultWebPQuality}
	if opts != nil {
		o.Lossless = opts.WebPLossless
		if opts.WebPQuality > 0 {
			o.Quality = min(opts.WebPQuality, 100)
		}
	}
	if err := webp.Encode(w, buf.Image(), o); err != nil {
		return errors.New(err)
	}
	return nil
}
