package encjpeg

import (
	"image/jpeg"
	"io"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

func init() { convert.RegisterEncoder(&JpegEncoder{}) }

var _ convert.Encoder = (*JpegEncoder)(nil)

// JpegEncoder drops the alpha channel.
type JpegEncoder struct{}

func (e *JpegEncoder) Format() convert.Format { return convert.JPEG }

func (e *JpegEncoder) Encode(w io.Writer, buf *convert.Buffer, opts *convert.EncodeOptions) error {
	if w == nil || buf == nil {
		return errors.NilParam()
	}
	quality := convert.DefaultJPEGQuality
	if opts != nil && opts.JPEGQuality != 0 {
		quality = min(max(opts.JPEGQuality, 1), 100)
	}
	if err := jpeg.Encode(w, buf.ToRGB8().Image(), &jpeg.Options{Quality: quality}); err != nil {
		return errors.New(err)
	}
	return nil
}
