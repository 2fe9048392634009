package encpng

import (
	"image/png"
	"io"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

func init() { convert.RegisterEncoder(&PngEncoder{}) }

var _ convert.Encoder = (*PngEncoder)(nil)

type PngEncoder struct{}

func (e *PngEncoder) Format() convert.Format { return convert.PNG }

func (e *PngEncoder) Encode(w io.Writer, buf *convert.Buffer, opts *convert.EncodeOptions) error {
	if w == nil || buf == nil {
		return errors.NilParam()
	}
	enc := &png.Encoder{}
	if opts != nil {
		enc.CompressionLevel = png.CompressionLevel(opts.PNGCompression)
	}
	if err := enc.Encode(w, buf.Image()); err != nil {
		return errors.New(err)
	}
	return nil
}
