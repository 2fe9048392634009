package encbmp

import (
	"io"

	"golang.org/x/image/bmp"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

func init() { convert.RegisterEncoder(&BmpEncoder{}) }

var _ convert.Encoder = (*BmpEncoder)(nil)

type BmpEncoder struct{}

func (e *BmpEncoder) Format() convert.Format { return convert.BMP }

func (e *BmpEncoder) Encode(w io.Writer, buf *convert.Buffer, _ *convert.EncodeOptions) error {
	if w == nil || buf == nil {
		return errors.NilParam()
	}
	if err := bmp.Encode(w, buf.Image()); err != nil {
		return errors.New(err)
	}
	return nil
}
