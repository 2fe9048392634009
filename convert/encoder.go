package convert

import (
	"io"
	"sync"
)

// Encoder serializes a Buffer into one container format.
type Encoder interface {
	Format() Format
	Encode(w io.Writer, buf *Buffer, opts *EncodeOptions) error
}

// PNGCompression mirrors the levels of image/png.
type PNGCompression int

const (
	PNGDefaultCompression PNGCompression = 0
	PNGNoCompression      PNGCompression = -1
	PNGBestSpeed          PNGCompression = -2
	PNGBestCompression    PNGCompression = -3
)

// EncodeOptions are shared by all encoders, each one reads the fields it needs.
type EncodeOptions struct {
	JPEGQuality    int     // 1-100
	WebPQuality    float32 // 0-100, ignored when lossless
	WebPLossless   bool
	PNGCompression PNGCompression
	// ICOSingle writes one frame of the buffer size instead of the size ladder.
	ICOSingle bool
	// Resizer is used by encoders that resample (ICO). nil selects DefaultResizer.
	Resizer Resizer
}

const (
	DefaultJPEGQuality = 90
	DefaultWebPQuality = 80
)

func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{
		JPEGQuality: DefaultJPEGQuality,
		WebPQuality: DefaultWebPQuality,
	}
}

var (
	encodersMu         sync.RWMutex
	encodersRegistered = make(map[Format]Encoder)
)

// RegisterEncoder makes an encoder available for its format.
func RegisterEncoder(e Encoder) {
	if e == nil {
		return
	}
	encodersMu.Lock()
	defer encodersMu.Unlock()
	encodersRegistered[e.Format()] = e
}

// EncoderFor returns the registered encoder of f or nil.
func EncoderFor(f Format) Encoder {
	encodersMu.RLock()
	defer encodersMu.RUnlock()
	return encodersRegistered[f]
}

// Encode writes buf in format f to w.
func Encode(w io.Writer, buf *Buffer, f Format, opts *EncodeOptions) error {
	if w == nil {
		return newSaveError(KindParameter, `nil writer`)
	}
	if !buf.valid() {
		return newSaveError(KindParameter, `invalid buffer`)
	}
	enc := EncoderFor(f)
	if enc == nil {
		return newSaveError(KindUnsupported, ErrNoEncoder.Error()+` for format `+f.String())
	}
	if opts == nil {
		opts = DefaultEncodeOptions()
	}
	return saveErrorFrom(enc.Encode(w, buf, opts), KindEncoding)
}
