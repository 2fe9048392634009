package convert

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/srlehn/imgconv/internal/errors"
	"github.com/srlehn/imgconv/internal/logx"
)

// ImageReader loads an image file into an RGBA8 buffer.
type ImageReader interface {
	Load(path string) (*Buffer, error)
}

// ImageWriter stores a buffer in the given format.
type ImageWriter interface {
	Save(path string, buf *Buffer, f Format) error
}

var (
	_ ImageReader         = (*FileReader)(nil)
	_ ImageWriter         = (*FileWriter)(nil)
	_ logx.LoggerProvider = (*FileReader)(nil)
	_ logx.LoggerProvider = (*FileWriter)(nil)
)

// FileReader decodes files with the registered image decoders.
type FileReader struct {
	AutoOrient bool
	Log        *slog.Logger
}

func (r *FileReader) Logger() *slog.Logger {
	if r == nil {
		return nil
	}
	return r.Log
}

func (r *FileReader) Load(path string) (*Buffer, error) {
	if err := errors.NilReceiver(r); err != nil {
		return nil, newLoadError(KindParameter, err)
	}
	img := NewImageFileName(path)
	img.AutoOrient = r.AutoOrient
	buf, err := logx.TimeIt2(img.Buffer, `image decoding`, r, `path`, path)
	if logx.IsErr(err, r, slog.LevelError, `path`, path) {
		return nil, err
	}
	logx.Debug(`image loaded`, r, `path`, path, `mime`, img.MIME, `size`, sizeString(buf.Size()))
	return buf, nil
}

// FileWriter encodes with the registered encoders. The encoded image is
// written only after encoding succeeded, so failures leave no partial file.
type FileWriter struct {
	Options *EncodeOptions
	Log     *slog.Logger
}

func (w *FileWriter) Logger() *slog.Logger {
	if w == nil {
		return nil
	}
	return w.Log
}

func (w *FileWriter) Save(path string, buf *Buffer, f Format) error {
	if err := errors.NilReceiver(w); err != nil {
		return newSaveError(KindParameter, err)
	}
	if len(path) == 0 {
		return newSaveError(KindParameter, `empty output path`)
	}
	var b bytes.Buffer
	err := logx.TimeIt(func() error { return Encode(&b, buf, f, w.Options) }, `image encoding`, w, `path`, path, `format`, f.String())
	if logx.IsErr(err, w, slog.LevelError, `path`, path) {
		return err
	}
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return logx.Err(newSaveError(KindIO, err), w, slog.LevelError, `path`, path)
	}
	logx.Debug(`image saved`, w, `path`, path, `bytes`, b.Len())
	return nil
}
