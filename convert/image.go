package convert

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/srlehn/imgconv/internal/errors"
)

var _ image.Image = (*Image)(nil)

// Image is a lazily decoded source image. It is read either from FileName or
// from Encoded, never from both.
type Image struct {
	Original image.Image
	FileName string // lazily loaded
	Encoded  []byte // lazily loaded
	// MIME is the sniffed media type of the encoded data, set by Decode.
	MIME string
	// AutoOrient applies the EXIF orientation tag while decoding.
	AutoOrient bool
	decodeErr  error
}

// NewImage wraps an already decoded image.
func NewImage(img image.Image) *Image {
	if m, ok := img.(*Image); ok {
		return m
	}
	return &Image{Original: img}
}

// NewImageFileName - for lazy loading the file
func NewImageFileName(imgFile string) *Image {
	if imgFileAbs, err := filepath.Abs(imgFile); err == nil {
		imgFile = imgFileAbs
	}
	return &Image{FileName: imgFile}
}

// NewImageBytes - for lazy decoding of in-memory data
func NewImageBytes(imgBytes []byte) *Image {
	return &Image{Encoded: imgBytes}
}

// Decode decodes the source once. Failures are remembered and returned again
// on subsequent calls.
func (i *Image) Decode() error {
	if i == nil {
		return errors.NilReceiver()
	}
	if i.Original != nil {
		return nil
	}
	if i.decodeErr != nil {
		return i.decodeErr
	}
	i.decodeErr = i.decode()
	return i.decodeErr
}

func (i *Image) decode() error {
	data := i.Encoded
	switch {
	case len(i.Encoded) > 0 && len(i.FileName) > 0:
		return newLoadError(KindParameter, `image contains 2 sources`)
	case len(i.FileName) > 0:
		b, err := os.ReadFile(i.FileName)
		if err != nil {
			return newLoadError(KindIO, err)
		}
		data = b
	case len(data) == 0:
		return newLoadError(KindParameter, `no image data`)
	}
	mt := mimetype.Detect(data)
	i.MIME = mt.String()
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(i.AutoOrient))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return newLoadError(KindUnsupported, `unsupported image format `+i.MIME)
		}
		return newLoadError(KindDecoding, err)
	}
	if b := img.Bounds(); b.Dx() < 1 || b.Dy() < 1 {
		return newLoadError(KindDecoding, `image without pixels`)
	}
	i.Original = img
	return nil
}

// SourceFormat returns the output format matching the sniffed media type, if any.
func (i *Image) SourceFormat() (Format, bool) {
	if i == nil || len(i.MIME) == 0 {
		return DefaultFormat, false
	}
	if i.MIME == `image/vnd.microsoft.icon` {
		return ICO, true
	}
	for _, f := range Formats() {
		if i.MIME == f.MIME() {
			return f, true
		}
	}
	return DefaultFormat, false
}

// Buffer decodes the image and converts it to an RGBA8 buffer.
func (i *Image) Buffer() (*Buffer, error) {
	if err := i.Decode(); err != nil {
		return nil, err
	}
	return BufferFromImage(i.Original), nil
}

func (i *Image) ColorModel() color.Model {
	if i == nil || i.Decode() != nil {
		return color.NRGBAModel
	}
	return i.Original.ColorModel()
}

func (i *Image) Bounds() image.Rectangle {
	if i == nil || i.Decode() != nil {
		return image.Rectangle{}
	}
	return i.Original.Bounds()
}

func (i *Image) At(x, y int) color.Color {
	if i == nil || i.Decode() != nil {
		return color.NRGBA{}
	}
	return i.Original.At(x, y)
}
