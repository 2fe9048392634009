// Package caire changes the image size by seam carving. Instead of scaling,
// low energy seams are removed or inserted, so the filter is not used.
package caire

import (
	"image"
	"sync"

	"github.com/esimov/caire"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

func init() { convert.RegisterResizer(&Resizer{}) }

type Resizer struct {
	BlurRadius     int
	SobelThreshold int
}

var _ convert.Resizer = (*Resizer)(nil)

func (r *Resizer) Name() string { return `caire` }

// Supports reports true for every valid filter, seam carving ignores it.
func (r *Resizer) Supports(f convert.Filter) bool { return f.Valid() }

func (r *Resizer) Resize(img image.Image, size image.Point, _ convert.Filter) (image.Image, error) {
	if err := errors.NilReceiver(r); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, errors.NilParam()
	}
	if size.X < convert.MinDimension || size.Y < convert.MinDimension {
		return nil, errors.New(`caire: invalid target size ` + image.Rectangle{Max: size}.String())
	}
	// caire reads sizes from Bounds().Max
	nimg, ok := img.(*image.NRGBA)
	if !ok || nimg.Rect.Min != (image.Point{}) {
		nimg = convert.BufferFromImage(img).Image()
	}
	// caire transposes its result when both sides grow, so every pass
	// carves only one axis
	var err error
	if cur := nimg.Bounds().Size(); cur.X != size.X {
		if nimg, err = r.carve(nimg, size.X, 0); err != nil {
			return nil, err
		}
	}
	if cur := nimg.Bounds().Size(); cur.Y != size.Y {
		if nimg, err = r.carve(nimg, 0, size.Y); err != nil {
			return nil, err
		}
	}
	if got := nimg.Bounds().Size(); got != size {
		return nil, errors.WrapPrefix(errors.ErrUnsupported,
			`caire: got `+image.Rectangle{Max: got}.String()+` instead of `+image.Rectangle{Max: size}.String(), 0)
	}
	return nimg, nil
}

// caire keeps its carving functions in package variables
var carveMu sync.Mutex

// carve changes one side, a 0 side is kept.
func (r *Resizer) carve(img *image.NRGBA, w, h int) (*image.NRGBA, error) {
	carveMu.Lock()
	defer carveMu.Unlock()
	blur, sobel := r.BlurRadius, r.SobelThreshold
	if blur == 0 {
		blur = 1
	}
	if sobel == 0 {
		sobel = 4
	}
	p := &caire.Processor{
		BlurRadius:     blur,
		SobelThreshold: sobel,
		NewWidth:       w,
		NewHeight:      h,
	}
	res, err := p.Resize(img)
	if err != nil {
		return nil, errors.New(err)
	}
	if n, ok := res.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n, nil
	}
	return convert.BufferFromImage(res).Image(), nil
}
