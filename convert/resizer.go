package convert

import (
	"image"
	"sort"
	"strconv"
	"sync"

	"github.com/srlehn/imgconv/internal/errors"
)

// Resizer wraps one resampling library.
type Resizer interface {
	Name() string
	Supports(f Filter) bool
	Resize(img image.Image, size image.Point, f Filter) (image.Image, error)
}

// DefaultResizerName is the name the automatic backend selector registers under.
const DefaultResizerName = `default`

var (
	resizersMu         sync.RWMutex
	resizersRegistered = make(map[string]Resizer)
)

// RegisterResizer makes a backend available by name. Registering a name twice
// replaces the earlier backend.
func RegisterResizer(r Resizer) {
	if r == nil {
		return
	}
	resizersMu.Lock()
	defer resizersMu.Unlock()
	resizersRegistered[r.Name()] = r
}

// ResizerByName returns the registered backend or nil.
func ResizerByName(name string) Resizer {
	resizersMu.RLock()
	defer resizersMu.RUnlock()
	return resizersRegistered[name]
}

// Resizers returns all registered backends sorted by name.
func Resizers() []Resizer {
	resizersMu.RLock()
	defer resizersMu.RUnlock()
	rszs := make([]Resizer, 0, len(resizersRegistered))
	for _, r := range resizersRegistered {
		rszs = append(rszs, r)
	}
	sort.Slice(rszs, func(i, j int) bool { return rszs[i].Name() < rszs[j].Name() })
	return rszs
}

// DefaultResizer returns the automatic selector if registered, otherwise the
// first registered backend.
func DefaultResizer() Resizer {
	if r := ResizerByName(DefaultResizerName); r != nil {
		return r
	}
	if rszs := Resizers(); len(rszs) > 0 {
		return rszs[0]
	}
	return nil
}

// Resample scales buf to size with filter f. A nil rsz selects DefaultResizer.
// The result is always an RGBA8 buffer of exactly the requested size.
func Resample(rsz Resizer, buf *Buffer, size image.Point, f Filter) (*Buffer, error) {
	if rsz == nil {
		rsz = DefaultResizer()
		if rsz == nil {
			return nil, newResizeError(KindResize, ErrNoResizer)
		}
	}
	if !buf.valid() {
		return nil, newResizeError(KindBuffer, `invalid source buffer`)
	}
	if size.X < MinDimension || size.Y < MinDimension {
		return nil, newResizeError(KindBuffer, `target side with length < 1: `+sizeString(size))
	}
	if !f.Valid() || !rsz.Supports(f) {
		return nil, newResizeError(KindResize, errors.WrapPrefix(errors.ErrUnsupported, `filter `+f.String()+` on resizer `+rsz.Name(), 0))
	}
	if buf.Size() == size {
		out := buf.Clone()
		if out.Format != RGBA8 {
			out = BufferFromImage(out.Image())
		}
		return out, nil
	}
	res, err := rsz.Resize(buf.Image(), size, f)
	if err != nil {
		return nil, newResizeError(KindResize, err)
	}
	if res == nil {
		return nil, newResizeError(KindResize, `resizer `+rsz.Name()+` returned no image`)
	}
	if got := res.Bounds().Size(); got != size {
		return nil, newResizeError(KindResize, `resizer `+rsz.Name()+` returned `+sizeString(got)+` instead of `+sizeString(size))
	}
	return BufferFromImage(res), nil
}

func sizeString(p image.Point) string {
	return strconv.Itoa(p.X) + `x` + strconv.Itoa(p.Y)
}
