package convert

import (
	"context"
	"image"
	"log/slog"
	"sync"

	"github.com/srlehn/imgconv/internal/errors"
	"github.com/srlehn/imgconv/internal/logx"
)

// ResizeSettings are the target of a conversion.
type ResizeSettings struct {
	Width  int
	Height int
	Filter Filter
}

func (s ResizeSettings) Size() image.Point { return image.Pt(s.Width, s.Height) }

// Result records the outcome of the last load or save.
type Result struct {
	Done bool
	Path string
	Err  error
}

var _ logx.LoggerProvider = (*Converter)(nil)

// Converter holds one editing session: a source image, the resize settings,
// the destination format and a cached preview. Any change of the settings
// marks the preview dirty until Preview recomputes it.
type Converter struct {
	mu         sync.Mutex
	reader     ImageReader
	writer     ImageWriter
	resizer    Resizer
	logger     *slog.Logger
	source     *Buffer
	sourcePath string
	settings   ResizeSettings
	format     Format
	lock       bool
	dirty      bool
	generation uint64
	preview    *Buffer
	lastLoad   Result
	lastSave   Result
}

// NewConverter returns a session with ICO output, Lanczos3 and a locked aspect ratio.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		settings: ResizeSettings{Filter: DefaultFilter},
		format:   DefaultFormat,
		lock:     true,
		dirty:    true,
	}
	if err := Options(opts).ApplyOption(c); err != nil {
		return nil, err
	}
	if c.reader == nil {
		c.reader = &FileReader{Log: c.logger}
	}
	if c.writer == nil {
		c.writer = &FileWriter{Options: &EncodeOptions{
			JPEGQuality: DefaultJPEGQuality,
			WebPQuality: DefaultWebPQuality,
			Resizer:     c.resizer,
		}, Log: c.logger}
	}
	return c, nil
}

func (c *Converter) Logger() *slog.Logger {
	if c == nil {
		return nil
	}
	return c.logger
}

// Load replaces the source image. On failure the previous source is kept.
// On success the target size is reset to the source size, clamped to the
// range of the destination format, and the preview is recomputed.
func (c *Converter) Load(path string) error {
	if err := errors.NilReceiver(c); err != nil {
		return err
	}
	buf, err := c.reader.Load(path)
	c.mu.Lock()
	c.lastLoad = Result{Done: true, Path: path, Err: err}
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.source = buf
	c.sourcePath = path
	c.settings.Width, c.settings.Height = c.clampLocked(buf.Width, buf.Height)
	c.preview = nil
	c.touch()
	c.mu.Unlock()
	logx.Info(`source loaded`, c, `path`, path, `size`, sizeString(buf.Size()))
	_, err = c.Preview(context.Background())
	if err != nil {
		// keep the source, the preview can be retried with other settings
		logx.IsErr(err, c, slog.LevelWarn)
	}
	return nil
}

// SetSource uses an in-memory buffer as source.
func (c *Converter) SetSource(buf *Buffer) error {
	if err := errors.NilReceiver(c); err != nil {
		return err
	}
	if !buf.valid() {
		return newLoadError(KindParameter, `invalid source buffer`)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.source = buf
	c.sourcePath = ``
	c.settings.Width, c.settings.Height = c.clampLocked(buf.Width, buf.Height)
	c.preview = nil
	c.touch()
	return nil
}

func (c *Converter) Source() *Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source
}

func (c *Converter) SourcePath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sourcePath
}

func (c *Converter) Settings() ResizeSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

func (c *Converter) Format() Format {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.format
}

func (c *Converter) AspectLocked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lock
}

// Dirty reports whether the cached preview is outdated.
func (c *Converter) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// Generation increases with every change of source or settings.
func (c *Converter) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *Converter) LastLoad() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastLoad
}

func (c *Converter) LastSave() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSave
}

// SetWidth sets the target width. With a locked aspect ratio the height follows.
func (c *Converter) SetWidth(w int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w = clamp(w, MinDimension, c.format.MaxDimension())
	c.settings.Width = w
	if c.lock {
		c.settings.Height = clamp(int(float64(w)/c.aspect()), MinDimension, c.format.MaxDimension())
	}
	c.touch()
}

// SetHeight sets the target height. With a locked aspect ratio the width follows.
func (c *Converter) SetHeight(h int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h = clamp(h, MinDimension, c.format.MaxDimension())
	c.settings.Height = h
	if c.lock {
		c.settings.Width = clamp(int(float64(h)*c.aspect()), MinDimension, c.format.MaxDimension())
	}
	c.touch()
}

// SetSize sets both sides regardless of the aspect lock.
func (c *Converter) SetSize(w, h int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Width = clamp(w, MinDimension, c.format.MaxDimension())
	c.settings.Height = clamp(h, MinDimension, c.format.MaxDimension())
	c.touch()
}

// SetTargetSize applies a requested size where 0 leaves a side unset. Both
// sides go through SetSize, a single side through SetWidth or SetHeight.
func (c *Converter) SetTargetSize(w, h int) {
	switch {
	case w > 0 && h > 0:
		c.SetSize(w, h)
	case w > 0:
		c.SetWidth(w)
	case h > 0:
		c.SetHeight(h)
	}
}

func (c *Converter) SetAspectLock(lock bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lock = lock
}

func (c *Converter) SetFilter(f Filter) {
	if !f.Valid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.settings.Filter == f {
		return
	}
	c.settings.Filter = f
	c.touch()
}

// SetFormat changes the destination format and clamps the target size into
// its range. The preview only becomes dirty if the size changed.
func (c *Converter) SetFormat(f Format) {
	if !f.Valid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.format = f
	w, h := c.clampLocked(c.settings.Width, c.settings.Height)
	if w != c.settings.Width || h != c.settings.Height {
		c.settings.Width, c.settings.Height = w, h
		c.touch()
	}
}

// Preview returns the source resampled with the current settings. The result
// is cached until the settings change. The lock is not held while resampling.
func (c *Converter) Preview(ctx context.Context) (*Buffer, error) {
	if err := errors.NilReceiver(c); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	c.mu.Lock()
	if c.source == nil {
		c.mu.Unlock()
		return nil, ErrNoSource
	}
	if !c.dirty && c.preview != nil {
		pv := c.preview
		c.mu.Unlock()
		return pv, nil
	}
	src, settings, gen, rsz := c.source, c.settings, c.generation, c.resizer
	c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, errors.New(err)
	}
	pv, err := logx.TimeIt2(func() (*Buffer, error) {
		return Resample(rsz, src, settings.Size(), settings.Filter)
	}, `preview resampling`, c, `size`, sizeString(settings.Size()), `filter`, settings.Filter.Name())
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.New(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// settings changed while resampling: hand out the result but stay dirty
	if gen == c.generation {
		c.preview = pv
		c.dirty = false
	}
	return pv, nil
}

// Save resamples the source with the current settings and writes it to path.
// The extension of the destination format is appended when missing. The
// final path is returned.
func (c *Converter) Save(path string) (string, error) {
	if err := errors.NilReceiver(c); err != nil {
		return ``, err
	}
	c.mu.Lock()
	src, settings, format, rsz := c.source, c.settings, c.format, c.resizer
	c.mu.Unlock()
	if src == nil {
		return ``, ErrNoSource
	}
	path = EnsureExtension(path, format)
	err := func() error {
		out, err := Resample(rsz, src, settings.Size(), settings.Filter)
		if err != nil {
			return saveErrorFrom(err, KindOther)
		}
		return c.writer.Save(path, out, format)
	}()
	c.mu.Lock()
	c.lastSave = Result{Done: true, Path: path, Err: err}
	c.mu.Unlock()
	if logx.IsErr(err, c, slog.LevelError, `path`, path) {
		return path, err
	}
	logx.Info(`image saved`, c, `path`, path, `format`, format.String(), `size`, sizeString(settings.Size()))
	return path, nil
}

// touch must be called with c.mu held.
func (c *Converter) touch() {
	c.dirty = true
	c.generation++
}

// aspect must be called with c.mu held.
func (c *Converter) aspect() float64 {
	if c.source == nil || c.source.Height == 0 {
		return 1
	}
	return float64(c.source.Width) / float64(c.source.Height)
}

// clampLocked fits w and h into the range of the destination format. With a
// locked aspect ratio the longer side is clamped and the other side follows.
// It must be called with c.mu held.
func (c *Converter) clampLocked(w, h int) (int, int) {
	maxDim := c.format.MaxDimension()
	if c.lock && c.source != nil && (w > maxDim || h > maxDim) {
		if w >= h {
			w = maxDim
			h = int(float64(w) / c.aspect())
		} else {
			h = maxDim
			w = int(float64(h) * c.aspect())
		}
	}
	return clamp(w, MinDimension, maxDim), clamp(h, MinDimension, maxDim)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
