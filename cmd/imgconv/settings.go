package main

import (
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

// convFlags are the conversion settings shared by convert, batch and preview.
// Flags that were not given fall back to the configuration.
type convFlags struct {
	fs         *pflag.FlagSet
	width      int
	height     int
	filter     convert.Filter
	format     convert.Format
	resizer    string
	keepAspect bool
	quality    int
	lossless   bool
	icoSingle  bool
	autoOrient bool
}

func (f *convFlags) register(fs *pflag.FlagSet) {
	f.fs = fs
	f.filter = convert.DefaultFilter
	f.format = convert.DefaultFormat
	fs.IntVarP(&f.width, `width`, `W`, 0, `target width, 0 keeps the source width or the aspect ratio`)
	fs.IntVarP(&f.height, `height`, `H`, 0, `target height, 0 keeps the source height or the aspect ratio`)
	fs.VarP(&f.filter, `filter`, `f`, `resampling filter (`+filterNames()+`)`)
	fs.VarP(&f.format, `format`, `F`, `output format (`+formatNames()+`)`)
	fs.StringVarP(&f.resizer, `resizer`, `r`, convert.DefaultResizerName, `resize backend`)
	fs.BoolVar(&f.keepAspect, `keep-aspect`, true, `keep the aspect ratio if only one side is given`)
	fs.IntVar(&f.quality, `quality`, 0, `jpeg (1-100) or webp (0-100) quality`)
	fs.BoolVar(&f.lossless, `lossless`, false, `lossless webp`)
	fs.BoolVar(&f.icoSingle, `ico-single`, false, `write a single icon frame instead of the size ladder`)
	fs.BoolVar(&f.autoOrient, `auto-orient`, true, `apply the exif orientation`)
}

func (f *convFlags) changed(name string) bool { return f.fs != nil && f.fs.Changed(name) }

func (f *convFlags) Filter() (convert.Filter, error) {
	if f.changed(`filter`) {
		return f.filter, nil
	}
	return cfg.FilterValue()
}

// Format returns the flag value, then the format implied by the extension of
// outPath, then the configured format.
func (f *convFlags) Format(outPath string) (convert.Format, error) {
	if f.changed(`format`) {
		return f.format, nil
	}
	if len(outPath) > 0 {
		if format, err := convert.FormatFromPath(outPath); err == nil {
			return format, nil
		}
	}
	return cfg.FormatValue()
}

func (f *convFlags) Resizer() (convert.Resizer, error) {
	name := f.resizer
	if !f.changed(`resizer`) && len(cfg.Resizer) > 0 {
		name = cfg.Resizer
	}
	rsz := convert.ResizerByName(name)
	if rsz == nil {
		return nil, errors.New(`unknown resizer "` + name + `", available: ` + resizerNames())
	}
	return rsz, nil
}

func (f *convFlags) KeepAspect() bool {
	if f.changed(`keep-aspect`) {
		return f.keepAspect
	}
	return cfg.KeepAspect
}

func (f *convFlags) AutoOrient() bool {
	if f.changed(`auto-orient`) {
		return f.autoOrient
	}
	return cfg.AutoOrient
}

func (f *convFlags) EncodeOptions(rsz convert.Resizer) (*convert.EncodeOptions, error) {
	opts := cfg.EncodeOptions()
	opts.Resizer = rsz
	opts.ICOSingle = f.icoSingle
	if f.changed(`lossless`) {
		opts.WebPLossless = f.lossless
	}
	if f.changed(`quality`) {
		if f.quality < 0 || f.quality > 100 {
			return nil, errors.Errorf(`quality %d out of range 0-100`, f.quality)
		}
		opts.JPEGQuality = max(f.quality, 1)
		opts.WebPQuality = float32(f.quality)
	}
	return opts, nil
}

func (f *convFlags) Size() (int, int, error) {
	if f.width < 0 || f.height < 0 {
		return 0, 0, errors.New(`negative target size`)
	}
	return f.width, f.height, nil
}

func filterNames() string {
	var names []string
	for _, flt := range convert.Filters() {
		names = append(names, flt.Name())
	}
	return strings.Join(names, `, `)
}

func formatNames() string {
	var names []string
	for _, format := range convert.Formats() {
		names = append(names, format.String())
	}
	return strings.Join(names, `, `)
}

func resizerNames() string {
	var names []string
	for _, rsz := range convert.Resizers() {
		names = append(names, rsz.Name())
	}
	slices.Sort(names)
	return strings.Join(names, `, `)
}
