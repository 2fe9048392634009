package convert

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/srlehn/imgconv/internal/errors"
)

// Format is an output container.
type Format uint8

const (
	PNG Format = iota
	ICO
	JPEG
	WebP
	BMP
)

// DefaultFormat is the destination format of a new Converter.
const DefaultFormat = ICO

const (
	MinDimension    = 1
	maxDimensionICO = 256
	maxDimension    = 10000
)

var formatInfo = [...]struct {
	name string
	exts []string
	mime string
}{
	PNG:  {`png`, []string{`png`}, `image/png`},
	ICO:  {`ico`, []string{`ico`}, `image/x-icon`},
	JPEG: {`jpeg`, []string{`jpg`, `jpeg`}, `image/jpeg`},
	WebP: {`webp`, []string{`webp`}, `image/webp`},
	BMP:  {`bmp`, []string{`bmp`}, `image/bmp`},
}

// Formats lists all output formats.
func Formats() []Format { return []Format{ICO, PNG, JPEG, WebP, BMP} }

func (f Format) String() string {
	if int(f) < len(formatInfo) {
		return formatInfo[f].name
	}
	return `format(` + strconv.Itoa(int(f)) + `)`
}

func (f Format) Valid() bool { return int(f) < len(formatInfo) }

// Extensions returns the file name extensions without dot, preferred first.
func (f Format) Extensions() []string {
	if !f.Valid() {
		return nil
	}
	return append([]string(nil), formatInfo[f].exts...)
}

func (f Format) MIME() string {
	if !f.Valid() {
		return ``
	}
	return formatInfo[f].mime
}

// MaxDimension is the largest side length the format accepts.
func (f Format) MaxDimension() int {
	if f == ICO {
		return maxDimensionICO
	}
	return maxDimension
}

// ParseFormat accepts format names and extensions with or without leading dot.
func ParseFormat(s string) (Format, error) {
	n := strings.TrimPrefix(normalizeName(s), `.`)
	if len(n) == 0 {
		return DefaultFormat, errors.New(`empty format name`)
	}
	for i, fi := range formatInfo {
		if n == fi.name {
			return Format(i), nil
		}
		for _, ext := range fi.exts {
			if n == ext {
				return Format(i), nil
			}
		}
	}
	return DefaultFormat, errors.New(`unknown format "` + s + `"`)
}

// FormatFromPath derives the format from the file name extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if len(ext) < 2 {
		return DefaultFormat, errors.New(`no file extension in "` + path + `"`)
	}
	return ParseFormat(ext[1:])
}

// EnsureExtension appends the preferred extension of f unless path already
// ends with one of the extensions of f. The comparison is case-sensitive.
func EnsureExtension(path string, f Format) string {
	exts := f.Extensions()
	if len(exts) == 0 {
		return path
	}
	for _, ext := range exts {
		if strings.HasSuffix(path, `.`+ext) {
			return path
		}
	}
	return path + `.` + exts[0]
}

// Set and Type make *Format usable as a command line flag value.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *Format) Type() string { return `format` }
