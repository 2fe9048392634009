package convert

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/srlehn/imgconv/internal/errors"
)

// Filter names a resampling algorithm.
type Filter uint8

const (
	Nearest Filter = iota
	Bilinear
	Hamming
	CatmullRom
	Mitchell
	Gaussian
	Lanczos3
)

// DefaultFilter is used when nothing else is configured.
const DefaultFilter = Lanczos3

// Filters returns all filters in the order they are offered to users.
func Filters() []Filter {
	return []Filter{Nearest, Bilinear, Gaussian, CatmullRom, Mitchell, Hamming, Lanczos3}
}

var filterInfo = [...]struct {
	display string
	name    string
	aliases []string
}{
	Nearest:    {`Nearest-Neighbor`, `nearest`, []string{`nearestneighbor`, `nn`, `box`, `point`}},
	Bilinear:   {`Bilinear`, `bilinear`, []string{`linear`, `triangle`, `tent`}},
	Hamming:    {`Hamming`, `hamming`, nil},
	CatmullRom: {`Catmull-Rom`, `catmull-rom`, []string{`catmullrom`, `bicubic`, `cubic`}},
	Mitchell:   {`Mitchell`, `mitchell`, []string{`mitchellnetravali`}},
	Gaussian:   {`Gaussian`, `gaussian`, []string{`gauss`}},
	Lanczos3:   {`Lanczos3`, `lanczos3`, []string{`lanczos`}},
}

// String returns the display name, e.g. "Catmull-Rom".
func (f Filter) String() string {
	if int(f) < len(filterInfo) {
		return filterInfo[f].display
	}
	return `filter(` + strconv.Itoa(int(f)) + `)`
}

// Name returns the command line name, e.g. "catmull-rom".
func (f Filter) Name() string {
	if int(f) < len(filterInfo) {
		return filterInfo[f].name
	}
	return f.String()
}

func (f Filter) Valid() bool { return int(f) < len(filterInfo) }

// ParseFilter accepts display names, command line names and common aliases
// regardless of case and word separators.
func ParseFilter(s string) (Filter, error) {
	n := normalizeName(s)
	if len(n) == 0 {
		return DefaultFilter, errors.New(`empty filter name`)
	}
	for i, fi := range filterInfo {
		if n == normalizeName(fi.name) || n == normalizeName(fi.display) {
			return Filter(i), nil
		}
		for _, alias := range fi.aliases {
			if n == alias {
				return Filter(i), nil
			}
		}
	}
	return DefaultFilter, errors.New(`unknown filter "` + s + `"`)
}

// Set and Type make *Filter usable as a command line flag value.
func (f *Filter) Set(s string) error {
	v, err := ParseFilter(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *Filter) Type() string { return `filter` }

// normalizeName turns "Catmull_Rom", "catmull-rom" and "CatmullRom" into "catmullrom".
func normalizeName(s string) string {
	s = strcase.ToKebab(strings.TrimSpace(s))
	return strings.ReplaceAll(s, `-`, ``)
}
