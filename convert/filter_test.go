package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterNames(t *testing.T) {
	assert.Len(t, Filters(), 7)
	assert.Equal(t, Lanczos3, DefaultFilter)
	assert.Equal(t, `Nearest-Neighbor`, Nearest.String())
	assert.Equal(t, `Catmull-Rom`, CatmullRom.String())
	assert.Equal(t, `catmull-rom`, CatmullRom.Name())
	assert.False(t, Filter(99).Valid())
}

func TestParseFilter(t *testing.T) {
	tests := map[string]Filter{
		`nearest`:          Nearest,
		`Nearest-Neighbor`: Nearest,
		`NN`:               Nearest,
		`linear`:           Bilinear,
		`catmull_rom`:      CatmullRom,
		`CatmullRom`:       CatmullRom,
		`bicubic`:          CatmullRom,
		`Mitchell`:         Mitchell,
		` gaussian `:       Gaussian,
		`hamming`:          Hamming,
		`lanczos`:          Lanczos3,
		`Lanczos3`:         Lanczos3,
	}
	for in, want := range tests {
		got, err := ParseFilter(in)
		if assert.NoError(t, err, in) {
			assert.Equal(t, want, got, in)
		}
	}
	for _, f := range Filters() {
		got, err := ParseFilter(f.Name())
		assert.NoError(t, err)
		assert.Equal(t, f, got)
		got, err = ParseFilter(f.String())
		assert.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFilter(`sinc`)
	assert.Error(t, err)
	_, err = ParseFilter(``)
	assert.Error(t, err)
}

func TestFilterFlagValue(t *testing.T) {
	var f Filter
	assert.NoError(t, f.Set(`mitchell`))
	assert.Equal(t, Mitchell, f)
	assert.Error(t, f.Set(`none`))
	assert.Equal(t, Mitchell, f)
	assert.Equal(t, `filter`, f.Type())
}
