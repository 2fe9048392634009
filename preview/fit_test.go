package preview

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit(t *testing.T) {
	tests := []struct {
		size, area, want image.Point
	}{
		{image.Pt(100, 50), image.Pt(80, 48), image.Pt(80, 40)},
		{image.Pt(50, 100), image.Pt(80, 48), image.Pt(24, 48)},
		{image.Pt(16, 16), image.Pt(80, 48), image.Pt(48, 48)},
		{image.Pt(1000, 1), image.Pt(80, 48), image.Pt(80, 1)},
		{image.Pt(0, 10), image.Pt(80, 48), image.Pt(80, 48)},
		{image.Pt(10, 10), image.Pt(0, 0), image.Pt(1, 1)},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Fit(tc.size, tc.area), `%v in %v`, tc.size, tc.area)
	}
}

func TestTerminalSize(t *testing.T) {
	sz := TerminalSize()
	assert.Positive(t, sz.X)
	assert.Positive(t, sz.Y)
}

func TestCycle(t *testing.T) {
	all := []string{`a`, `b`, `c`}
	assert.Equal(t, `b`, cycle(all, `a`, 1))
	assert.Equal(t, `a`, cycle(all, `c`, 1))
	assert.Equal(t, `c`, cycle(all, `a`, -1))
	assert.Equal(t, `a`, cycle(all, `x`, 1))
}
