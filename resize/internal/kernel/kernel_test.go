package kernel_test

import (
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"

	"github.com/srlehn/imgconv/resize/internal/kernel"
)

func TestHamming(t *testing.T) {
	k := kernel.Hamming.Kernel
	assert.Equal(t, 1.0, kernel.Hamming.Support)
	assert.InDelta(t, 1, k(0), 1e-9)
	assert.Zero(t, k(1))
	assert.Zero(t, k(-1.5))
	for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
		assert.InDelta(t, k(x), k(-x), 1e-12)
		assert.Greater(t, k(x), 0.0)
		assert.Less(t, k(x+0.05), k(x))
	}
	assert.NotEqual(t, imaging.Hamming.Support, kernel.Hamming.Support)
}

func TestLibraryKernels(t *testing.T) {
	assert.Equal(t, 2.0, kernel.Mitchell.Support)
	assert.Equal(t, 2.0, kernel.CatmullRom.Support)
	assert.Equal(t, 2.0, kernel.Gaussian.Support)
	assert.Equal(t, 3.0, kernel.Lanczos3.Support)
	assert.InDelta(t, 8.0/9, kernel.Mitchell.Kernel(0), 1e-9)
	// interpolating kernels are zero at integer distances
	assert.InDelta(t, 0, kernel.CatmullRom.Kernel(1), 1e-12)
	assert.InDelta(t, 0, kernel.Lanczos3.Kernel(2), 1e-12)
}
