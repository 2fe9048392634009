// Package kernel holds the filters handed to backends that accept custom
// kernels. Apart from Hamming these are the kernels imaging exports, so every
// backend weights the same filter the same way.
package kernel

import (
	"math"

	"github.com/disintegration/imaging"
)

// SupportHamming is the support of Hamming in source pixels.
const SupportHamming = 1.0

var (
	// Hamming is a sinc windowed by a Hamming window over [-1, 1], as Pillow
	// defines it. imaging.Hamming uses a support of 3.
	Hamming    = imaging.ResampleFilter{Support: SupportHamming, Kernel: hamming}
	Mitchell   = imaging.MitchellNetravali
	CatmullRom = imaging.CatmullRom
	Gaussian   = imaging.Gaussian
	Lanczos3   = imaging.Lanczos
)

func sinc(x float64) float64 {
	if x > -5e-9 && x < 5e-9 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

func hamming(x float64) float64 {
	x = math.Abs(x)
	if x >= SupportHamming {
		return 0
	}
	if x == 0 {
		return 1
	}
	return sinc(x) * (0.54 + 0.46*math.Cos(math.Pi*x))
}
