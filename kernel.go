// kernel.go - separable Gaussian kernel generation for the blur pass.

package textmode

import "math"

// MaxFilterWidth is the hard cap on the 1-D blur kernel width.
const MaxFilterWidth = 63

// FilterWidthForCellScale computes round(cw*scale*blurScale*2.5), clamped to an odd value
// in [1, MaxFilterWidth].
func FilterWidthForCellScale(cellWidth, scale int, blurScale float64) int {
	w := int(math.Round(float64(cellWidth*scale)*blurScale*2.5))
	if w < 1 {
		w = 1
	}
	if w%2 == 0 {
		w++
	}
	if w > MaxFilterWidth {
		w = MaxFilterWidth
		if w%2 == 0 {
			w--
		}
	}
	return w
}

// GaussianKernel builds the 1-D, DC-normalized kernel of the given odd width:
// sigma = (2k)/8, mu = 0, K[i] = Phi(i-k+0.5) - Phi(i-k-0.5) (each tap integrates the
// Gaussian over the unit interval centered on it), normalized so the kernel sums to 1.
func GaussianKernel(width int) []float64 {
	if width < 1 {
		width = 1
	}
	if width%2 == 0 {
		width++
	}
	k := width / 2
	sigma := float64(2*k) / 8
	if sigma <= 0 {
		kernel := make([]float64, width)
		kernel[k] = 1
		return kernel
	}

	phi := func(x float64) float64 {
		return 0.5 * math.Erf(x/(math.Sqrt2*sigma))
	}

	kernel := make([]float64, width)
	sum := 0.0
	for i := 0; i < width; i++ {
		n := float64(i - k)
		kernel[i] = phi(n+0.5) - phi(n-0.5)
		sum += kernel[i]
	}
	if sum != 0 {
		for i := range kernel {
			kernel[i] /= sum
		}
	}
	return kernel
}
