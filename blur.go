// blur.go - separable Gaussian blur of the emissive buffer.
//
// Grounded on video_compositor.go's two-pass box blur (horizontal pass into a scratch
// buffer, vertical pass reading it back), generalized to an erf-derived kernel,
// transposed intermediate storage, and a blue-noise modulated vertical pass.

package textmode

import "math"

// RGBAF32 is a floating-point RGBA pixel used for the blur output plane, which must hold
// values that can exceed 255 before the compositor's tonemap step clamps them.
type RGBAF32 struct {
	R, G, B, A float64
}

// applyBlur runs the horizontal pass (writing the transposed emitH buffer) followed by
// the vertical pass (reading it back and writing blurPlane), over the blur rect grown by
// the kernel radius.
func (c *Console) applyBlur(blurRectPixels Rect) {
	if c.kernel == nil || len(c.kernel) == 0 || c.post == nil {
		return
	}
	k := len(c.kernel) / 2
	bufRect := RectFromSize(0, 0, c.postW, c.postH)

	hRect := blurRectPixels.GrowXY(k, 0).Intersection(bufRect)
	c.blurHorizontal(hRect, k)

	vRect := blurRectPixels.Grow(k).Intersection(bufRect)
	c.blurVertical(vRect, k)
}

func (c *Console) blurHorizontal(rect Rect, k int) {
	if rect.IsEmpty() {
		return
	}
	kernel := c.kernel
	for y := rect.Top; y < rect.Bottom; y++ {
		rowBase := y * c.postW
		for x := rect.Left; x < rect.Right; x++ {
			var r, g, b, a float64
			for n := -k; n <= k; n++ {
				sx := x + n
				if sx < 0 || sx >= c.postW {
					continue
				}
				weight := kernel[n+k]
				px := c.emit[rowBase+sx]
				r += float64(px.R) * weight
				g += float64(px.G) * weight
				b += float64(px.B) * weight
				a += float64(px.A) * weight
			}
			c.emitH[x*c.postH+y] = U16Quad{
				R: saturateU16(r), G: saturateU16(g), B: saturateU16(b), A: saturateU16(a),
			}
		}
	}
}

func (c *Console) blurVertical(rect Rect, k int) {
	if rect.IsEmpty() {
		return
	}
	kernel := c.kernel
	noiseScale := c.opts.NoiseAmount * 0.0006
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			var r, g, b, a float64
			for n := -k; n <= k; n++ {
				sy := y + n
				if sy < 0 || sy >= c.postH {
					continue
				}
				weight := kernel[n+k]
				px := c.emitH[x*c.postH+sy]
				r += float64(px.R) * weight
				g += float64(px.G) * weight
				b += float64(px.B) * weight
				a += float64(px.A) * weight
			}
			r, g, b, a = math.Sqrt(r), math.Sqrt(g), math.Sqrt(b), math.Sqrt(a)
			if c.opts.NoiseTexture {
				mod := 1 + (float64(noiseAt(x, y))-127.5)*noiseScale
				r *= mod
				g *= mod
				b *= mod
				a *= mod
			}
			c.blurPlane[y*c.postW+x] = RGBAF32{R: r, G: g, B: b, A: a}
		}
	}
}

func saturateU16(v float64) uint16 {
	if v < 0 {
		return 0
	}
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}
