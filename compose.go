// compose.go - post + blur (+ tonemap) compositor.
//
// Grounded on video_compositor.go's additive-blend-then-clamp final pass, generalized to
// an optional excess-luma tonemap bleed.

package textmode

func (c *Console) compose(rect Rect) {
	if c.final == nil {
		return
	}
	bufRect := RectFromSize(0, 0, c.postW, c.postH)
	rect = rect.Intersection(bufRect)
	if rect.IsEmpty() {
		return
	}
	amount := c.opts.BlurAmount
	tonemap := c.opts.Tonemapping
	ratio := c.opts.TonemappingRatio

	for y := rect.Top; y < rect.Bottom; y++ {
		rowBase := y * c.postW
		for x := rect.Left; x < rect.Right; x++ {
			idx := rowBase + x
			post := c.post[idx]
			bl := c.blurPlane[idx]

			r := float64(post.R) + bl.R*amount
			g := float64(post.G) + bl.G*amount
			b := float64(post.B) + bl.B*amount

			if tonemap {
				excessR := maxFloat(0, r-255)
				excessG := maxFloat(0, g-255)
				excessB := maxFloat(0, b-255)
				exceedLuma := (excessR + excessG + excessB) / 3
				r += exceedLuma * ratio
				g += exceedLuma * ratio
				b += exceedLuma * ratio
			}

			c.final[idx] = RGBA{
				R: saturateU8(r), G: saturateU8(g), B: saturateU8(b), A: post.A,
			}
		}
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func saturateU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
