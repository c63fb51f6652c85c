// layout.go - scale, margin, and filter-width computation.
//
// Grounded on video_chip.go's scaleImageToMode, generalized from a single fixed output
// mode to a caller-resizable framebuffer with alignment-driven letterboxing.

package textmode

// recomputeLayout derives scale/margins from the current grid and output dimensions,
// (re)allocating post-space buffers and setting borderDirty (plus a full character
// redraw) whenever scale, margins, or the post buffer's size actually change, and
// blurGloballyDirty whenever the blur filter width changes.
func (c *Console) recomputeLayout() {
	cellW, cellH := c.font.CharWidth, c.font.CharHeight
	gridW, gridH := c.cols*cellW, c.rows*cellH

	scale := 1
	if c.out.Width > 0 && c.out.Height > 0 && gridW > 0 && gridH > 0 {
		sx := c.out.Width / gridW
		sy := c.out.Height / gridH
		scale = min(sx, sy)
		if scale < 1 {
			scale = 1
		}
	}

	remX := c.out.Width - gridW*scale
	remY := c.out.Height - gridH*scale
	if remX < 0 {
		remX = 0
	}
	if remY < 0 {
		remY = 0
	}
	marginX := alignOffset(c.opts.HAlign, remX)
	marginY := alignOffset(c.opts.VAlign, remY)

	newFilterWidth := FilterWidthForCellScale(cellW, scale, c.opts.BlurScale)

	changed := scale != c.scale || marginX != c.marginX || marginY != c.marginY ||
		c.postW != c.out.Width || c.postH != c.out.Height
	filterChanged := newFilterWidth != c.filterWidth

	c.scale = scale
	c.marginX, c.marginY = marginX, marginY
	c.filterWidth = newFilterWidth
	if filterChanged || c.kernel == nil {
		c.kernel = GaussianKernel(newFilterWidth)
	}

	if changed || c.post == nil {
		c.allocatePostBuffers(c.out.Width, c.out.Height)
		c.dirtyAllChars = true
		c.borderDirty = true
	}
	if filterChanged {
		c.blurGloballyDirty = true
	}
}

func alignOffset(a Align, remaining int) int {
	switch a {
	case AlignStart:
		return 0
	case AlignEnd:
		return remaining
	default: // AlignCenter
		return remaining / 2
	}
}

func (c *Console) allocatePostBuffers(w, h int) {
	c.postW, c.postH = w, h
	n := w * h
	c.post = make([]RGBA, n)
	c.emit = make([]U16Quad, n)
	c.emitH = make([]U16Quad, n)
	c.blurPlane = make([]RGBAF32, n)
	c.final = make([]RGBA, n)
}
