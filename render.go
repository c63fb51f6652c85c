// render.go - the render-cycle orchestrator and blink clock.
//
// Grounded on video_chip.go's per-frame Update/Render split and terminal_host.go's
// cursor-blink accumulator, generalized to a fixed six-stage pipeline and a two-rect
// (change/blur) update-tracking scheme.

package textmode

import "math"

// Render executes one full pipeline pass: recomputeLayout, invalidateChars (via
// validate), rasterizeDirtyCells, backToPost, applyBlur, compose, blit, strictly in that
// order. It is a no-op beyond layout/validation if nothing changed.
func (c *Console) Render() {
	c.recomputeLayout()
	changeRect, blurRect := c.validate()

	union := changeRect.Merge(blurRect)
	if union.IsEmpty() {
		c.hasPending = false
		c.pendingRect = EmptyRect
		return
	}

	c.rasterizeDirtyCells()
	c.backToPost()

	blurPixelRect := c.textRectToPixels(blurRect)
	c.applyBlur(blurPixelRect)

	k := c.filterWidth / 2
	extended := c.textRectToPixels(union).Grow(k).Intersection(RectFromSize(0, 0, c.postW, c.postH))
	c.compose(extended)
	c.blit(extended)

	c.pendingRect = extended.Intersection(RectFromSize(0, 0, c.out.Width, c.out.Height))
	c.hasPending = !c.pendingRect.IsEmpty()
}

// textRectToPixels maps a text-space (column,row) rectangle into post-space pixels,
// accounting for cell size, integer scale, and layout margins.
func (c *Console) textRectToPixels(r Rect) Rect {
	if r.IsEmpty() {
		return EmptyRect
	}
	cw, ch := c.font.CharWidth*c.scale, c.font.CharHeight*c.scale
	return Rect{
		Left:   c.marginX + r.Left*cw,
		Top:    c.marginY + r.Top*ch,
		Right:  c.marginX + r.Right*cw,
		Bottom: c.marginY + r.Bottom*ch,
	}
}

// HasPendingUpdate reports whether the next Render call would touch any output pixels,
// without performing the expensive rasterize/blur/blit stages. Unlike Render, it does not
// consume the pending diff, so it is safe to call any number of times before Render.
func (c *Console) HasPendingUpdate() bool {
	c.recomputeLayout()
	changeRect, blurRect := c.peekValidation()
	return !changeRect.Merge(blurRect).IsEmpty()
}

// GetUpdateRect returns the output-space rectangle the next Render call would touch. If
// AllowOutCaching is disabled, it conservatively reports the whole output rect whenever
// any update is pending. Like HasPendingUpdate, it peeks at the pending diff rather than
// consuming it, leaving the diff intact for the following Render call.
func (c *Console) GetUpdateRect() Rect {
	c.recomputeLayout()
	changeRect, blurRect := c.peekValidation()
	union := changeRect.Merge(blurRect)
	if union.IsEmpty() {
		return EmptyRect
	}
	if !c.opts.AllowOutCaching {
		return RectFromSize(0, 0, c.out.Width, c.out.Height)
	}
	k := c.filterWidth / 2
	return c.textRectToPixels(union).Grow(k).Intersection(RectFromSize(0, 0, c.out.Width, c.out.Height))
}

// Hit maps output-space pixel coordinates back to a grid cell, the inverse of
// textRectToPixels for a single point. It returns (-1, -1, false) if (x,y) falls outside
// the grid's laid-out footprint.
func (c *Console) Hit(x, y int) (col, row int, ok bool) {
	cw, ch := c.font.CharWidth*c.scale, c.font.CharHeight*c.scale
	if cw == 0 || ch == 0 {
		return -1, -1, false
	}
	lx, ly := x-c.marginX, y-c.marginY
	if lx < 0 || ly < 0 {
		return -1, -1, false
	}
	col, row = lx/cw, ly/ch
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return -1, -1, false
	}
	return col, row, true
}

// Update advances the blink clock by dtSeconds, flipping the blink-on phase and marking
// blinkable cells dirty whenever a half-period boundary is crossed. Pauses longer
// than one full period are clamped to exactly one period's worth of advancement.
func (c *Console) Update(dtSeconds float64) {
	if dtSeconds < 0 {
		dtSeconds = 0
	}
	period := float64(c.opts.BlinkTimeMS)
	if period <= 0 {
		return
	}
	deltaMS := dtSeconds * 1000
	if deltaMS > period {
		deltaMS = period
	}
	half := period / 2

	prevHalves := math.Floor(c.blinkAccumMS / half)
	next := c.blinkAccumMS + deltaMS
	nextHalves := math.Floor(next / half)
	if int64(nextHalves) != int64(prevHalves) {
		c.blinkOn = !c.blinkOn
		c.blinkPhaseChanged = true
		c.dirtyValidation = true
		c.memoValid = false
	}
	c.blinkAccumMS = math.Mod(next, period)
}
