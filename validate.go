// validate.go - the dirty-rectangle validator.
//
// Grounded on video_chip.go's DirtyRegion tracking (full-invalidate flag fast path plus
// per-pixel diffing against a shadow buffer), generalized from pixel-granularity to
// cell-granularity with a two-rect (change/blur) split.

package textmode

// validate recomputes the change and blur text-space rectangles if anything has been
// marked dirty since the last call, consuming the pending diff: it resyncs cache against
// grid and clears the dirty sources, so a following validate() call with no intervening
// mutation reports no pending update. If nothing has been marked dirty, the memoized fact
// that a previous call already consumed every pending change means there is nothing left
// to report, so it returns EmptyRect/EmptyRect in O(1) rather than replaying whatever the
// last real computation found.
func (c *Console) validate() (changeRect, blurRect Rect) {
	return c.computeValidation(true)
}

// peekValidation reports the same change/blur rects validate() would, without consuming
// them: cache, the dirty flags, and memoValid are left untouched, so a later validate()
// call still sees the diff and performs the real rasterize/blit work for it. Used by
// HasPendingUpdate and GetUpdateRect, which must be safely callable any number of times
// before the Render() that actually applies the pending change.
func (c *Console) peekValidation() (changeRect, blurRect Rect) {
	return c.computeValidation(false)
}

func (c *Console) computeValidation(consume bool) (changeRect, blurRect Rect) {
	if c.memoValid && !c.dirtyValidation && !c.dirtyAllChars {
		return EmptyRect, EmptyRect
	}

	if c.dirtyAllChars {
		full := RectFromSize(0, 0, c.cols, c.rows)
		if consume {
			for i := range c.charDirty {
				c.charDirty[i] = true
			}
			c.finishValidation()
		}
		return full, full
	}

	changeRect = EmptyRect
	blurRect = EmptyRect
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			i := c.index(col, row)
			cell := c.grid[i]
			cached := c.cache[i]

			fgDirty := c.palette.IsDirty(int(cell.Fg()))
			bgDirty := c.palette.IsDirty(int(cell.Bg()))
			blinkable := cell.Style&StyleBlink != 0
			redraw := cell != cached || fgDirty || bgDirty || (blinkable && c.blinkPhaseChanged)

			shiny := cell.Style&StyleShiny != 0
			wasShiny := cached.Style&StyleShiny != 0
			blurChanged := (redraw && (shiny || wasShiny)) || (c.blurGloballyDirty && shiny)

			if consume {
				c.charDirty[i] = redraw
			}
			if redraw {
				changeRect = changeRect.MergeWithPoint(col, row)
			}
			if blurChanged {
				blurRect = blurRect.MergeWithPoint(col, row)
			}
		}
	}
	if consume {
		c.finishValidation()
	}
	return changeRect, blurRect
}

// finishValidation snapshots the grid into cache and clears the per-frame dirty sources
// that validate() just consumed.
func (c *Console) finishValidation() {
	copy(c.cache, c.grid)
	c.palette.ClearDirty()
	c.blinkPhaseChanged = false
	c.blurGloballyDirty = false
	c.dirtyAllChars = false
	c.dirtyValidation = false
	c.memoValid = true
}
