// rasterize.go - per-dirty-cell glyph rendering into the back buffer.
//
// Grounded on video_terminal.go's per-cell glyph blit into its framebuffer, generalized
// from a fixed 8x16 fg/bg paint to a back-space RGBA+flag-plane model, with bold
// (a one-pixel rightward smear) and underline (a forced bottom row) added the way a
// classic text-mode adapter fakes both without a second font.

package textmode

// rasterizeDirtyCells redraws every cell flagged in charDirty into the back buffer.
func (c *Console) rasterizeDirtyCells() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			i := c.index(col, row)
			if !c.charDirty[i] {
				continue
			}
			c.rasterizeCell(col, row, c.grid[i])
		}
	}
}

func (c *Console) rasterizeCell(col, row int, cell CharData) {
	glyph := c.font.GlyphFor(cell.Glyph)
	fg := c.palette.Entry(int(cell.Fg()))
	bg := c.palette.BackgroundEntry(int(cell.Bg()))
	bold := cell.Style&StyleBold != 0
	underline := cell.Style&StyleUnderline != 0

	baseX, baseY := col*GlyphWidth, row*GlyphHeight
	for y := 0; y < GlyphHeight; y++ {
		rowBits := glyph[y]
		if bold {
			rowBits |= rowBits >> 1
		}
		if underline && y == GlyphHeight-1 {
			rowBits = 0xFF
		}
		destRow := (baseY + y) * c.backW
		for x := 0; x < GlyphWidth; x++ {
			set := rowBits&(0x80>>x) != 0
			idx := destRow + baseX + x
			if set {
				c.backPixels[idx] = fg
				c.backFlags[idx] = 1
			} else {
				c.backPixels[idx] = bg
				c.backFlags[idx] = 0
			}
		}
	}
}
