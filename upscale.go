// upscale.go - back-to-post nearest-neighbor upscaler and emissive buffer writer.
//
// Grounded on video_chip.go's integer-scale blit loop, generalized to also populate the
// premultiplied emissive plane for "shiny" cells and to fill border pixels outside the
// grid's footprint from the configured border color.

package textmode

// backToPost upscales every dirty back-space pixel into post-space by nearest-neighbor
// duplication, and fills the emissive buffer for shiny pixels. Border pixels outside the
// grid's scaled footprint are repainted from borderColor only when recomputeLayout last
// flagged the post buffer's geometry as changed, not on every dirty-cell render.
func (c *Console) backToPost() {
	if c.borderDirty {
		c.paintBorder()
		c.borderDirty = false
	}

	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			i := c.index(col, row)
			if !c.charDirty[i] {
				continue
			}
			c.upscaleCell(col, row, c.grid[i])
		}
	}
}

func (c *Console) paintBorder() {
	if c.post == nil {
		return
	}
	border := c.palette.Entry(int(c.opts.BorderColor))
	gridW := c.cols * c.font.CharWidth * c.scale
	gridH := c.rows * c.font.CharHeight * c.scale
	left, top := c.marginX, c.marginY
	right, bottom := left+gridW, top+gridH

	var emit U16Quad
	if c.opts.BorderShiny {
		emit = LinearU16Premul(border)
	}

	for y := 0; y < c.postH; y++ {
		inGridRow := y >= top && y < bottom
		for x := 0; x < c.postW; x++ {
			if inGridRow && x >= left && x < right {
				continue
			}
			idx := y*c.postW + x
			c.post[idx] = border
			c.emit[idx] = emit
		}
	}
}

func (c *Console) upscaleCell(col, row int, cell CharData) {
	shiny := cell.Style&StyleShiny != 0
	cellW, cellH := c.font.CharWidth, c.font.CharHeight
	backBaseX, backBaseY := col*cellW, row*cellH
	postBaseX := c.marginX + col*cellW*c.scale
	postBaseY := c.marginY + row*cellH*c.scale

	for y := 0; y < cellH; y++ {
		backRow := (backBaseY + y) * c.backW
		for x := 0; x < cellW; x++ {
			backIdx := backRow + backBaseX + x
			px := c.backPixels[backIdx]
			isFg := c.backFlags[backIdx] == 1

			var emit U16Quad
			if shiny && ((isFg && c.opts.BlurForeground) || (!isFg && c.opts.BlurBackground)) {
				emit = LinearU16Premul(px)
			}

			for sy := 0; sy < c.scale; sy++ {
				destRow := (postBaseY + y*c.scale + sy) * c.postW
				for sx := 0; sx < c.scale; sx++ {
					idx := destRow + postBaseX + x*c.scale + sx
					c.post[idx] = px
					c.emit[idx] = emit
				}
			}
		}
	}
}
