// blit.go - final compositor output blended into the caller's framebuffer.
//
// Grounded on video_backend_ebiten.go's pitch-aware row copy into the host's pixel
// buffer, generalized to also support source-over blending against existing output
// pixels when BlendMode is sourceOver.

package textmode

func (c *Console) blit(rect Rect) {
	if c.out.Pixels == nil || c.final == nil {
		return
	}
	bufRect := RectFromSize(0, 0, c.out.Width, c.out.Height)
	rect = rect.Intersection(bufRect)
	if rect.IsEmpty() {
		return
	}
	for y := rect.Top; y < rect.Bottom; y++ {
		rowOff := y * c.out.PitchBytes
		srcRow := y * c.postW
		for x := rect.Left; x < rect.Right; x++ {
			destOff := rowOff + x*4
			if destOff+4 > len(c.out.Pixels) {
				continue
			}
			src := c.final[srcRow+x]
			switch c.opts.BlendMode {
			case BlendCopy:
				c.out.Pixels[destOff] = src.R
				c.out.Pixels[destOff+1] = src.G
				c.out.Pixels[destOff+2] = src.B
				c.out.Pixels[destOff+3] = src.A
			default: // BlendSourceOver
				dst := RGBA{
					R: c.out.Pixels[destOff], G: c.out.Pixels[destOff+1],
					B: c.out.Pixels[destOff+2], A: c.out.Pixels[destOff+3],
				}
				blended := BlendColor(src, dst, src.A)
				c.out.Pixels[destOff] = blended.R
				c.out.Pixels[destOff+1] = blended.G
				c.out.Pixels[destOff+2] = blended.B
				c.out.Pixels[destOff+3] = blended.A
			}
		}
	}
}
