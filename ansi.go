// ansi.go - the ANSI/VT100 escape interpreter over UTF-8 or CP437 bytes.
//
// Grounded on terminal_io.go's ESC-state-machine for SGR/cursor handling, generalized
// with bengarrett-ansibump's Decoder.Read CSI-argument parsing loop and its use of
// golang.org/x/text/encoding/charmap for CP437 decoding, since terminal_io.go only ever
// consumed its own fixed internal encoding.

package textmode

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// PrintANS interprets data as UTF-8-encoded ANSI text, drawing at origin (baseX, baseY).
// The persistent cursor is restored to its pre-call position on return.
func (c *Console) PrintANS(data []byte, baseX, baseY int) {
	c.printANS(data, baseX, baseY, false)
}

// PrintANSCP437 interprets data as CP437-encoded ANSI text, drawing at origin
// (baseX, baseY).
func (c *Console) PrintANSCP437(data []byte, baseX, baseY int) {
	c.printANS(data, baseX, baseY, true)
}

func (c *Console) printANS(data []byte, baseX, baseY int, cp437 bool) {
	startCol, startRow := c.CursorCol(), c.CursorRow()
	defer c.Locate(startCol, startRow)

	col, row := baseX, baseY
	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b == '\n':
			row++
			col = baseX
			i++
		case b == '\r':
			col = baseX
			i++
		case b == 0x1A:
			return
		case b == 0x1B:
			next, newCol, ok := c.parseEscape(data, i, col)
			if !ok {
				return
			}
			i, col = next, newCol
		default:
			var r rune
			var size int
			if cp437 {
				r = charmap.CodePage437.DecodeByte(b)
				size = 1
			} else {
				rr, sz := utf8.DecodeRune(data[i:])
				if rr == utf8.RuneError && sz <= 1 {
					return
				}
				r, size = rr, sz
			}
			if col >= 0 && col < c.cols && row >= 0 && row < c.rows {
				st := c.stack.top()
				c.writeCell(col, row, r, st.Fg, st.Bg, st.Style)
			}
			col++
			i += size
		}
	}
}

// parseEscape consumes one ESC sequence starting at data[i]=='\x1b'. ok is false only
// when the sequence runs off the end of data before a terminator is found.
func (c *Console) parseEscape(data []byte, i, col int) (next, newCol int, ok bool) {
	j := i + 1
	if j >= len(data) {
		return j, col, false
	}
	switch data[j] {
	case '[':
		return c.parseCSI(data, j+1, col)
	case ']':
		j++
		for j < len(data) && data[j] != 0x07 {
			j++
		}
		if j < len(data) {
			j++ // consume BEL
		}
		return j, col, true
	default:
		return j, col, true // lone ESC: consumed, no effect
	}
}

func (c *Console) parseCSI(data []byte, i, col int) (next, newCol int, ok bool) {
	j := i
	if j < len(data) && data[j] == '=' {
		j++
	}
	var args []int
	for {
		start := j
		for j < len(data) && data[j] >= '0' && data[j] <= '9' {
			j++
		}
		if j > start {
			n, _ := strconv.Atoi(string(data[start:j]))
			args = append(args, n)
		} else {
			args = append(args, 0)
		}
		if j < len(data) && data[j] == ';' && len(args) < 8 {
			j++
			continue
		}
		break
	}
	if j >= len(data) {
		return j, col, false
	}
	term := data[j]
	j++
	switch term {
	case 'm':
		c.applySGR(args)
	case 'C':
		if len(args) == 1 {
			col += args[0]
		}
	}
	return j, col, true
}

func (c *Console) applySGR(args []int) {
	greyIdx, _ := colorIndexByName("grey")
	blackIdx, _ := colorIndexByName("black")

	for i := 0; i < len(args); i++ {
		code := args[i]
		switch {
		case code == 0:
			c.SetStyle(StyleNone)
			c.SetFg(greyIdx)
			c.SetBg(blackIdx)
		case code == 1:
			c.AddStyle(StyleBold)
		case code == 21:
			c.ClearStyle(StyleBold)
		case code == 3 || code == 5 || code == 6:
			c.AddStyle(StyleBlink)
		case code == 25:
			c.ClearStyle(StyleBlink)
		case code == 4:
			c.AddStyle(StyleUnderline)
		case code == 24:
			c.ClearStyle(StyleUnderline)
		case code >= 30 && code <= 37:
			c.SetFg(byte(code - 30))
		case code >= 40 && code <= 47:
			c.SetBg(byte(code - 40))
		case code >= 90 && code <= 97:
			c.SetFg(byte(code - 90 + 8))
		case code >= 100 && code <= 107:
			c.SetBg(byte(code - 100 + 8))
		case code == 38 || code == 48:
			i = c.applyExtendedColor(args, i, code == 38)
		case code == 39:
			c.SetFg(greyIdx)
		case code == 49:
			c.SetBg(blackIdx)
		}
	}
}

// applyExtendedColor handles "38;5;N", "38;2;r;g;b" (and the 48-prefixed bg forms),
// returning the index of the last consumed argument.
func (c *Console) applyExtendedColor(args []int, i int, isFg bool) int {
	if i+1 >= len(args) {
		return i
	}
	mode := args[i+1]
	switch mode {
	case 5:
		if i+2 >= len(args) {
			return i + 1
		}
		r, g, b := c.xterm256ToRGB(args[i+2])
		idx := byte(c.palette.FindColorMatch(r, g, b))
		if isFg {
			c.SetFg(idx)
		} else {
			c.SetBg(idx)
		}
		return i + 2
	case 2:
		if i+4 >= len(args) {
			return i + 1
		}
		r, g, b := uint8(args[i+2]), uint8(args[i+3]), uint8(args[i+4])
		idx := byte(c.palette.FindColorMatch(r, g, b))
		if isFg {
			c.SetFg(idx)
		} else {
			c.SetBg(idx)
		}
		return i + 4
	default:
		return i + 1
	}
}

// xterm256ToRGB maps one index of the conceptual 256-color xterm palette to RGB: the
// 16 low indices defer to the active palette, 16-231 is a 6x6x6 color cube, and 232-255
// is a 24-step greyscale ramp.
func (c *Console) xterm256ToRGB(n int) (r, g, b uint8) {
	switch {
	case n < 16:
		e := c.palette.Entry(n)
		return e.R, e.G, e.B
	case n <= 231:
		idx := n - 16
		ri, gi, bi := idx/36, (idx/6)%6, idx%6
		scale := func(v int) uint8 { return uint8(((255 * v) + 3) / 5) }
		return scale(ri), scale(gi), scale(bi)
	default:
		v := n - 232
		val := uint8(((255 * v) + 12) / 23)
		return val, val, val
	}
}
