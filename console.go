// console.go - the Console type: grid storage, cursor/state, and the text-mutation API.
//
// Grounded on video_terminal.go's Terminal struct (grid + cursor + attribute stack) and
// video_chip.go's lazy buffer (re)allocation on size change, generalized to a
// CharData/state-stack model and multi-space buffer set.

package textmode

import "fmt"

// RenderError reports a precondition violation from a configuration call; these
// are caller-contract violations, not recoverable runtime failures.
type RenderError struct {
	Op  string
	Msg string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("textmode: %s: %s", e.Op, e.Msg)
}

// OutputBuffer is the caller-owned framebuffer borrowed for the duration of each
// render/hasPendingUpdate/getUpdateRect call.
type OutputBuffer struct {
	Pixels     []byte
	Width      int
	Height     int
	PitchBytes int
}

// Console owns the full text-mode rendering pipeline: grid, cursor/color/style state,
// palette, font, options, and every internal pixel buffer. It is not safe for concurrent
// use by multiple goroutines on the same instance.
type Console struct {
	cols, rows int

	grid      []CharData
	cache     []CharData
	charDirty []bool

	dirtyAllChars bool
	// dirtyValidation is set true by every mutator that can change visible output,
	// cleared once the validator has run for a frame.
	dirtyValidation bool

	stack   *stateStack
	font    *Font
	palette *Palette
	opts    Options

	out OutputBuffer

	// Back-space buffers: raw glyph pixels at 1x scale, no margins.
	backW, backH int
	backPixels   []RGBA
	backFlags    []byte

	// Post-space buffers: output-resolution planes.
	postW, postH         int
	scale                int
	marginX, marginY     int
	post                 []RGBA
	emit                 []U16Quad
	emitH                []U16Quad // transposed: indexed [x*postH+y]
	blurPlane             []RGBAF32
	final                []RGBA

	filterWidth       int
	kernel            []float64
	blurGloballyDirty bool
	borderDirty       bool

	blinkAccumMS     float64
	blinkOn          bool
	blinkPhaseChanged bool

	// Validator memo: true when the last validate() call's result has already been fully
	// consumed and nothing has been marked dirty since, so the next call can report
	// "no pending update" without recomputing.
	memoValid bool

	// render()/hasPendingUpdate()/getUpdateRect() bookkeeping.
	pendingRect    Rect
	hasPending     bool
}

// NewConsole allocates a console with the given grid dimensions, the VGA preset palette,
// and the built-in default font. cols and rows must be >= 1.
func NewConsole(cols, rows int) (*Console, error) {
	c := &Console{}
	c.font = DefaultFont
	c.palette = NewPalette(PaletteVGA)
	c.opts = NewOptions()
	c.stack = newStateStack()
	if err := c.Size(cols, rows); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Console) index(col, row int) int { return row*c.cols + col }

// Size reallocates the text/cache/dirty arrays if dimensions changed, clears the screen,
// and forces a full redraw. Preconditions cols, rows >= 1.
func (c *Console) Size(cols, rows int) error {
	if cols < 1 || rows < 1 {
		return &RenderError{Op: "size", Msg: "cols and rows must be >= 1"}
	}
	if cols != c.cols || rows != c.rows {
		c.cols, c.rows = cols, rows
		n := cols * rows
		c.grid = make([]CharData, n)
		c.cache = make([]CharData, n)
		c.charDirty = make([]bool, n)
		c.backW, c.backH = cols*GlyphWidth, rows*GlyphHeight
		c.backPixels = make([]RGBA, c.backW*c.backH)
		c.backFlags = make([]byte, c.backW*c.backH)
	}
	c.Cls()
	c.dirtyAllChars = true
	c.dirtyValidation = true
	c.memoValid = false
	return nil
}

// Columns returns the grid width in cells.
func (c *Console) Columns() int { return c.cols }

// Rows returns the grid height in cells.
func (c *Console) Rows() int { return c.rows }

// SetFont replaces the active font and forces a full back-buffer redraw.
func (c *Console) SetFont(f *Font) {
	if f == nil {
		return
	}
	c.font = f
	c.dirtyAllChars = true
	c.dirtyValidation = true
	c.memoValid = false
}

// SetPalette replaces the whole palette, marking every entry dirty.
func (c *Console) SetPalette(p *Palette) {
	if p == nil {
		return
	}
	c.palette = p
	for i := 0; i < 16; i++ {
		c.palette.dirty[i] = true
	}
	c.dirtyValidation = true
	c.memoValid = false
}

// SetPaletteEntry sets one palette entry by index, marking it dirty iff changed.
func (c *Console) SetPaletteEntry(index int, r, g, b, a byte) {
	if index < 0 || index >= 16 {
		return
	}
	c.palette.SetEntry(index, RGBA{r, g, b, a})
	c.dirtyValidation = true
	c.memoValid = false
}

// PaletteEntry returns the color stored at index, or zero if out of range.
func (c *Console) PaletteEntry(index int) RGBA {
	if index < 0 || index >= 16 {
		return RGBA{}
	}
	return c.palette.Entry(index)
}

// SetOptions replaces the render options wholesale; any scale/margin-affecting field
// forces a layout recompute on the next render.
func (c *Console) SetOptions(o Options) {
	c.opts = o
	c.dirtyValidation = true
	c.memoValid = false
}

// Options returns the currently active option set.
func (c *Console) Options() Options { return c.opts }

// SetOutbuf points the console at the caller's framebuffer, borrowed for the duration of
// each render call. Reallocates post-space buffers if the size changed.
func (c *Console) SetOutbuf(pixels []byte, width, height, pitchBytes int) {
	resized := width != c.out.Width || height != c.out.Height
	c.out = OutputBuffer{Pixels: pixels, Width: width, Height: height, PitchBytes: pitchBytes}
	if resized {
		c.postW, c.postH = 0, 0 // forces layout.go's recomputeLayout to reallocate
	}
	c.dirtyValidation = true
	c.memoValid = false
}

// CharAt returns a mutable reference into the grid. Direct mutation through the returned
// pointer requires the caller to also call MarkDirty, since it bypasses the mutators that
// normally set dirtyValidation themselves.
func (c *Console) CharAt(col, row int) *CharData {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return nil
	}
	return &c.grid[c.index(col, row)]
}

// MarkDirty tells the validator that the grid was mutated outside the normal text API
// (e.g. via a CharAt pointer).
func (c *Console) MarkDirty() {
	c.dirtyValidation = true
	c.memoValid = false
}

// Characters returns a slice view over the live grid in row-major order.
func (c *Console) Characters() []CharData {
	return c.grid
}

// Locate sets the cursor position; out-of-range or -1 values leave the corresponding
// coordinate unchanged.
func (c *Console) Locate(col, row int) {
	st := c.stack.top()
	if col >= 0 && col < c.cols {
		st.Col = col
	}
	if row >= 0 && row < c.rows {
		st.Row = row
	}
}

// Column sets the cursor column only; out-of-range values are ignored.
func (c *Console) Column(col int) {
	if col >= 0 && col < c.cols {
		c.stack.top().Col = col
	}
}

// Row sets the cursor row only; out-of-range values are ignored.
func (c *Console) Row(row int) {
	if row >= 0 && row < c.rows {
		c.stack.top().Row = row
	}
}

// CursorCol and CursorRow report the active cursor position.
func (c *Console) CursorCol() int { return c.stack.top().Col }
func (c *Console) CursorRow() int { return c.stack.top().Row }

// SetFg sets the foreground palette index of the top state; values are masked to their
// low four bits (0..15) rather than rejected.
func (c *Console) SetFg(index byte) { c.stack.top().Fg = index & 0x0F }

// SetBg sets the background palette index of the top state.
func (c *Console) SetBg(index byte) { c.stack.top().Bg = index & 0x0F }

// Fg and Bg report the active foreground/background palette indices.
func (c *Console) Fg() byte { return c.stack.top().Fg }
func (c *Console) Bg() byte { return c.stack.top().Bg }

// SetStyle replaces the top state's style flags wholesale.
func (c *Console) SetStyle(s Style) { c.stack.top().Style = s }

// AddStyle ORs a flag into the top state's style (used by markup/ANSI for b/u/blink/shiny).
func (c *Console) AddStyle(s Style) { c.stack.top().Style |= s }

// ClearStyle clears a flag from the top state's style.
func (c *Console) ClearStyle(s Style) { c.stack.top().Style &^= s }

// StyleFlags reports the active style flags.
func (c *Console) StyleFlags() Style { return c.stack.top().Style }

// Save duplicates the top state onto the stack; silent no-op on overflow.
func (c *Console) Save() { c.stack.save() }

// Restore pops the state stack; silent no-op on underflow.
func (c *Console) Restore() { c.stack.restore() }

// Cls sets every cell to the default and resets state to default.
func (c *Console) Cls() {
	for i := range c.grid {
		c.grid[i] = DefaultCharData
	}
	c.stack.reset()
	c.dirtyAllChars = true
	c.dirtyValidation = true
	c.memoValid = false
}

func (c *Console) writeCell(col, row int, cp rune, fg, bg byte, style Style) {
	c.grid[c.index(col, row)] = CharData{Glyph: cp, Color: packColor(fg, bg), Style: style}
	c.dirtyValidation = true
	c.memoValid = false
}

// PrintRune writes one codepoint at the cursor (dropped if out of bounds), then advances
// the column, triggering a newline on overflow.
func (c *Console) PrintRune(cp rune) {
	st := c.stack.top()
	if st.Col >= 0 && st.Col < c.cols && st.Row >= 0 && st.Row < c.rows {
		c.writeCell(st.Col, st.Row, cp, st.Fg, st.Bg, st.Style)
	}
	st.Col++
	if st.Col >= c.cols {
		c.Newline()
	}
}

// Print writes each codepoint of text in order via PrintRune.
func (c *Console) Print(text string) {
	for _, r := range text {
		c.PrintRune(r)
	}
}

// Println writes text followed by a newline.
func (c *Console) Println(text string) {
	c.Print(text)
	c.Newline()
}

// Newline moves the cursor to column 0 of the next row, scrolling the grid up by one row
// (and marking it fully dirty) if that would overflow.
func (c *Console) Newline() {
	st := c.stack.top()
	st.Col = 0
	st.Row++
	if st.Row >= c.rows {
		c.scrollUp()
		st.Row = c.rows - 1
	}
}

func (c *Console) scrollUp() {
	copy(c.grid, c.grid[c.cols:])
	for i := c.cols * (c.rows - 1); i < len(c.grid); i++ {
		c.grid[i] = DefaultCharData
	}
	c.dirtyAllChars = true
	c.dirtyValidation = true
	c.memoValid = false
}

// FillRect writes ch into every cell of the w x h rectangle at (x,y), using the active
// fg/bg/style, clipped to the grid.
func (c *Console) FillRect(x, y, w, h int, ch rune) {
	st := c.stack.top()
	for row := y; row < y+h; row++ {
		if row < 0 || row >= c.rows {
			continue
		}
		for col := x; col < x+w; col++ {
			if col < 0 || col >= c.cols {
				continue
			}
			c.writeCell(col, row, ch, st.Fg, st.Bg, st.Style)
		}
	}
}

// Box draws an 8-glyph frame of w x h using the given octet style; a no-op if w < 2 or
// h < 2.
func (c *Console) Box(x, y, w, h int, style BoxStyle) {
	if w < 2 || h < 2 {
		return
	}
	o := octetFor(style)
	st := c.stack.top()
	put := func(col, row int, r rune) {
		if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
			return
		}
		c.writeCell(col, row, r, st.Fg, st.Bg, st.Style)
	}
	put(x, y, o.TopLeft)
	put(x+w-1, y, o.TopRight)
	put(x, y+h-1, o.BottomLeft)
	put(x+w-1, y+h-1, o.BottomRight)
	for col := x + 1; col < x+w-1; col++ {
		put(col, y, o.Top)
		put(col, y+h-1, o.Bottom)
	}
	for row := y + 1; row < y+h-1; row++ {
		put(x, row, o.Left)
		put(x+w-1, row, o.Right)
	}
}
