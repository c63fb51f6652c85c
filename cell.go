// cell.go - the character grid's cell type and cursor/color/style state stack.
//
// Grounded on video_terminal.go's Cell{Char, FgColor, BgColor, Attr} and its fixed-depth
// save/restore stack for SGR state, generalized from a packed terminal attribute byte to
// explicit CharData fields and a 32-deep stack.

package textmode

// Style is a bit flag set on a cell or on the current state.
type Style uint8

const (
	StyleNone      Style = 0
	StyleShiny     Style = 1 << 0
	StyleBold      Style = 1 << 1
	StyleUnderline Style = 1 << 2
	StyleBlink     Style = 1 << 3
)

// DefaultFg and DefaultBg are the palette indices a fresh console starts with.
const (
	DefaultFg = 8
	DefaultBg = 0
)

// CharData is one grid cell: a codepoint, packed fg/bg palette nibble, and style flags.
type CharData struct {
	Glyph rune
	Color byte // low nibble = fg index 0-15, high nibble = bg index 0-15
	Style Style
}

// DefaultCharData is the value every cell holds after cls() or size().
var DefaultCharData = CharData{Glyph: ' ', Color: packColor(DefaultFg, DefaultBg), Style: StyleNone}

func packColor(fg, bg byte) byte {
	return (fg & 0x0F) | (bg&0x0F)<<4
}

// Fg returns the cell's foreground palette index.
func (c CharData) Fg() byte { return c.Color & 0x0F }

// Bg returns the cell's background palette index.
func (c CharData) Bg() byte { return (c.Color >> 4) & 0x0F }

// WithFg returns a copy of c with the foreground index replaced.
func (c CharData) WithFg(fg byte) CharData {
	c.Color = packColor(fg&0x0F, c.Bg())
	return c
}

// WithBg returns a copy of c with the background index replaced.
func (c CharData) WithBg(bg byte) CharData {
	c.Color = packColor(c.Fg(), bg&0x0F)
	return c
}

// maxStateDepth is the save/restore stack's fixed capacity.
const maxStateDepth = 32

// State is the mutable cursor/color/style context a console carries at one stack depth.
type State struct {
	Fg, Bg  byte
	Col, Row int
	Style   Style
}

// defaultState is state[0]'s zero value; frame zero is always present.
var defaultState = State{Fg: DefaultFg, Bg: DefaultBg, Col: 0, Row: 0, Style: StyleNone}

// stateStack is the bounded save/restore stack backing Save/Restore.
type stateStack struct {
	frames [maxStateDepth]State
	depth  int // number of frames in use, always >= 1
}

func newStateStack() *stateStack {
	s := &stateStack{depth: 1}
	s.frames[0] = defaultState
	return s
}

// top returns a pointer to the active frame.
func (s *stateStack) top() *State {
	return &s.frames[s.depth-1]
}

// save duplicates the top frame; silently does nothing if the stack is already full.
func (s *stateStack) save() {
	if s.depth >= maxStateDepth {
		return
	}
	s.frames[s.depth] = s.frames[s.depth-1]
	s.depth++
}

// restore pops the top frame; silently does nothing if only the base frame remains.
func (s *stateStack) restore() {
	if s.depth <= 1 {
		return
	}
	s.depth--
}

// reset collapses the stack back to a single default frame (used by cls()).
func (s *stateStack) reset() {
	s.depth = 1
	s.frames[0] = defaultState
}
