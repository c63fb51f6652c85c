// font.go - codepoint to 8x8 bitmap glyph lookup.
//
// Grounded on video_terminal.go's loadTopazFont/glyphs[256][16]byte embed pattern,
// generalized from a flat 256-entry byte-per-codepoint table to an ordered
// Unicode-range model, and from 8x16 cells down to 8x8 cells.

package textmode

// GlyphWidth and GlyphHeight are the fixed built-in font's cell dimensions in pixels.
const (
	GlyphWidth  = 8
	GlyphHeight = 8
)

// Glyph is one 8x8 bitmap: each byte is a row, bit 7 is the leftmost pixel.
type Glyph [GlyphHeight]byte

// FontRange covers the half-open codepoint interval [Start, Stop). If Shared is non-nil,
// every codepoint in the range renders that one glyph; otherwise Data holds
// (Stop-Start) contiguous glyphs, one per codepoint in order.
type FontRange struct {
	Start, Stop rune
	Shared      *Glyph
	Data        []Glyph
}

// Font is an ordered sequence of ranges plus the fallback "notdef" glyph.
type Font struct {
	CharWidth, CharHeight int
	Ranges                []FontRange
	NotDef                Glyph
}

// GlyphFor linear-scans the ranges in order and returns the glyph for cp, or NotDef
// if no range covers it.
func (f *Font) GlyphFor(cp rune) Glyph {
	for _, rg := range f.Ranges {
		if cp < rg.Start || cp >= rg.Stop {
			continue
		}
		if rg.Shared != nil {
			return *rg.Shared
		}
		idx := int(cp - rg.Start)
		if idx >= 0 && idx < len(rg.Data) {
			return rg.Data[idx]
		}
		return f.NotDef
	}
	return f.NotDef
}

// DefaultFont is the package's single built-in bitmap font.
var DefaultFont = buildDefaultFont()
