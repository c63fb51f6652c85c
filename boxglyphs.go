// boxglyphs.go - predefined box-drawing glyph octets consumed by Box().
//
// Grounded on video_chip.go's named border-tile tables (it keeps a small fixed set of
// frame tiles rather than synthesizing borders from primitives); generalized here from
// raw pixel tiles to the Unicode Box Drawing codepoints the font already renders.

package textmode

// BoxOctet names the eight runes a Box() frame is built from, in a fixed order.
type BoxOctet struct {
	TopLeft, Top, TopRight    rune
	Left, Right               rune
	BottomLeft, Bottom, BottomRight rune
}

// BoxStyle selects one of the eight predefined octets.
type BoxStyle int

const (
	BoxThin BoxStyle = iota
	BoxLarge
	BoxLargeH
	BoxLargeV
	BoxHeavy
	BoxHeavyPlus
	BoxDouble
	BoxDoubleH
)

var boxOctets = map[BoxStyle]BoxOctet{
	BoxThin: {
		TopLeft: 0x250C, Top: 0x2500, TopRight: 0x2510,
		Left: 0x2502, Right: 0x2502,
		BottomLeft: 0x2514, Bottom: 0x2500, BottomRight: 0x2518,
	},
	// Light lines with rounded arc corners.
	BoxLarge: {
		TopLeft: 0x256D, Top: 0x2500, TopRight: 0x256E,
		Left: 0x2502, Right: 0x2502,
		BottomLeft: 0x2570, Bottom: 0x2500, BottomRight: 0x256F,
	},
	// Light triple-dash horizontal edges, square corners.
	BoxLargeH: {
		TopLeft: 0x250C, Top: 0x2504, TopRight: 0x2510,
		Left: 0x2502, Right: 0x2502,
		BottomLeft: 0x2514, Bottom: 0x2504, BottomRight: 0x2518,
	},
	// Light triple-dash vertical edges, square corners.
	BoxLargeV: {
		TopLeft: 0x250C, Top: 0x2500, TopRight: 0x2510,
		Left: 0x2506, Right: 0x2506,
		BottomLeft: 0x2514, Bottom: 0x2500, BottomRight: 0x2518,
	},
	BoxHeavy: {
		TopLeft: 0x250F, Top: 0x2501, TopRight: 0x2513,
		Left: 0x2503, Right: 0x2503,
		BottomLeft: 0x2517, Bottom: 0x2501, BottomRight: 0x251B,
	},
	// Heavy triple-dash edges, heavy corners.
	BoxHeavyPlus: {
		TopLeft: 0x250F, Top: 0x2505, TopRight: 0x2513,
		Left: 0x2507, Right: 0x2507,
		BottomLeft: 0x2517, Bottom: 0x2505, BottomRight: 0x251B,
	},
	// Full double line.
	BoxDouble: {
		TopLeft: 0x2554, Top: 0x2550, TopRight: 0x2557,
		Left: 0x2551, Right: 0x2551,
		BottomLeft: 0x255A, Bottom: 0x2550, BottomRight: 0x255D,
	},
	// Double horizontal edges, single vertical edges.
	BoxDoubleH: {
		TopLeft: 0x2552, Top: 0x2550, TopRight: 0x2555,
		Left: 0x2502, Right: 0x2502,
		BottomLeft: 0x2558, Bottom: 0x2550, BottomRight: 0x255B,
	},
}

// octetFor returns the BoxThin octet for any unrecognized style value, matching the
// font's notdef-fallback philosophy rather than panicking on an out-of-range style.
func octetFor(style BoxStyle) BoxOctet {
	if o, ok := boxOctets[style]; ok {
		return o
	}
	return boxOctets[BoxThin]
}
