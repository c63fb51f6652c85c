// color.go - 16-entry RGBA palette and color composition math.

package textmode

// RGBA is a packed 8-bit-per-channel color, stored the way video_terminal.go's
// fgColor/bgColor fields pack their LE byte order: R, G, B, A.
type RGBA struct {
	R, G, B, A uint8
}

// Pack returns the color as a little-endian uint32, matching writeColorLE's layout.
func (c RGBA) Pack() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// RGBAFromPack unpacks a little-endian-ordered uint32 into an RGBA.
func RGBAFromPack(v uint32) RGBA {
	return RGBA{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: uint8(v >> 24)}
}

const paletteSize = 16

// Palette holds 16 RGBA entries plus a per-entry dirty flag.
type Palette struct {
	entries [paletteSize]RGBA
	dirty   [paletteSize]bool
}

// Entry returns the color stored at index n. Reading the background color ignores the
// stored alpha ("the background color reads alpha as 255 regardless of stored alpha");
// callers that need the background specifically should use BackgroundEntry.
func (p *Palette) Entry(n int) RGBA {
	return p.entries[n&0xF]
}

// BackgroundEntry returns entry n with alpha forced to 255, for use as a background color.
func (p *Palette) BackgroundEntry(n int) RGBA {
	c := p.entries[n&0xF]
	c.A = 255
	return c
}

// SetEntry stores a new color at index n, marking it dirty iff the value changed.
func (p *Palette) SetEntry(n int, c RGBA) {
	n &= 0xF
	if p.entries[n] != c {
		p.entries[n] = c
		p.dirty[n] = true
	}
}

// IsDirty reports and does not clear the dirty flag for entry n.
func (p *Palette) IsDirty(n int) bool {
	return p.dirty[n&0xF]
}

// AnyDirty reports whether any palette entry is dirty.
func (p *Palette) AnyDirty() bool {
	for _, d := range p.dirty {
		if d {
			return true
		}
	}
	return false
}

// ClearDirty resets every dirty flag, called once the validator has consumed them.
func (p *Palette) ClearDirty() {
	for i := range p.dirty {
		p.dirty[i] = false
	}
}

// FindColorMatch scans the 16 entries, skipping fully transparent ones, and returns the
// index minimizing the luminance-weighted squared difference 3*dR^2 + 4*dG^2 + 2*dB^2.
// Ties resolve to the first match. If every entry is transparent, it returns 0.
func (p *Palette) FindColorMatch(r, g, b uint8) int {
	best := 0
	bestDist := -1
	found := false
	for i, e := range p.entries {
		if e.A == 0 {
			continue
		}
		dr := int(r) - int(e.R)
		dg := int(g) - int(e.G)
		db := int(b) - int(e.B)
		dist := 3*dr*dr + 4*dg*dg + 2*db*db
		if !found || dist < bestDist {
			best = i
			bestDist = dist
			found = true
		}
	}
	if !found {
		return 0
	}
	return best
}

// BlendColor performs channel-wise (fg*alpha + bg*(255-alpha)) / 255.
func BlendColor(fg, bg RGBA, alpha uint8) RGBA {
	a := int(alpha)
	inv := 255 - a
	return RGBA{
		R: uint8((int(fg.R)*a + int(bg.R)*inv) / 255),
		G: uint8((int(fg.G)*a + int(bg.G)*inv) / 255),
		B: uint8((int(fg.B)*a + int(bg.B)*inv) / 255),
		A: uint8((int(fg.A)*a + int(bg.A)*inv) / 255),
	}
}

// U16Quad is four uint16 channels, used for the premultiplied-linear emissive plane.
type U16Quad struct {
	R, G, B, A uint16
}

// LinearU16Premul produces the pseudo-linear squared, alpha-premultiplied color used to
// feed the emissive/blur buffer: (r*r*a/256, g*g*a/256, b*b*a/256, a*a*a/256).
func LinearU16Premul(c RGBA) U16Quad {
	a := uint32(c.A)
	return U16Quad{
		R: uint16(uint32(c.R) * uint32(c.R) * a / 256),
		G: uint16(uint32(c.G) * uint32(c.G) * a / 256),
		B: uint16(uint32(c.B) * uint32(c.B) * a / 256),
		A: uint16(a * a * a / 256),
	}
}

// preset palette tables, 16 packed RGBA entries each, alpha 255 throughout.
func presetPalette(entries [16][3]uint8) [16]RGBA {
	var out [16]RGBA
	for i, e := range entries {
		out[i] = RGBA{R: e[0], G: e[1], B: e[2], A: 255}
	}
	return out
}

// PaletteVintage is a warm amber-on-black CRT-style 16 color set.
var PaletteVintage = presetPalette([16][3]uint8{
	{0x00, 0x00, 0x00}, {0xAA, 0x55, 0x00}, {0x00, 0xAA, 0x00}, {0xAA, 0xAA, 0x00},
	{0x55, 0x33, 0x00}, {0xAA, 0x00, 0xAA}, {0x00, 0x88, 0x88}, {0xAA, 0xAA, 0xAA},
	{0x55, 0x55, 0x55}, {0xFF, 0xAA, 0x33}, {0x55, 0xFF, 0x55}, {0xFF, 0xFF, 0x55},
	{0xAA, 0x88, 0x55}, {0xFF, 0x55, 0xFF}, {0x55, 0xFF, 0xFF}, {0xFF, 0xFF, 0xFF},
})

// PaletteCampbell mirrors Windows Terminal's "Campbell" default colorset.
var PaletteCampbell = presetPalette([16][3]uint8{
	{0x0C, 0x0C, 0x0C}, {0xC5, 0x0F, 0x1F}, {0x13, 0xA1, 0x0E}, {0xC1, 0x9C, 0x00},
	{0x00, 0x37, 0xDA}, {0x88, 0x17, 0x98}, {0x3A, 0x96, 0xDD}, {0xCC, 0xCC, 0xCC},
	{0x76, 0x76, 0x76}, {0xE7, 0x48, 0x56}, {0x16, 0xC6, 0x0C}, {0xF9, 0xF1, 0xA5},
	{0x3B, 0x78, 0xFF}, {0xB4, 0x00, 0x9E}, {0x61, 0xD6, 0xD6}, {0xF2, 0xF2, 0xF2},
})

// PaletteOneHalfLight mirrors the popular "One Half Light" editor theme.
var PaletteOneHalfLight = presetPalette([16][3]uint8{
	{0xFA, 0xFA, 0xFA}, {0xE4, 0x56, 0x49}, {0x50, 0xA1, 0x4F}, {0xC1, 0x8A, 0x01},
	{0x0A, 0x84, 0xC6}, {0xA6, 0x26, 0xA4}, {0x16, 0x8B, 0x9E}, {0x38, 0x3A, 0x42},
	{0x9C, 0xA0, 0xA4}, {0xDF, 0x60, 0x5C}, {0x6D, 0xB4, 0x6C}, {0xD9, 0x9A, 0x04},
	{0x29, 0x9E, 0xE5}, {0xC6, 0x50, 0xC4}, {0x40, 0xA8, 0xBA}, {0x1A, 0x1B, 0x26},
})

// PaletteTango mirrors the GNOME Tango terminal colorset.
var PaletteTango = presetPalette([16][3]uint8{
	{0x2E, 0x34, 0x36}, {0xCC, 0x00, 0x00}, {0x4E, 0x9A, 0x06}, {0xC4, 0xA0, 0x00},
	{0x34, 0x65, 0xA4}, {0x75, 0x50, 0x7B}, {0x06, 0x98, 0x9A}, {0xD3, 0xD7, 0xCF},
	{0x55, 0x57, 0x53}, {0xEF, 0x29, 0x29}, {0x8A, 0xE2, 0x34}, {0xFC, 0xE9, 0x4F},
	{0x72, 0x9F, 0xCF}, {0xAD, 0x7F, 0xA8}, {0x34, 0xE2, 0xE2}, {0xEE, 0xEE, 0xEC},
})

// PaletteVGA is the standard IBM VGA 16 color set.
var PaletteVGA = presetPalette([16][3]uint8{
	{0x00, 0x00, 0x00}, {0xAA, 0x00, 0x00}, {0x00, 0xAA, 0x00}, {0xAA, 0x55, 0x00},
	{0x00, 0x00, 0xAA}, {0xAA, 0x00, 0xAA}, {0x00, 0xAA, 0xAA}, {0xAA, 0xAA, 0xAA},
	{0x55, 0x55, 0x55}, {0xFF, 0x55, 0x55}, {0x55, 0xFF, 0x55}, {0xFF, 0xFF, 0x55},
	{0x55, 0x55, 0xFF}, {0xFF, 0x55, 0xFF}, {0x55, 0xFF, 0xFF}, {0xFF, 0xFF, 0xFF},
})

// NewPalette builds a Palette from one of the preset 16-entry tables.
func NewPalette(preset [16]RGBA) *Palette {
	p := &Palette{}
	p.entries = preset
	return p
}
