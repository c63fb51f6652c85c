package textmode

import "testing"

func TestFindColorMatchInRange(t *testing.T) {
	p := NewPalette(PaletteVGA)
	for r := 0; r < 256; r += 37 {
		for g := 0; g < 256; g += 53 {
			for b := 0; b < 256; b += 67 {
				idx := p.FindColorMatch(uint8(r), uint8(g), uint8(b))
				if idx < 0 || idx >= 16 {
					t.Fatalf("FindColorMatch(%d,%d,%d) = %d out of range", r, g, b, idx)
				}
			}
		}
	}
}

func TestFindColorMatchAllTransparentReturnsZero(t *testing.T) {
	p := &Palette{}
	for i := range p.entries {
		p.entries[i] = RGBA{0, 0, 0, 0}
	}
	if got := p.FindColorMatch(200, 10, 10); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestFindColorMatchIdempotentOnExactEntry(t *testing.T) {
	p := NewPalette(PaletteVGA)
	for i, e := range p.entries {
		got := p.FindColorMatch(e.R, e.G, e.B)
		// Might not be i if a duplicate/closer entry ties earlier, but VGA entries are unique.
		if got != i {
			t.Fatalf("entry %d: FindColorMatch(%v) = %d, want %d", i, e, got, i)
		}
	}
}

func TestSetPaletteEntryDirtyOnlyOnChange(t *testing.T) {
	p := NewPalette(PaletteVGA)
	p.ClearDirty()
	same := p.Entry(2)
	p.SetEntry(2, same)
	if p.IsDirty(2) {
		t.Fatalf("setting identical entry should not mark dirty")
	}
	p.SetEntry(2, RGBA{1, 2, 3, 255})
	if !p.IsDirty(2) {
		t.Fatalf("setting a different entry should mark dirty")
	}
}

func TestBackgroundEntryForcesOpaque(t *testing.T) {
	p := NewPalette(PaletteVGA)
	p.SetEntry(0, RGBA{10, 20, 30, 0})
	bg := p.BackgroundEntry(0)
	if bg.A != 255 {
		t.Fatalf("background alpha = %d, want 255", bg.A)
	}
}

func TestBlendColorEndpoints(t *testing.T) {
	fg := RGBA{255, 0, 0, 255}
	bg := RGBA{0, 0, 255, 255}
	if got := BlendColor(fg, bg, 255); got != fg {
		t.Fatalf("alpha=255: got %v want %v", got, fg)
	}
	if got := BlendColor(fg, bg, 0); got != bg {
		t.Fatalf("alpha=0: got %v want %v", got, bg)
	}
}

func TestLinearU16PremulZeroAlpha(t *testing.T) {
	q := LinearU16Premul(RGBA{255, 255, 255, 0})
	if q != (U16Quad{}) {
		t.Fatalf("zero alpha should premultiply to zero, got %+v", q)
	}
}
