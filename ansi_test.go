package textmode

import "testing"

func TestAnsiSGR(t *testing.T) {
	c, _ := NewConsole(10, 2)
	data := []byte{0x1B, '[', '3', '1', ';', '4', '4', 'm', 'X', 0x1B, '[', '0', 'm', 'Y'}
	c.PrintANS(data, 0, 0)

	x := c.CharAt(0, 0)
	if x.Glyph != 'X' || x.Fg() != 1 || x.Bg() != 4 {
		t.Fatalf("X = %q fg=%d bg=%d, want fg=1 bg=4", x.Glyph, x.Fg(), x.Bg())
	}
	y := c.CharAt(1, 0)
	grey, _ := colorIndexByName("grey")
	black, _ := colorIndexByName("black")
	if y.Glyph != 'Y' || y.Style != StyleNone || y.Fg() != grey || y.Bg() != black {
		t.Fatalf("Y = %q style=%v fg=%d bg=%d, want reset defaults", y.Glyph, y.Style, y.Fg(), y.Bg())
	}
}

func TestAnsiBenignInputLeavesDefaultsUntouched(t *testing.T) {
	c, _ := NewConsole(10, 2)
	grey, _ := colorIndexByName("grey")
	black, _ := colorIndexByName("black")
	c.PrintANS([]byte("just plain text, no escapes"), 0, 0)
	for i := 0; i < c.Columns(); i++ {
		cell := c.CharAt(i, 0)
		if cell.Glyph == ' ' {
			continue
		}
		if cell.Fg() != grey || cell.Bg() != black {
			t.Fatalf("cell %d changed colors from plain text: fg=%d bg=%d", i, cell.Fg(), cell.Bg())
		}
	}
}

func TestAnsiCursorColumnAdvance(t *testing.T) {
	c, _ := NewConsole(10, 1)
	data := []byte{'A', 0x1B, '[', '3', 'C', 'B'}
	c.PrintANS(data, 0, 0)
	if c.CharAt(0, 0).Glyph != 'A' {
		t.Fatalf("expected A at col 0")
	}
	if c.CharAt(4, 0).Glyph != 'B' {
		t.Fatalf("expected B at col 4 after CUF 3, got %q", c.CharAt(4, 0).Glyph)
	}
}

func TestAnsiRestoresPersistentCursor(t *testing.T) {
	c, _ := NewConsole(10, 3)
	c.Locate(3, 1)
	c.PrintANS([]byte("hello\nworld"), 0, 0)
	if c.CursorCol() != 3 || c.CursorRow() != 1 {
		t.Fatalf("cursor after PrintANS = (%d,%d), want restored (3,1)", c.CursorCol(), c.CursorRow())
	}
}

func TestAnsiSubTerminatesParsing(t *testing.T) {
	c, _ := NewConsole(10, 1)
	data := []byte{'A', 0x1A, 'B'}
	c.PrintANS(data, 0, 0)
	if c.CharAt(0, 0).Glyph != 'A' {
		t.Fatalf("expected A before SUB")
	}
	if c.CharAt(1, 0).Glyph != ' ' {
		t.Fatalf("text after SUB should not be drawn, got %q", c.CharAt(1, 0).Glyph)
	}
}

func TestAnsiCP437Decoding(t *testing.T) {
	c, _ := NewConsole(4, 1)
	// 0xB0 in CP437 is LIGHT SHADE (U+2591), not its raw byte value.
	c.PrintANSCP437([]byte{0xB0}, 0, 0)
	if c.CharAt(0, 0).Glyph != 0x2591 {
		t.Fatalf("CP437 0xB0 decoded to %U, want U+2591", c.CharAt(0, 0).Glyph)
	}
}
