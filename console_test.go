package textmode

import "testing"

func TestHelloBold(t *testing.T) {
	c, err := NewConsole(20, 5)
	if err != nil {
		t.Fatal(err)
	}
	c.Cls()
	c.Print("AB")
	c.SetStyle(StyleBold)
	c.Print("C")
	c.Newline()
	c.Println("D")

	check := func(col, row int, glyph rune, style Style) {
		cell := c.CharAt(col, row)
		if cell.Glyph != glyph || cell.Style != style {
			t.Fatalf("cell(%d,%d) = %q style=%v, want %q style=%v", col, row, cell.Glyph, cell.Style, glyph, style)
		}
	}
	check(0, 0, 'A', StyleNone)
	check(1, 0, 'B', StyleNone)
	check(2, 0, 'C', StyleBold)
	check(0, 1, 'D', StyleBold)
	if c.CursorCol() != 0 || c.CursorRow() != 2 {
		t.Fatalf("cursor = (%d,%d), want (0,2)", c.CursorCol(), c.CursorRow())
	}
}

func TestScroll(t *testing.T) {
	c, err := NewConsole(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	c.Println("abcd")
	c.Println("efgh")
	c.Println("ijkl")

	row := func(r int) string {
		s := make([]rune, c.Columns())
		for col := 0; col < c.Columns(); col++ {
			s[col] = c.CharAt(col, r).Glyph
		}
		return string(s)
	}
	if got := row(0); got != "efgh" {
		t.Fatalf("row0 = %q, want efgh", got)
	}
	if got := row(1); got != "ijkl" {
		t.Fatalf("row1 = %q, want ijkl", got)
	}
	if c.CursorCol() != 0 || c.CursorRow() != 1 {
		t.Fatalf("cursor = (%d,%d), want (0,1)", c.CursorCol(), c.CursorRow())
	}
}

func TestSaveRestore(t *testing.T) {
	c, err := NewConsole(10, 3)
	if err != nil {
		t.Fatal(err)
	}
	const red, blue byte = 1, 4
	c.SetFg(red)
	c.Save()
	c.SetFg(blue)
	c.Print("X")
	c.Restore()
	c.Print("Y")

	y := c.CharAt(0, 0)
	x := c.CharAt(1, 0)
	if y.Glyph != 'Y' || y.Fg() != red {
		t.Fatalf("cell0 = %q fg=%d, want Y fg=red", y.Glyph, y.Fg())
	}
	if x.Glyph != 'X' || x.Fg() != blue {
		t.Fatalf("cell1 = %q fg=%d, want X fg=blue", x.Glyph, x.Fg())
	}
}

func TestLocateClampIgnoresOutOfRange(t *testing.T) {
	c, _ := NewConsole(5, 5)
	c.Locate(2, 2)
	c.Locate(-1, 100)
	if c.CursorCol() != 2 || c.CursorRow() != 2 {
		t.Fatalf("cursor = (%d,%d), want unchanged (2,2)", c.CursorCol(), c.CursorRow())
	}
}

func TestPrintAtLastCellScrollsWithoutPanic(t *testing.T) {
	c, _ := NewConsole(3, 3)
	c.Row(2)
	c.Column(2)
	c.PrintRune('Z') // advances past the last row, triggers scroll — should not panic
}

func TestFillRectClipsToGrid(t *testing.T) {
	c, _ := NewConsole(5, 5)
	c.FillRect(-2, -2, 4, 4, '#')
	if c.CharAt(0, 0).Glyph != '#' {
		t.Fatalf("in-bounds portion of fillRect should have been written")
	}
}

func TestBoxTooSmallIsNoOp(t *testing.T) {
	c, _ := NewConsole(5, 5)
	before := append([]CharData{}, c.Characters()...)
	c.Box(0, 0, 1, 1, BoxThin)
	for i, cell := range c.Characters() {
		if cell != before[i] {
			t.Fatalf("box with w<2,h<2 should be a no-op")
		}
	}
}

func TestBoxDrawsFrame(t *testing.T) {
	c, _ := NewConsole(6, 6)
	c.Box(0, 0, 4, 3, BoxThin)
	o := boxOctets[BoxThin]
	if c.CharAt(0, 0).Glyph != o.TopLeft {
		t.Fatalf("top-left corner missing")
	}
	if c.CharAt(3, 2).Glyph != o.BottomRight {
		t.Fatalf("bottom-right corner missing")
	}
	if c.CharAt(1, 0).Glyph != o.Top {
		t.Fatalf("top edge missing")
	}
}

func TestSizeRejectsZeroDims(t *testing.T) {
	_, err := NewConsole(0, 5)
	if err == nil {
		t.Fatalf("expected error for zero cols")
	}
}
