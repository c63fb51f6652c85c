package textmode

import "testing"

func TestMarkupColorNesting(t *testing.T) {
	c, _ := NewConsole(10, 1)
	c.Cprint("<red>a<on_blue>b</on_blue>c</red>d")

	red, _ := colorIndexByName("red")
	blue, _ := colorIndexByName("blue")
	grey, _ := colorIndexByName("grey")
	black, _ := colorIndexByName("black")

	check := func(col int, glyph rune, fg, bg byte) {
		cell := c.CharAt(col, 0)
		if cell.Glyph != glyph {
			t.Fatalf("cell %d glyph = %q, want %q", col, cell.Glyph, glyph)
		}
		if cell.Fg() != fg || cell.Bg() != bg {
			t.Fatalf("cell %d (%q) fg=%d bg=%d, want fg=%d bg=%d", col, glyph, cell.Fg(), cell.Bg(), fg, bg)
		}
	}
	check(0, 'a', red, black)
	check(1, 'b', red, blue)
	check(2, 'c', red, black)
	check(3, 'd', grey, black)
}

func TestMarkupEntities(t *testing.T) {
	c, _ := NewConsole(10, 1)
	c.Cprint("&lt;&amp;&gt;&nosuch;")
	if c.CharAt(0, 0).Glyph != '<' {
		t.Fatalf("expected '<' at col 0")
	}
	if c.CharAt(1, 0).Glyph != '&' {
		t.Fatalf("expected '&' at col 1")
	}
	if c.CharAt(2, 0).Glyph != '>' {
		t.Fatalf("expected '>' at col 2")
	}
	if c.CharAt(3, 0).Glyph != ' ' {
		t.Fatalf("unknown entity should be dropped with nothing written, got %q", c.CharAt(3, 0).Glyph)
	}
}

func TestMarkupTagIsolation(t *testing.T) {
	c, _ := NewConsole(10, 1)
	before := c.StyleFlags()
	c.Cprint("<b>X</b>Y")
	x := c.CharAt(0, 0)
	y := c.CharAt(1, 0)
	if x.Style&StyleBold == 0 {
		t.Fatalf("X should have bold set")
	}
	if y.Style != before {
		t.Fatalf("Y style = %v, want unchanged %v", y.Style, before)
	}
}

func TestMarkupUnterminatedTagTerminatesInterpretation(t *testing.T) {
	c, _ := NewConsole(10, 1)
	c.Cprint("ab<red")
	if c.CharAt(0, 0).Glyph != 'a' || c.CharAt(1, 0).Glyph != 'b' {
		t.Fatalf("text before the broken tag should still be written")
	}
	if c.CharAt(2, 0).Glyph != ' ' {
		t.Fatalf("nothing should be written once the tokenizer fails")
	}
}

func TestMarkupMismatchedCloseStillRestores(t *testing.T) {
	c, _ := NewConsole(10, 1)
	before := c.StyleFlags()
	c.Cprint("<b></u>Z")
	z := c.CharAt(0, 0)
	if z.Style != before {
		t.Fatalf("mismatched close tag should still restore, got style %v want %v", z.Style, before)
	}
}

func TestMarkupSelfClosingTagIsNetNoOp(t *testing.T) {
	c, _ := NewConsole(10, 1)
	before := c.StyleFlags()
	c.Cprint("<b/>Z")
	if c.CharAt(0, 0).Style != before {
		t.Fatalf("self-closing tag should leave no lasting style change")
	}
}
