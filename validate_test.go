package textmode

import "testing"

func TestValidateFullRedrawAfterSize(t *testing.T) {
	c, _ := NewConsole(4, 3)
	change, blur := c.validate()
	if change != RectFromSize(0, 0, 4, 3) {
		t.Fatalf("change = %v, want full grid", change)
	}
	if blur != RectFromSize(0, 0, 4, 3) {
		t.Fatalf("blur = %v, want full grid", blur)
	}
	for _, d := range c.charDirty {
		if !d {
			t.Fatalf("expected every cell dirty after size()")
		}
	}
}

func TestValidateMemoizesUnchangedFrame(t *testing.T) {
	c, _ := NewConsole(4, 3)
	c.validate()
	change, blur := c.validate()
	if !change.IsEmpty() || !blur.IsEmpty() {
		t.Fatalf("second validate with no mutation should return empty rects, got change=%v blur=%v", change, blur)
	}
}

func TestValidateDetectsSingleCellChange(t *testing.T) {
	c, _ := NewConsole(5, 5)
	c.validate()
	c.Locate(2, 3)
	c.PrintRune('X')
	change, _ := c.validate()
	if change.IsEmpty() {
		t.Fatalf("expected a non-empty change rect after mutating one cell")
	}
	if !change.Contains(2, 3) {
		t.Fatalf("change rect %v should contain (2,3)", change)
	}
}

func TestValidatePaletteDirtyMarksUsersRedraw(t *testing.T) {
	c, _ := NewConsole(3, 1)
	c.SetFg(5)
	c.PrintRune('A')
	c.validate()
	c.SetPaletteEntry(5, 1, 2, 3, 255)
	change, _ := c.validate()
	if !change.Contains(0, 0) {
		t.Fatalf("palette change on an in-use fg index should redraw the cell using it")
	}
}

func TestValidateBlinkPhaseChangeMarksBlinkableCells(t *testing.T) {
	c, _ := NewConsole(3, 1)
	c.AddStyle(StyleBlink)
	c.PrintRune('A')
	c.validate()
	c.Update(0.7) // 700ms crosses half of the default 1200ms blink period
	change, _ := c.validate()
	if !change.Contains(0, 0) {
		t.Fatalf("blink phase change should redraw blinkable cells")
	}
}
