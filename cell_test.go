package textmode

import "testing"

func TestPackColorRoundTrip(t *testing.T) {
	c := DefaultCharData.WithFg(3).WithBg(7)
	if c.Fg() != 3 || c.Bg() != 7 {
		t.Fatalf("got fg=%d bg=%d, want fg=3 bg=7", c.Fg(), c.Bg())
	}
}

func TestStateStackSaveRestoreRoundTrip(t *testing.T) {
	s := newStateStack()
	s.top().Fg = 2
	s.save()
	s.top().Fg = 5
	if s.top().Fg != 5 {
		t.Fatalf("top fg = %d, want 5", s.top().Fg)
	}
	s.restore()
	if s.top().Fg != 2 {
		t.Fatalf("after restore, top fg = %d, want 2", s.top().Fg)
	}
}

func TestStateStackOverflowIsSilentNoOp(t *testing.T) {
	s := newStateStack()
	for i := 0; i < maxStateDepth+10; i++ {
		s.save()
	}
	if s.depth != maxStateDepth {
		t.Fatalf("depth = %d, want capped at %d", s.depth, maxStateDepth)
	}
}

func TestStateStackUnderflowIsSilentNoOp(t *testing.T) {
	s := newStateStack()
	for i := 0; i < 5; i++ {
		s.restore()
	}
	if s.depth != 1 {
		t.Fatalf("depth = %d, want 1", s.depth)
	}
}

func TestStateStackResetCollapsesToDefault(t *testing.T) {
	s := newStateStack()
	s.save()
	s.save()
	s.top().Fg = 9
	s.reset()
	if s.depth != 1 {
		t.Fatalf("depth = %d, want 1", s.depth)
	}
	if *s.top() != defaultState {
		t.Fatalf("top = %+v, want default state", *s.top())
	}
}
