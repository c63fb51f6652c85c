package textmode

import "testing"

func TestRectIntersectionSorted(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, 5, 15, 15}
	got := a.Intersection(b)
	if !got.IsSorted() {
		t.Fatalf("intersection not sorted: %+v", got)
	}
	want := Rect{5, 5, 10, 10}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestRectIntersectionDisjointIsSortedEmpty(t *testing.T) {
	a := Rect{0, 0, 5, 5}
	b := Rect{10, 10, 20, 20}
	got := a.Intersection(b)
	if !got.IsSorted() {
		t.Fatalf("disjoint intersection must stay sorted: %+v", got)
	}
	if !got.IsEmpty() {
		t.Fatalf("disjoint intersection must be empty: %+v", got)
	}
}

func TestRectMergeWithEmpty(t *testing.T) {
	a := Rect{1, 2, 3, 4}
	if got := a.Merge(EmptyRect); got != a {
		t.Fatalf("merge(a, empty) = %+v, want %+v", got, a)
	}
	if got := EmptyRect.Merge(a); got != a {
		t.Fatalf("merge(empty, a) = %+v, want %+v", got, a)
	}
}

func TestRectMergeWithPointOnEmpty(t *testing.T) {
	got := EmptyRect.MergeWithPoint(3, 4)
	want := Rect{3, 4, 4, 5}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestRectGrowXY(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	got := r.GrowXY(2, 3)
	want := Rect{8, 7, 22, 23}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{0, 0, 4, 4}
	got := r.Translate(5, -5)
	want := Rect{5, -5, 9, -1}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestRectIntersectionAlwaysWithinA(t *testing.T) {
	a := Rect{-5, -5, 5, 5}
	b := Rect{0, 0, 100, 100}
	got := a.Intersection(b)
	if got.Left < a.Left || got.Top < a.Top || got.Right > a.Right || got.Bottom > a.Bottom {
		t.Fatalf("intersection %+v escapes a %+v", got, a)
	}
}
