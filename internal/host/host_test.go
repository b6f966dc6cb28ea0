package host

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", Rect{0, 0, 100, 100}, Rect{50, 50, 100, 100}, Rect{50, 50, 50, 50}},
		{"contained", Rect{0, 27, 3840, 1053}, Rect{1920, 0, 1920, 1080}, Rect{1920, 27, 1920, 1053}},
		{"touching edges", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, Rect{}},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(30, 15) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(5, 15) {
		t.Error("point left of rect reported inside")
	}
}

func TestMaximizeFlags(t *testing.T) {
	if !MaximizeBoth.Horizontal() || !MaximizeBoth.Vertical() {
		t.Fatal("MaximizeBoth must cover both axes")
	}
	if MaximizeVertical.Horizontal() {
		t.Fatal("vertical flag reported horizontal")
	}
}
