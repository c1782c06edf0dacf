package types

import "testing"

func TestDirectionReverses(t *testing.T) {
	tests := []struct {
		dir, heading Direction
		want         bool
	}{
		{Up, Down, true},
		{Down, Up, true},
		{Left, Right, true},
		{Right, Left, true},
		{Up, Up, false},
		{Up, Left, false},
		{Down, None, false},
		{None, None, false},
	}
	for _, tt := range tests {
		if got := tt.dir.Reverses(tt.heading); got != tt.want {
			t.Errorf("%v.Reverses(%v) = %v, want %v", tt.dir, tt.heading, got, tt.want)
		}
	}
}

func TestOpposite(t *testing.T) {
	for _, d := range Directions {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("double Opposite of %v = %v", d, got)
		}
		if !d.Opposite().Reverses(d) {
			t.Errorf("%v.Opposite() does not reverse %v", d, d)
		}
	}
}

func TestGrid(t *testing.T) {
	g := NewGrid(5)
	if g.Area() != 25 {
		t.Fatalf("Area = %d, want 25", g.Area())
	}
	if c := g.Center(); c != (Point{X: 2, Y: 2}) {
		t.Errorf("Center = %v, want (2,2)", c)
	}
	if g.Index(Point{X: 3, Y: 1}) != 8 {
		t.Errorf("Index(3,1) = %d, want 8", g.Index(Point{X: 3, Y: 1}))
	}

	bounds := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{4, 4}, true},
		{Point{-1, 0}, false},
		{Point{0, 5}, false},
		{Point{5, 2}, false},
	}
	for _, tt := range bounds {
		if got := g.InBounds(tt.p); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestManhattan(t *testing.T) {
	if d := Manhattan(Point{1, 1}, Point{4, 3}); d != 5 {
		t.Errorf("Manhattan = %d, want 5", d)
	}
	if d := Manhattan(Point{4, 3}, Point{1, 1}); d != 5 {
		t.Errorf("Manhattan reversed = %d, want 5", d)
	}
	if p := (Point{2, 2}).Add(Up); p != (Point{2, 1}) {
		t.Errorf("Add(Up) = %v, want (2,1)", p)
	}
}
