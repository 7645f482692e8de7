package host

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{Input, "input"},
		{Output, "output"},
		{Direction(7), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRectAt(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: 200, Height: 80}

	tests := []struct {
		name   string
		fx, fy float64
		want   Point
	}{
		{name: "TopLeft", fx: 0, fy: 0, want: Point{X: 100, Y: 100}},
		{name: "Center", fx: 0.5, fy: 0.5, want: Point{X: 200, Y: 140}},
		{name: "BottomRight", fx: 1, fy: 1, want: Point{X: 300, Y: 180}},
		{name: "LeftMiddle", fx: 0, fy: 0.5, want: Point{X: 100, Y: 140}},
		{name: "Extrapolated", fx: 0, fy: 1.5, want: Point{X: 100, Y: 220}},
		{name: "Negative", fx: -0.5, fy: 0, want: Point{X: 0, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.At(tt.fx, tt.fy); got != tt.want {
				t.Errorf("At(%v, %v) = %v, want %v", tt.fx, tt.fy, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "Center", p: Point{X: 20, Y: 20}, want: true},
		{name: "TopLeftEdge", p: Point{X: 10, Y: 10}, want: true},
		{name: "BottomRightEdge", p: Point{X: 30, Y: 30}, want: true},
		{name: "Outside", p: Point{X: 31, Y: 20}, want: false},
		{name: "Above", p: Point{X: 20, Y: 9}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
