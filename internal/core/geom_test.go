package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(10, 5, 4, 2)

	if b.Left() != 8 || b.Right() != 12 {
		t.Errorf("horizontal edges = (%v, %v), expected (8, 12)", b.Left(), b.Right())
	}
	if b.Top() != 4 || b.Bottom() != 6 {
		t.Errorf("vertical edges = (%v, %v), expected (4, 6)", b.Top(), b.Bottom())
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"same centre", NewBox(5, 5, 2, 2), NewBox(5, 5, 1, 1), true},
		{"partial overlap", NewBox(5, 5, 2, 2), NewBox(6.5, 5, 2, 2), true},
		{"touching edges", NewBox(5, 5, 2, 2), NewBox(7, 5, 2, 2), false},
		{"far apart", NewBox(0, 0, 1, 1), NewBox(50, 50, 1, 1), false},
		{"vertical gap", NewBox(5, 5, 2, 2), NewBox(5, 8, 2, 2), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		angle  float64
		dx, dy float64
	}{
		{0, 0, 1},
		{90, 1, 0},
		{180, 0, -1},
		{270, -1, 0},
	}

	for _, tc := range tests {
		dx, dy := Direction(tc.angle)
		if math.Abs(dx-tc.dx) > 1e-9 || math.Abs(dy-tc.dy) > 1e-9 {
			t.Errorf("Direction(%v) = (%v, %v), expected (%v, %v)", tc.angle, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{362, 2},
		{-2, 358},
		{-720, 0},
	}

	for _, tc := range tests {
		if got := WrapAngle(tc.in); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMin(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		r      Rect
		cx, cy int
	}{
		{NewRect(0, 0, 10, 4), 5, 2},
		{NewRect(10, 6, 7, 3), 13, 7},
	}

	for _, tc := range tests {
		if cx, cy := tc.r.Center(); cx != tc.cx || cy != tc.cy {
			t.Errorf("Center(%+v) = (%d, %d), expected (%d, %d)", tc.r, cx, cy, tc.cx, tc.cy)
		}
	}
}
