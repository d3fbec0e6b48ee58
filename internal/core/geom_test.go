package core

import (
	"math"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"disjoint horizontal", NewBox(0, 0, 10, 10), NewBox(15, 0, 10, 10), false},
		{"disjoint vertical", NewBox(0, 0, 10, 10), NewBox(0, 15, 10, 10), false},
		{"touching right edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"touching bottom edge", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 10), false},
		{"contained", NewBox(0, 0, 20, 20), NewBox(5, 5, 2.5, 2.5), true},
		{"sub-unit overlap", NewBox(0, 0, 10, 10), NewBox(9.75, 9.75, 10, 10), true},
		{"player vs platform", NewBox(10, 10, 80, 100), NewBox(70, 10, 200, 20), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Commutative
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", b.Bottom())
	}
	if c := b.Center(); c != V(15, 17.5) {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}
	if !b.Contains(V(5, 10)) || b.Contains(V(25, 25)) {
		t.Error("Contains() should include the top-left corner and exclude the bottom-right")
	}
}

func TestVec(t *testing.T) {
	v := V(3, 4)
	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}
	n := v.Norm()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Norm() should have unit length, got %v", n.Len())
	}
	if (Vec{}).Norm() != (Vec{}) {
		t.Error("Norm() of zero vector should be zero")
	}
	if got := v.Add(V(1, 1)).Sub(V(2, 2)).Scale(2); got != V(4, 6) {
		t.Errorf("Add/Sub/Scale = %v, expected (4, 6)", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 || ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF did not clamp to [0, 1]")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
}
