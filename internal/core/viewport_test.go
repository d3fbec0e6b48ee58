package core

import "testing"

func TestViewportMapping(t *testing.T) {
	v := NewViewport(800, 500, 80, 27, 2) // 25 play rows

	if v.CellX(0) != 0 || v.CellX(400) != 40 || v.CellX(799) != 79 {
		t.Errorf("CellX mapping wrong: %d %d %d", v.CellX(0), v.CellX(400), v.CellX(799))
	}
	if v.CellY(0) != 2 || v.CellY(250) != 14 {
		t.Errorf("CellY mapping wrong: %d %d", v.CellY(0), v.CellY(250))
	}

	r := v.Rect(NewBox(40, 90, 60, 15))
	if r.X != 4 || r.W != 6 || r.H != 1 {
		t.Errorf("Rect() = %+v, expected x=4 w=6 h=1", r)
	}

	// Tiny boxes still cover one cell
	if r := v.Rect(NewBox(10, 10, 0.5, 0.5)); r.W != 1 || r.H != 1 {
		t.Errorf("tiny box should cover one cell, got %+v", r)
	}
}

func TestViewportSurfacePoint(t *testing.T) {
	v := NewViewport(800, 500, 80, 27, 2)

	if _, ok := v.SurfacePoint(10, 1); ok {
		t.Error("HUD rows should not map to the surface")
	}
	p, ok := v.SurfacePoint(40, 14)
	if !ok {
		t.Fatal("play area cell should map to the surface")
	}
	if v.CellX(p.X) != 40 || v.CellY(p.Y) != 14 {
		t.Errorf("round trip failed: %v -> (%d, %d)", p, v.CellX(p.X), v.CellY(p.Y))
	}
}
