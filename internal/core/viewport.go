package core

// Viewport maps the fixed logical surface onto the terminal cell grid.
// The top HUDRows rows of the screen are reserved for the heads-up display;
// the surface is stretched over the remaining area.
type Viewport struct {
	SurfaceW, SurfaceH float64
	Cols, Rows         int
	HUDRows            int
}

// NewViewport creates a viewport for a surface drawn on a screen.
func NewViewport(surfaceW, surfaceH float64, cols, rows, hudRows int) Viewport {
	return Viewport{
		SurfaceW: surfaceW,
		SurfaceH: surfaceH,
		Cols:     cols,
		Rows:     rows,
		HUDRows:  hudRows,
	}
}

func (v Viewport) playRows() int {
	return Max(v.Rows-v.HUDRows, 1)
}

// CellX converts a surface x-coordinate to a screen column.
func (v Viewport) CellX(x float64) int {
	if v.SurfaceW <= 0 {
		return 0
	}
	return int(x * float64(v.Cols) / v.SurfaceW)
}

// CellY converts a surface y-coordinate to a screen row.
func (v Viewport) CellY(y float64) int {
	if v.SurfaceH <= 0 {
		return v.HUDRows
	}
	return v.HUDRows + int(y*float64(v.playRows())/v.SurfaceH)
}

// Rect converts a surface box to the cell rectangle covering it.
// Non-empty boxes always cover at least one cell.
func (v Viewport) Rect(b Box) Rect {
	x0, y0 := v.CellX(b.X), v.CellY(b.Y)
	x1, y1 := v.CellX(b.Right()), v.CellY(b.Bottom())
	w := Max(x1-x0, 1)
	h := Max(y1-y0, 1)
	return NewRect(x0, y0, w, h)
}

// SurfacePoint converts a screen cell back to surface space (cell centre).
// ok is false when the cell lies in the HUD area.
func (v Viewport) SurfacePoint(col, row int) (Vec, bool) {
	if row < v.HUDRows || v.Cols <= 0 {
		return Vec{}, false
	}
	x := (float64(col) + 0.5) * v.SurfaceW / float64(v.Cols)
	y := (float64(row-v.HUDRows) + 0.5) * v.SurfaceH / float64(v.playRows())
	return Vec{X: x, Y: y}, true
}
