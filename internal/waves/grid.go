package waves

import "math"

// Point is one lattice site. Base coordinates never change after the
// grid is built; X and Y are recomputed every frame from the base, the
// noise displacement, and the spring offset.
type Point struct {
	BaseX, BaseY float64
	X, Y         float64

	// Pointer spring state, relative to the noise-displaced rest
	// position.
	SpringOffX, SpringOffY float64
	SpringVelX, SpringVelY float64
}

// Grid is a rebuildable lattice of points stored row-major. A resize
// replaces the whole Grid rather than mutating it, so a frame pass
// always sees one consistent lattice.
type Grid struct {
	Points []Point
	Rows   int
	Cols   int

	SpacingX float64
	SpacingY float64
	OriginX  float64
	OriginY  float64

	Width  float64
	Height float64
}

// buildGrid lays out a fresh lattice covering width x height. Counts
// round up so the lattice always reaches the far edges, plus GridPad
// extra rows and columns so displaced edge points do not expose the
// background. Degenerate dimensions collapse to a single point rather
// than an empty grid.
func buildGrid(width, height float64, cfg *Config) *Grid {
	if !isFinite(width) || width <= 0 {
		width = 1
	}
	if !isFinite(height) || height <= 0 {
		height = 1
	}

	cols := int(math.Ceil(width/cfg.SpacingX)) + cfg.GridPad
	rows := int(math.Ceil(height/cfg.SpacingY)) + cfg.GridPad
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g := &Grid{
		Points:   make([]Point, rows*cols),
		Rows:     rows,
		Cols:     cols,
		SpacingX: cfg.SpacingX,
		SpacingY: cfg.SpacingY,
		Width:    width,
		Height:   height,
	}
	if cfg.CenterGrid {
		g.OriginX = (width - float64(cols-1)*cfg.SpacingX) / 2
		g.OriginY = (height - float64(rows-1)*cfg.SpacingY) / 2
	}

	i := 0
	for r := 0; r < rows; r++ {
		by := g.OriginY + float64(r)*cfg.SpacingY
		for c := 0; c < cols; c++ {
			bx := g.OriginX + float64(c)*cfg.SpacingX
			g.Points[i] = Point{BaseX: bx, BaseY: by, X: bx, Y: by}
			i++
		}
	}
	return g
}

// Row returns the points of row r as a slice into the lattice.
func (g *Grid) Row(r int) []Point {
	return g.Points[r*g.Cols : (r+1)*g.Cols]
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
