package render

import "github.com/harrysaysyes/radio-player/internal/waves"

// pathSink receives the outline of one lattice row.
type pathSink interface {
	moveTo(x, y float64)
	quadTo(cx, cy, x, y float64)
	lineTo(x, y float64)
}

// traceRow walks a row's current positions into sink. Curved mode
// connects points with quadratic segments: each lattice point is the
// control point and the midpoint to its successor is the segment end,
// which keeps the polyline smooth without overshooting. The true last
// point is always reached with a final straight segment. Straight mode
// is plain point-to-point lines.
func traceRow(row []waves.Point, curved bool, sink pathSink) {
	if len(row) == 0 {
		return
	}
	sink.moveTo(row[0].X, row[0].Y)
	if len(row) == 1 {
		return
	}
	if !curved || len(row) == 2 {
		for i := 1; i < len(row); i++ {
			sink.lineTo(row[i].X, row[i].Y)
		}
		return
	}
	for i := 1; i < len(row)-1; i++ {
		mx := (row[i].X + row[i+1].X) / 2
		my := (row[i].Y + row[i+1].Y) / 2
		sink.quadTo(row[i].X, row[i].Y, mx, my)
	}
	last := row[len(row)-1]
	sink.lineTo(last.X, last.Y)
}
