package render

import (
	"testing"

	"github.com/harrysaysyes/radio-player/internal/waves"
)

type recordedOp struct {
	kind           string
	cx, cy, px, py float64
}

// recordingSink captures traversal ops for inspection.
type recordingSink struct {
	ops []recordedOp
}

func (r *recordingSink) moveTo(x, y float64) {
	r.ops = append(r.ops, recordedOp{kind: "move", px: x, py: y})
}

func (r *recordingSink) quadTo(cx, cy, x, y float64) {
	r.ops = append(r.ops, recordedOp{kind: "quad", cx: cx, cy: cy, px: x, py: y})
}

func (r *recordingSink) lineTo(x, y float64) {
	r.ops = append(r.ops, recordedOp{kind: "line", px: x, py: y})
}

func rowOf(coords ...[2]float64) []waves.Point {
	row := make([]waves.Point, len(coords))
	for i, c := range coords {
		row[i] = waves.Point{X: c[0], Y: c[1]}
	}
	return row
}

func TestTraceRowCurved(t *testing.T) {
	row := rowOf([2]float64{0, 10}, [2]float64{20, 14}, [2]float64{40, 6}, [2]float64{60, 12}, [2]float64{80, 10})
	var sink recordingSink
	traceRow(row, true, &sink)

	// One move, quads through the interior, one closing line.
	if len(sink.ops) != 1+(len(row)-2)+1 {
		t.Fatalf("got %d ops, want %d", len(sink.ops), len(row))
	}
	if op := sink.ops[0]; op.kind != "move" || op.px != 0 || op.py != 10 {
		t.Fatalf("first op %+v, want move to row start", op)
	}
	for i := 1; i < len(sink.ops)-1; i++ {
		op := sink.ops[i]
		if op.kind != "quad" {
			t.Fatalf("op %d is %q, want quad", i, op.kind)
		}
		ctrl := row[i]
		next := row[i+1]
		if op.cx != ctrl.X || op.cy != ctrl.Y {
			t.Fatalf("quad %d control (%v, %v), want lattice point (%v, %v)", i, op.cx, op.cy, ctrl.X, ctrl.Y)
		}
		if op.px != (ctrl.X+next.X)/2 || op.py != (ctrl.Y+next.Y)/2 {
			t.Fatalf("quad %d ends at (%v, %v), want midpoint", i, op.px, op.py)
		}
	}
	last := sink.ops[len(sink.ops)-1]
	endPt := row[len(row)-1]
	if last.kind != "line" || last.px != endPt.X || last.py != endPt.Y {
		t.Fatalf("last op %+v, want line to true endpoint (%v, %v)", last, endPt.X, endPt.Y)
	}
}

func TestTraceRowStraight(t *testing.T) {
	row := rowOf([2]float64{0, 0}, [2]float64{10, 5}, [2]float64{20, -3}, [2]float64{30, 1})
	var sink recordingSink
	traceRow(row, false, &sink)

	if len(sink.ops) != len(row) {
		t.Fatalf("got %d ops, want %d", len(sink.ops), len(row))
	}
	if sink.ops[0].kind != "move" {
		t.Fatalf("first op %q, want move", sink.ops[0].kind)
	}
	for i := 1; i < len(sink.ops); i++ {
		op := sink.ops[i]
		if op.kind != "line" || op.px != row[i].X || op.py != row[i].Y {
			t.Fatalf("op %d = %+v, want line to (%v, %v)", i, op, row[i].X, row[i].Y)
		}
	}
}

func TestTraceRowShortRows(t *testing.T) {
	var sink recordingSink
	traceRow(nil, true, &sink)
	if len(sink.ops) != 0 {
		t.Fatalf("empty row emitted %d ops", len(sink.ops))
	}

	sink.ops = nil
	traceRow(rowOf([2]float64{5, 5}), true, &sink)
	if len(sink.ops) != 1 || sink.ops[0].kind != "move" {
		t.Fatalf("single point row emitted %+v", sink.ops)
	}

	// Two points cannot form a midpoint curve; they get a plain line.
	sink.ops = nil
	traceRow(rowOf([2]float64{0, 0}, [2]float64{10, 10}), true, &sink)
	if len(sink.ops) != 2 || sink.ops[1].kind != "line" {
		t.Fatalf("two point row emitted %+v", sink.ops)
	}
}

// The traversal must read displaced positions, never bases.
func TestTraceRowUsesCurrentPositions(t *testing.T) {
	row := []waves.Point{
		{BaseX: 0, BaseY: 0, X: 3, Y: 7},
		{BaseX: 10, BaseY: 0, X: 13, Y: -2},
	}
	var sink recordingSink
	traceRow(row, false, &sink)
	if op := sink.ops[0]; op.px != 3 || op.py != 7 {
		t.Fatalf("traversal read base coordinates: %+v", op)
	}
	if op := sink.ops[1]; op.px != 13 || op.py != -2 {
		t.Fatalf("traversal read base coordinates: %+v", op)
	}
}
