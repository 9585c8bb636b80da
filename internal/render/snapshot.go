package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/harrysaysyes/radio-player/internal/waves"
)

// ggPath adapts a gg context to the row traversal.
type ggPath struct {
	ctx *gg.Context
}

func (s ggPath) moveTo(x, y float64) {
	s.ctx.MoveTo(x, y)
}

func (s ggPath) quadTo(cx, cy, x, y float64) {
	s.ctx.QuadraticTo(cx, cy, x, y)
}

func (s ggPath) lineTo(x, y float64) {
	s.ctx.LineTo(x, y)
}

// Rasterize renders the lattice on the CPU, one stroke per row, using
// the same traversal as the live renderer. scale supersamples the
// output, so passing the device pixel ratio yields a native-resolution
// capture.
func Rasterize(g *waves.Grid, th Theme, curved bool, scale float64) (image.Image, error) {
	if g == nil || len(g.Points) == 0 {
		return nil, fmt.Errorf("no lattice to render")
	}
	if !(scale > 0) {
		scale = 1
	}
	w := int(g.Width*scale + 0.5)
	h := int(g.Height*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	ctx := gg.NewContext(w, h)
	ctx.SetColor(th.Background)
	ctx.Clear()
	ctx.Scale(scale, scale)
	ctx.SetColor(th.Line)
	ctx.SetLineWidth(th.LineWidth)
	ctx.SetLineCapRound()
	ctx.SetLineJoinRound()

	for r := 0; r < g.Rows; r++ {
		traceRow(g.Row(r), curved, ggPath{ctx})
		ctx.Stroke()
	}
	return ctx.Image(), nil
}

// WritePNG rasterizes the lattice and writes it to path.
func WritePNG(path string, g *waves.Grid, th Theme, curved bool, scale float64) error {
	img, err := Rasterize(g, th, curved, scale)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
