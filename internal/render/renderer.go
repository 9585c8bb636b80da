package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/harrysaysyes/radio-player/internal/waves"
)

// Renderer strokes lattice rows onto an Ebitengine image: exactly one
// path and one triangle batch per row. Vertex and index buffers are
// reused across rows and frames, and the stroke source is the 1x1
// center of a small white image so edge filtering never bleeds.
type Renderer struct {
	white *ebiten.Image
	src   *ebiten.Image
	vtx   []ebiten.Vertex
	idx   []uint16
}

// NewRenderer allocates the stroke source. Call once; the renderer is
// reused every frame.
func NewRenderer() *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		white: white,
		src:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// ebitenPath adapts vector.Path to the row traversal.
type ebitenPath struct {
	p vector.Path
}

func (b *ebitenPath) moveTo(x, y float64) {
	b.p.MoveTo(float32(x), float32(y))
}

func (b *ebitenPath) quadTo(cx, cy, x, y float64) {
	b.p.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
}

func (b *ebitenPath) lineTo(x, y float64) {
	b.p.LineTo(float32(x), float32(y))
}

// Draw fills dst with the theme background and strokes every lattice
// row. A nil or degenerate grid just clears the screen.
func (r *Renderer) Draw(dst *ebiten.Image, g *waves.Grid, th Theme, curved bool) {
	dst.Fill(th.Background)
	if g == nil || g.Cols < 2 {
		return
	}

	strokeOp := &vector.StrokeOptions{}
	strokeOp.Width = float32(th.LineWidth)
	strokeOp.LineCap = vector.LineCapRound
	strokeOp.LineJoin = vector.LineJoinRound

	cr := float32(th.Line.R) / 255
	cg := float32(th.Line.G) / 255
	cb := float32(th.Line.B) / 255
	ca := float32(th.Line.A) / 255

	drawOp := &ebiten.DrawTrianglesOptions{AntiAlias: true}

	for row := 0; row < g.Rows; row++ {
		var b ebitenPath
		traceRow(g.Row(row), curved, &b)
		r.vtx, r.idx = b.p.AppendVerticesAndIndicesForStroke(r.vtx[:0], r.idx[:0], strokeOp)
		for i := range r.vtx {
			r.vtx[i].SrcX = 1
			r.vtx[i].SrcY = 1
			r.vtx[i].ColorR = cr
			r.vtx[i].ColorG = cg
			r.vtx[i].ColorB = cb
			r.vtx[i].ColorA = ca
		}
		dst.DrawTriangles(r.vtx, r.idx, r.src, drawOp)
	}
}
