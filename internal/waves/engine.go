// Package waves animates a lattice of points with layered simplex
// noise and pointer-driven springs. It is the moving background of the
// player: each lattice row is stroked as a flowing horizontal line.
//
// The package is single-threaded on purpose. A host drives the Engine
// by calling Step once per frame and then reads the lattice; nothing
// here spawns goroutines, blocks, or allocates during a frame.
package waves

import (
	"fmt"

	"github.com/harrysaysyes/radio-player/internal/energy"
	"github.com/harrysaysyes/radio-player/internal/noise"
)

// refTPS is the tick rate the spring constants are tuned against.
// Frame deltas are normalized to this rate before integration.
const refTPS = 60.0

// Viewport describes the drawing surface in logical pixels. Scale is
// the device pixel ratio, carried along for hosts that rasterize at
// physical resolution.
type Viewport struct {
	Width  float64
	Height float64
	Scale  float64
}

// Engine owns the full animation state: lattice, noise field, pointer
// springs, energy response, and the field clock. It has no opinion on
// rendering; hosts read Grid after each Step.
type Engine struct {
	cfg  Config
	disp displacer
	grid *Grid
	ptr  Pointer
	src  energy.Source
	view Viewport

	clock     float64
	level     float64
	destroyed bool
}

// NewEngine validates cfg and builds an engine. The energy source is
// fixed for the engine's lifetime; nil falls back to silence. The
// lattice does not exist until the first SetViewport.
func NewEngine(cfg Config, src energy.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if src == nil {
		src = energy.Zero{}
	}
	return &Engine{
		cfg:  cfg,
		disp: displacer{field: noise.New(cfg.Seed)},
		src:  src,
	}, nil
}

// SetViewport rebuilds the lattice for a new surface size. The old
// grid is replaced wholesale between frames, never mutated, and all
// spring state starts from rest. Hosts should debounce streams of
// resize events before calling this.
func (e *Engine) SetViewport(v Viewport) {
	if e.destroyed {
		return
	}
	if !isFinite(v.Scale) || v.Scale <= 0 {
		v.Scale = 1
	}
	e.grid = buildGrid(v.Width, v.Height, &e.cfg)
	v.Width, v.Height = e.grid.Width, e.grid.Height
	e.view = v
}

// SetConfig swaps the tuning wholesale. The lattice is rebuilt, which
// resets spring state; the clock and pointer carry over. The noise
// field is reseeded only when the seed changed.
func (e *Engine) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if e.destroyed {
		return fmt.Errorf("engine destroyed")
	}
	reseed := cfg.Seed != e.cfg.Seed
	e.cfg = cfg
	if reseed {
		e.disp = displacer{field: noise.New(cfg.Seed)}
	}
	if e.grid != nil {
		e.grid = buildGrid(e.view.Width, e.view.Height, &e.cfg)
	}
	return nil
}

// Config returns a copy of the current tuning.
func (e *Engine) Config() Config {
	return e.cfg
}

// PointerMoved feeds a cursor position in surface coordinates.
func (e *Engine) PointerMoved(x, y float64) {
	if e.destroyed {
		return
	}
	e.ptr.Move(x, y, &e.cfg)
}

// PointerEntered marks the cursor present.
func (e *Engine) PointerEntered() {
	if e.destroyed {
		return
	}
	e.ptr.Enter()
}

// PointerLeft stops further injection; springs settle on their own.
func (e *Engine) PointerLeft() {
	if e.destroyed {
		return
	}
	e.ptr.Leave()
}

// Step advances the animation by dt seconds of wall time: poll energy,
// advance the clock, inject pointer velocity, settle the springs, and
// recompute every point as base + noise displacement + spring offset.
// Base coordinates are never touched.
func (e *Engine) Step(dt float64) {
	g := e.grid
	if e.destroyed || g == nil {
		return
	}
	if !isFinite(dt) || dt < 0 {
		dt = 0
	}

	level := e.src.Level()
	if !isFinite(level) {
		level = 0
	}
	e.level = clamp(level, 0, 1)

	e.clock += dt * e.cfg.RateAt(e.level)
	amp := e.cfg.AmplitudeAt(e.level)

	injectCursorVelocity(g.Points, &e.ptr, &e.cfg)
	settleSprings(g.Points, dt*refTPS, &e.cfg)

	for i := range g.Points {
		p := &g.Points[i]
		ox, oy := e.disp.offset(&e.cfg, p.BaseX, p.BaseY, e.clock, amp)
		p.X = p.BaseX + ox + p.SpringOffX
		p.Y = p.BaseY + oy + p.SpringOffY
	}
}

// Grid returns the current lattice. It is replaced, not mutated, on
// resize, so holding the returned pointer across a resize keeps a
// consistent stale lattice.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Clock returns the accumulated field time.
func (e *Engine) Clock() float64 {
	return e.clock
}

// Energy returns the level polled during the last Step, clamped to
// [0, 1].
func (e *Engine) Energy() float64 {
	return e.level
}

// Viewport returns the surface the lattice was built for.
func (e *Engine) Viewport() Viewport {
	return e.view
}

// Destroy drops the lattice and turns every further call into a no-op.
func (e *Engine) Destroy() {
	e.destroyed = true
	e.grid = nil
	e.src = energy.Zero{}
}
