package waves

import (
	"math"
	"testing"
)

// fixedSource reports a constant energy level.
type fixedSource float64

func (f fixedSource) Level() float64 { return float64(f) }

func newTestEngine(t *testing.T, cfg Config, level float64) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, fixedSource(level))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

// With amplitude zero the noise layers contribute nothing, so every
// point must sit exactly on its base after any number of steps.
func TestStepStillField(t *testing.T) {
	cfg := gridConfig(10, 10, 0, false)
	cfg.Amplitude = 0
	e := newTestEngine(t, cfg, 0)
	e.SetViewport(Viewport{Width: 25, Height: 15, Scale: 1})

	g := e.Grid()
	if g.Cols != 3 || g.Rows != 2 {
		t.Fatalf("grid %dx%d, want 3x2", g.Cols, g.Rows)
	}
	for i := 0; i < 5; i++ {
		e.Step(1.0 / 60)
	}
	for i, p := range g.Points {
		if p.X != p.BaseX || p.Y != p.BaseY {
			t.Fatalf("point %d drifted to (%v, %v) from base (%v, %v)", i, p.X, p.Y, p.BaseX, p.BaseY)
		}
	}
}

// Base coordinates are derived only from the build parameters; frames
// never touch them, no matter what the pointer and energy do.
func TestBaseCoordinatesImmutable(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEngine(t, cfg, 0.8)
	e.SetViewport(Viewport{Width: 300, Height: 200, Scale: 1})

	g := e.Grid()
	bases := make([][2]float64, len(g.Points))
	for i, p := range g.Points {
		bases[i] = [2]float64{p.BaseX, p.BaseY}
	}

	e.PointerEntered()
	for i := 0; i < 60; i++ {
		e.PointerMoved(float64(10+i*3), 100)
		e.Step(1.0 / 60)
	}
	for i, p := range g.Points {
		if p.BaseX != bases[i][0] || p.BaseY != bases[i][1] {
			t.Fatalf("point %d base moved from %v to (%v, %v)", i, bases[i], p.BaseX, p.BaseY)
		}
	}
}

func TestStepDisplacesWithinBounds(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEngine(t, cfg, 0)
	e.SetViewport(Viewport{Width: 400, Height: 300, Scale: 1})

	moved := false
	for i := 0; i < 10; i++ {
		e.Step(1.0 / 60)
	}
	limit := cfg.Amplitude + cfg.MaxOffset
	for i, p := range e.Grid().Points {
		dx, dy := p.X-p.BaseX, p.Y-p.BaseY
		if math.Hypot(dx, dy) > limit+1e-9 {
			t.Fatalf("point %d displaced %v, limit %v", i, math.Hypot(dx, dy), limit)
		}
		if dx != 0 || dy != 0 {
			moved = true
		}
	}
	if !moved {
		t.Fatal("field did not move at all")
	}
}

func TestClockFollowsWallTime(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEngine(t, cfg, 0)
	e.SetViewport(Viewport{Width: 50, Height: 50, Scale: 1})

	e.Step(0.5)
	if math.Abs(e.Clock()-0.5) > 1e-12 {
		t.Fatalf("clock = %v after 0.5s at silence, want 0.5", e.Clock())
	}
	// Garbage deltas must not advance the clock.
	e.Step(-1)
	e.Step(math.NaN())
	e.Step(math.Inf(1))
	if math.Abs(e.Clock()-0.5) > 1e-12 {
		t.Fatalf("garbage deltas moved the clock to %v", e.Clock())
	}
}

func TestClockAcceleratesWithEnergy(t *testing.T) {
	cfg := DefaultConfig()

	quiet := newTestEngine(t, cfg, 0)
	quiet.SetViewport(Viewport{Width: 50, Height: 50, Scale: 1})
	loud := newTestEngine(t, cfg, 1)
	loud.SetViewport(Viewport{Width: 50, Height: 50, Scale: 1})

	for i := 0; i < 10; i++ {
		quiet.Step(1.0 / 60)
		loud.Step(1.0 / 60)
	}
	if !(loud.Clock() > quiet.Clock()) {
		t.Fatalf("full energy clock %v not ahead of silent clock %v", loud.Clock(), quiet.Clock())
	}
}

func TestEnergyLevelClamped(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEngine(t, cfg, 3.7)
	e.SetViewport(Viewport{Width: 50, Height: 50, Scale: 1})
	e.Step(1.0 / 60)
	if e.Energy() != 1 {
		t.Fatalf("energy %v, want clamp to 1", e.Energy())
	}

	e = newTestEngine(t, cfg, math.NaN())
	e.SetViewport(Viewport{Width: 50, Height: 50, Scale: 1})
	e.Step(1.0 / 60)
	if e.Energy() != 0 {
		t.Fatalf("NaN energy read as %v, want 0", e.Energy())
	}
}

func TestSetViewportSwapsGrid(t *testing.T) {
	cfg := gridConfig(40, 40, 0, true)
	e := newTestEngine(t, cfg, 0)
	e.SetViewport(Viewport{Width: 800, Height: 600, Scale: 1})

	old := e.Grid()
	oldLen := len(old.Points)
	e.SetViewport(Viewport{Width: 400, Height: 300, Scale: 2})

	fresh := e.Grid()
	if fresh == old {
		t.Fatal("resize mutated the grid instead of replacing it")
	}
	if len(old.Points) != oldLen {
		t.Fatal("resize touched the old lattice")
	}
	if fresh.Cols != 10 || fresh.Rows != 8 {
		t.Fatalf("fresh grid %dx%d, want 10x8", fresh.Cols, fresh.Rows)
	}
	if e.Viewport().Scale != 2 {
		t.Fatalf("scale = %v, want 2", e.Viewport().Scale)
	}
}

func TestSetViewportSanitizesScale(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEngine(t, cfg, 0)
	e.SetViewport(Viewport{Width: 100, Height: 100, Scale: math.NaN()})
	if e.Viewport().Scale != 1 {
		t.Fatalf("scale = %v, want fallback 1", e.Viewport().Scale)
	}
}

func TestStepBeforeViewport(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), 0)
	e.Step(1.0 / 60)
	if e.Grid() != nil {
		t.Fatal("grid appeared without a viewport")
	}
	if e.Clock() != 0 {
		t.Fatalf("clock advanced without a lattice: %v", e.Clock())
	}
}

func TestPointerRejectsNonFinite(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), 0)
	e.SetViewport(Viewport{Width: 100, Height: 100, Scale: 1})

	e.PointerMoved(math.NaN(), 10)
	e.PointerMoved(10, math.Inf(-1))
	if e.ptr.Active {
		t.Fatal("non-finite coordinates activated the pointer")
	}
	e.PointerMoved(10, 10)
	if !e.ptr.Active {
		t.Fatal("valid move did not activate the pointer")
	}
	if e.ptr.X != 10 || e.ptr.Y != 10 {
		t.Fatalf("pointer at (%v, %v), want (10, 10)", e.ptr.X, e.ptr.Y)
	}
}

// Dragging the cursor across the field disturbs nearby springs, and
// the disturbance dies out after the pointer leaves.
func TestCursorDisturbanceSettles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Amplitude = 0
	e := newTestEngine(t, cfg, 0)
	e.SetViewport(Viewport{Width: 400, Height: 300, Scale: 1})

	e.PointerEntered()
	e.PointerMoved(180, 150)
	e.Step(1.0 / 60)
	for i := 0; i < 10; i++ {
		e.PointerMoved(180+float64(i+1)*8, 150)
		e.Step(1.0 / 60)
	}

	maxOff := 0.0
	for _, p := range e.Grid().Points {
		if v := math.Hypot(p.SpringOffX, p.SpringOffY); v > maxOff {
			maxOff = v
		}
	}
	if maxOff == 0 {
		t.Fatal("cursor drag never disturbed the lattice")
	}

	e.PointerLeft()
	for i := 0; i < 300; i++ {
		e.Step(1.0 / 60)
	}
	for i, p := range e.Grid().Points {
		if math.Hypot(p.SpringOffX, p.SpringOffY) > 0.01 {
			t.Fatalf("point %d still excited after settle: %+v", i, p)
		}
	}
}

func TestSetConfigRebuilds(t *testing.T) {
	e := newTestEngine(t, gridConfig(40, 40, 0, false), 0)
	e.SetViewport(Viewport{Width: 400, Height: 400, Scale: 1})
	if e.Grid().Cols != 10 {
		t.Fatalf("cols = %d, want 10", e.Grid().Cols)
	}

	next := gridConfig(20, 20, 0, false)
	if err := e.SetConfig(next); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	if e.Grid().Cols != 20 {
		t.Fatalf("cols = %d after respacing, want 20", e.Grid().Cols)
	}
}

func TestSetConfigRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEngine(t, cfg, 0)
	e.SetViewport(Viewport{Width: 100, Height: 100, Scale: 1})
	e.Step(0.5)

	bad := cfg
	bad.SpringFriction = 2
	if err := e.SetConfig(bad); err == nil {
		t.Fatal("invalid config accepted")
	}
	if e.Config().SpringFriction != cfg.SpringFriction {
		t.Fatal("rejected config still applied")
	}
	if math.Abs(e.Clock()-0.5) > 1e-12 {
		t.Fatalf("rejected config disturbed the clock: %v", e.Clock())
	}
}

func TestSetConfigKeepsClock(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEngine(t, cfg, 0)
	e.SetViewport(Viewport{Width: 100, Height: 100, Scale: 1})
	e.Step(0.5)

	next := cfg
	next.Amplitude = 10
	if err := e.SetConfig(next); err != nil {
		t.Fatal(err)
	}
	if math.Abs(e.Clock()-0.5) > 1e-12 {
		t.Fatalf("config swap reset the clock to %v", e.Clock())
	}
}

func TestDestroyMakesEngineInert(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), 0)
	e.SetViewport(Viewport{Width: 100, Height: 100, Scale: 1})
	e.Destroy()

	if e.Grid() != nil {
		t.Fatal("grid survived destroy")
	}
	e.Step(1.0 / 60)
	e.PointerMoved(10, 10)
	e.PointerEntered()
	e.PointerLeft()
	e.SetViewport(Viewport{Width: 50, Height: 50, Scale: 1})
	if e.Grid() != nil {
		t.Fatal("destroyed engine rebuilt a grid")
	}
	if err := e.SetConfig(DefaultConfig()); err == nil {
		t.Fatal("destroyed engine accepted a config")
	}
}

func TestNilEnergySourceReadsSilent(t *testing.T) {
	e, err := NewEngine(DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	e.SetViewport(Viewport{Width: 100, Height: 100, Scale: 1})
	e.Step(1.0 / 60)
	if e.Energy() != 0 {
		t.Fatalf("nil source read as %v", e.Energy())
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpacingX = -1
	if _, err := NewEngine(cfg, nil); err == nil {
		t.Fatal("invalid config accepted at construction")
	}
}

func BenchmarkEngineStep(b *testing.B) {
	e, err := NewEngine(DefaultConfig(), energyBenchSource{})
	if err != nil {
		b.Fatal(err)
	}
	e.SetViewport(Viewport{Width: 1280, Height: 720, Scale: 1})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Step(1.0 / 60)
	}
}

type energyBenchSource struct{}

func (energyBenchSource) Level() float64 { return 0.5 }
