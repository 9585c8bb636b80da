package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/harrysaysyes/radio-player/internal/energy"
	"github.com/harrysaysyes/radio-player/internal/render"
	"github.com/harrysaysyes/radio-player/internal/waves"
)

// frameRequest is a pending animation callback. It exists so a cancel
// can tell whether the slot still holds its own request.
type frameRequest struct {
	fn func(now time.Time)
}

// App hosts the animation inside an Ebitengine window. It synthesizes
// pointer events from the polled cursor, debounces window resizes into
// a single lattice rebuild, and acts as the frame scheduler the engine
// loop runs on: Update fires at most one pending frame per tick.
type App struct {
	engine *waves.Engine
	loop   *waves.Loop
	rend   *render.Renderer
	fader  *render.Fader
	pulse  *energy.Pulse

	curved   bool
	themeIdx int

	pending *frameRequest

	surfaceW, surfaceH int
	pendingW, pendingH int
	resizeAt           time.Time

	cursorIn         bool
	cursorX, cursorY int

	lastStep  time.Duration
	destroyed bool
}

// newApp wires the engine, loop, renderer, and theme fader together.
// pulse may be nil for a silent run.
func newApp(cfg waves.Config, th render.Theme, pulse *energy.Pulse) (*App, error) {
	var src energy.Source = energy.Zero{}
	if pulse != nil {
		src = pulse
	}
	eng, err := waves.NewEngine(cfg, src)
	if err != nil {
		return nil, err
	}
	eng.SetViewport(waves.Viewport{Width: defaultWindowW, Height: defaultWindowH, Scale: 1})

	a := &App{
		engine:   eng,
		rend:     render.NewRenderer(),
		fader:    render.NewFader(th),
		pulse:    pulse,
		curved:   cfg.Curved,
		themeIdx: themeIndex(th.Name),
		surfaceW: defaultWindowW,
		surfaceH: defaultWindowH,
	}
	a.loop = waves.NewLoop(eng, a)
	a.loop.Start()
	return a, nil
}

// RequestFrame stores the callback for the next Update tick. Only one
// request is ever live; the loop rearms after each tick.
func (a *App) RequestFrame(fn func(now time.Time)) func() {
	req := &frameRequest{fn: fn}
	a.pending = req
	return func() {
		if a.pending == req {
			a.pending = nil
		}
	}
}

func (a *App) Update() error {
	if a.destroyed {
		return ebiten.Termination
	}
	now := time.Now()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.shutdown()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.themeIdx = (a.themeIdx + 1) % len(render.Themes)
		a.fader.Switch(render.Themes[a.themeIdx])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.curved = !a.curved
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && a.pulse != nil {
		a.pulse.SetMuted(!a.pulse.Muted())
	}

	a.applyPendingResize(now)
	a.syncPointer()

	if a.pulse != nil {
		a.pulse.Step(frameTime)
	}
	a.fader.Advance(1.0 / hostTPS)

	if req := a.pending; req != nil {
		a.pending = nil
		start := time.Now()
		req.fn(now)
		a.lastStep = time.Since(start)
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.rend.Draw(screen, a.engine.Grid(), a.fader.Current(), a.curved)

	if *debugFlag {
		rows, cols := 0, 0
		if g := a.engine.Grid(); g != nil {
			rows, cols = g.Rows, g.Cols
		}
		beat := "off"
		if a.pulse != nil {
			beat = "on"
			if a.pulse.Muted() {
				beat = "muted"
			}
		}
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nGrid: %dx%d\nClock: %.2fs\nEnergy: %.2f\nBeat: %s\nStep: %.2fms\nTheme: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), rows, cols,
			a.engine.Clock(), a.engine.Energy(), beat,
			float64(a.lastStep.Microseconds())/1000.0,
			a.fader.Target().Name)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical surface size and notes size changes for
// the debounced lattice rebuild.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	a.noteResize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// noteResize starts or extends the resize quiescence window. Repeated
// layouts at an unchanged size do not push the deadline out.
func (a *App) noteResize(w, h int) {
	if w == a.pendingW && h == a.pendingH {
		return
	}
	a.pendingW, a.pendingH = w, h
	a.resizeAt = time.Now().Add(resizeSettle)
}

// applyPendingResize rebuilds the lattice once the window has held its
// size for the full settle window.
func (a *App) applyPendingResize(now time.Time) {
	if a.pendingW == 0 && a.pendingH == 0 {
		return
	}
	if now.Before(a.resizeAt) {
		return
	}
	w, h := a.pendingW, a.pendingH
	a.pendingW, a.pendingH = 0, 0
	if w == a.surfaceW && h == a.surfaceH {
		return
	}
	a.surfaceW, a.surfaceH = w, h
	a.engine.SetViewport(waves.Viewport{
		Width:  float64(w),
		Height: float64(h),
		Scale:  ebiten.Monitor().DeviceScaleFactor(),
	})
}

// syncPointer turns the polled cursor into enter/move/leave events.
// Ebitengine reports coordinates outside the window once the cursor is
// gone; those count as a leave.
func (a *App) syncPointer() {
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < a.surfaceW && y < a.surfaceH
	switch {
	case inside && !a.cursorIn:
		a.cursorIn = true
		a.cursorX, a.cursorY = x, y
		a.engine.PointerEntered()
		a.engine.PointerMoved(float64(x), float64(y))
	case inside:
		if x != a.cursorX || y != a.cursorY {
			a.cursorX, a.cursorY = x, y
			a.engine.PointerMoved(float64(x), float64(y))
		}
	case a.cursorIn:
		a.cursorIn = false
		a.engine.PointerLeft()
	}
}

// shutdown stops the loop and tears the engine down. Safe to call
// twice.
func (a *App) shutdown() {
	if a.destroyed {
		return
	}
	a.destroyed = true
	a.loop.Stop()
	a.pending = nil
	a.engine.Destroy()
}

// themeIndex finds a theme's position in the cycling order, falling
// back to the first entry for unknown names.
func themeIndex(name string) int {
	for i, th := range render.Themes {
		if th.Name == name {
			return i
		}
	}
	return 0
}
