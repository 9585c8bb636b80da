package waves

import "math"

// Pointer tracks the cursor in surface coordinates. Positions are
// smoothed with an EMA so jittery input devices do not rattle the
// springs, and the per-event velocity is smoothed and clamped the same
// way. The physics pass only reads this state, never writes it.
type Pointer struct {
	X, Y             float64
	SmoothX, SmoothY float64
	VelX, VelY       float64
	Active           bool

	// seen marks that a position baseline exists; the first move after
	// entry produces no velocity.
	seen bool
}

// Move feeds a new cursor position. Non-finite coordinates are dropped.
func (p *Pointer) Move(x, y float64, cfg *Config) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	p.Active = true
	if !p.seen {
		p.seen = true
		p.X, p.Y = x, y
		p.SmoothX, p.SmoothY = x, y
		p.VelX, p.VelY = 0, 0
		return
	}

	dx := x - p.X
	dy := y - p.Y
	p.X, p.Y = x, y

	a := cfg.PointerSmoothing
	p.SmoothX += (x - p.SmoothX) * a
	p.SmoothY += (y - p.SmoothY) * a

	va := cfg.PointerVelSmoothing
	p.VelX += (dx - p.VelX) * va
	p.VelY += (dy - p.VelY) * va
	if mag := math.Hypot(p.VelX, p.VelY); mag > cfg.PointerVelMax {
		scale := cfg.PointerVelMax / mag
		p.VelX *= scale
		p.VelY *= scale
	}
}

// Enter marks the pointer present. Position state stays unset until the
// first Move.
func (p *Pointer) Enter() {
	p.Active = true
}

// Leave marks the pointer gone. Springs keep settling but receive no
// further injection, and the next entry starts from a fresh baseline.
func (p *Pointer) Leave() {
	p.Active = false
	p.seen = false
	p.VelX, p.VelY = 0, 0
}

// Speed returns the magnitude of the smoothed velocity.
func (p *Pointer) Speed() float64 {
	return math.Hypot(p.VelX, p.VelY)
}
