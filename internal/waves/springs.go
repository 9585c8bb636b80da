package waves

import "math"

// injectCursorVelocity transfers the pointer's velocity into the spring
// velocity of every point inside the influence radius. The weight falls
// off quadratically with distance and the radius widens with pointer
// speed, so fast sweeps disturb a broader band of the lattice. Points
// sitting exactly on the pointer are skipped.
func injectCursorVelocity(points []Point, ptr *Pointer, cfg *Config) {
	if !ptr.Active || !ptr.seen {
		return
	}
	speed := ptr.Speed()
	radius := cfg.CursorRadius + speed*cfg.CursorRadiusBoost
	if radius <= 0 || cfg.CursorStrength <= 0 {
		return
	}

	var uvx, uvy float64
	if cfg.DirectionalBias && speed > 0 {
		uvx, uvy = ptr.VelX/speed, ptr.VelY/speed
	}

	r2 := radius * radius
	for i := range points {
		p := &points[i]
		dx := p.X - ptr.SmoothX
		dy := p.Y - ptr.SmoothY
		d2 := dx*dx + dy*dy
		if d2 == 0 || d2 >= r2 {
			continue
		}
		w := (1 - d2/r2) * cfg.CursorStrength
		if cfg.DirectionalBias && speed > 0 {
			// Points ahead of the motion get up to double weight,
			// points behind fade toward zero.
			align := (dx*uvx + dy*uvy) / math.Sqrt(d2)
			w *= 0.5 + 0.5*align
		}
		p.SpringVelX += ptr.VelX * w
		p.SpringVelY += ptr.VelY * w
	}
}

// settleSprings advances every point's spring one frame: pull toward
// zero offset, damp, integrate, clamp. dtNorm is the frame delta
// normalized to a 60Hz step. Any point whose state has gone non-finite
// is reset to rest instead of poisoning the lattice.
func settleSprings(points []Point, dtNorm float64, cfg *Config) {
	k := cfg.SpringTension
	f := cfg.SpringFriction
	max := cfg.MaxOffset
	for i := range points {
		p := &points[i]
		p.SpringVelX -= p.SpringOffX * k
		p.SpringVelY -= p.SpringOffY * k
		p.SpringVelX *= f
		p.SpringVelY *= f
		p.SpringOffX = clamp(p.SpringOffX+p.SpringVelX*dtNorm, -max, max)
		p.SpringOffY = clamp(p.SpringOffY+p.SpringVelY*dtNorm, -max, max)
		if !isFinite(p.SpringOffX) || !isFinite(p.SpringOffY) ||
			!isFinite(p.SpringVelX) || !isFinite(p.SpringVelY) {
			p.SpringOffX, p.SpringOffY = 0, 0
			p.SpringVelX, p.SpringVelY = 0, 0
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
