// Package energy supplies the intensity signal that drives the
// animation: displacement amplitude and clock rate both scale with the
// level. A source reports a dimensionless level, nominally in [0, 1];
// consumers clamp whatever they receive.
package energy

// Source reports the momentary intensity. Level is polled once per
// frame and must not block.
type Source interface {
	Level() float64
}

// Zero is the silent source, wired up when no signal is available. The
// animation then runs on its base tuning alone.
type Zero struct{}

// Level always reports silence.
func (Zero) Level() float64 { return 0 }
