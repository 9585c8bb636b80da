package energy

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Envelope shaping. The spring is underdamped so each beat lands with
// a small bounce, and the target decays between beats so the level
// swells and relaxes instead of stepping.
const (
	pulseFrequency = 7.0
	pulseDamping   = 0.6
	pulseDecay     = 0.96
	defaultTempo   = 96
)

// Pulse synthesizes a beat-like energy signal without any audio input:
// on every beat the envelope target jumps to a random accent and a
// spring chases it. Deterministic for a given seed. The spring step is
// tuned for a 60Hz host; Step's delta only schedules beats.
type Pulse struct {
	spring harmonica.Spring
	rng    *rand.Rand

	interval time.Duration
	until    time.Duration

	level  float64
	vel    float64
	target float64
	muted  bool
}

// NewPulse builds a pulse source at the given tempo in beats per
// minute. Non-positive or non-finite tempos fall back to 96.
func NewPulse(bpm float64, seed int64) *Pulse {
	if !(bpm > 0) || bpm > 100000 {
		bpm = defaultTempo
	}
	return &Pulse{
		spring:   harmonica.NewSpring(harmonica.FPS(60), pulseFrequency, pulseDamping),
		rng:      rand.New(rand.NewSource(seed)),
		interval: time.Duration(float64(time.Minute) / bpm),
	}
}

// Step advances the envelope by one frame of dt wall time. The first
// call lands a beat immediately so the animation starts alive.
func (p *Pulse) Step(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	p.until -= dt
	if p.until <= 0 {
		p.until += p.interval
		if p.until < 0 {
			// Long stall: resync to the next beat instead of
			// replaying every missed one.
			p.until = p.interval
		}
		if !p.muted {
			p.target = 0.35 + 0.65*p.rng.Float64()
		}
	}
	p.level, p.vel = p.spring.Update(p.level, p.vel, p.target)
	p.target *= pulseDecay
}

// SetMuted pauses beat scheduling. The envelope relaxes to silence
// instead of cutting, and unmuting picks the beat back up within one
// interval.
func (p *Pulse) SetMuted(muted bool) {
	p.muted = muted
}

// Muted reports whether beat scheduling is paused.
func (p *Pulse) Muted() bool {
	return p.muted
}

// Level reports the current envelope, clamped to [0, 1].
func (p *Pulse) Level() float64 {
	if p.level < 0 {
		return 0
	}
	if p.level > 1 {
		return 1
	}
	return p.level
}
