package waves

import (
	"math"

	"github.com/harrysaysyes/radio-player/internal/noise"
)

// All layers sample one shared field; offsetting the coordinates of a
// layer gives it an independent channel without a second permutation
// table.
const (
	warpChannel  = 100.0
	ridgeChannel = 310.0
)

// angleGain maps a noise sample in [-1, 1] onto a direction in [-pi, pi].
const angleGain = math.Pi

// displacer turns the noise field into a per-point rest displacement.
// Layers stack: a vector warp bends the sample coordinates, a coarser
// domain warp shears them vertically, the primary field picks an angle,
// and the ridge layer folds the result into crests. At most five noise
// evaluations per point, no allocation.
type displacer struct {
	field *noise.Simplex
}

// offset returns the displacement for the point at base (x, y) at field
// time t. amp is the energy-scaled amplitude in pixels.
func (d displacer) offset(cfg *Config, x, y, t, amp float64) (float64, float64) {
	sx, sy := x, y

	if cfg.WarpEnabled {
		wx := d.field.Noise3D(x*cfg.WarpScale, y*cfg.WarpScale, t*cfg.WarpSpeed)
		wy := d.field.Noise3D(x*cfg.WarpScale+warpChannel, y*cfg.WarpScale-warpChannel, t*cfg.WarpSpeed)
		sx += wx * cfg.WarpAmp
		sy += wy * cfg.WarpAmp
	}

	if cfg.DomainEnabled {
		dw := d.field.Noise3D(sx*cfg.DomainScale, sy*cfg.DomainScale, t*cfg.DomainSpeed)
		sy += dw * cfg.DomainAmp
	}

	angle := d.field.Noise3D(sx*cfg.NoiseScale, sy*cfg.NoiseScale, t*cfg.NoiseSpeed) * angleGain
	dx := math.Cos(angle) * amp
	dy := math.Sin(angle) * amp

	if cfg.RidgeEnabled {
		r := math.Abs(d.field.Noise3D(x*cfg.RidgeScale+ridgeChannel, y*cfg.RidgeScale, t*cfg.RidgeSpeed))
		if cfg.RidgePower != 1 {
			r = math.Pow(r, cfg.RidgePower)
		}
		dx *= r
		dy *= r
	}

	return dx, dy
}
