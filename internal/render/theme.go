// Package render draws the wave lattice: a live Ebitengine renderer
// for the player window and a CPU rasterizer for snapshots. Both walk
// the lattice rows through the same traversal, so a snapshot shows
// exactly what the window would.
package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme pairs a background with a line style. Colors are straight
// (non-premultiplied) RGBA; line alpha below 255 lets crossing rows
// build up where the field folds.
type Theme struct {
	Name       string
	Background color.NRGBA
	Line       color.NRGBA
	LineWidth  float64
}

// Built-in looks. Midnight is the default player background.
var (
	Midnight = Theme{
		Name:       "midnight",
		Background: color.NRGBA{R: 8, G: 10, B: 24, A: 255},
		Line:       color.NRGBA{R: 150, G: 208, B: 255, A: 120},
		LineWidth:  1.6,
	}
	Ember = Theme{
		Name:       "ember",
		Background: color.NRGBA{R: 17, G: 8, B: 6, A: 255},
		Line:       color.NRGBA{R: 255, G: 148, B: 82, A: 110},
		LineWidth:  1.8,
	}
	Aurora = Theme{
		Name:       "aurora",
		Background: color.NRGBA{R: 4, G: 14, B: 12, A: 255},
		Line:       color.NRGBA{R: 120, G: 255, B: 190, A: 100},
		LineWidth:  1.5,
	}
	Paper = Theme{
		Name:       "paper",
		Background: color.NRGBA{R: 240, G: 238, B: 230, A: 255},
		Line:       color.NRGBA{R: 30, G: 34, B: 40, A: 90},
		LineWidth:  1.2,
	}
	Neon = Theme{
		Name:       "neon",
		Background: color.NRGBA{R: 10, G: 4, B: 18, A: 255},
		Line:       color.NRGBA{R: 255, G: 80, B: 220, A: 140},
		LineWidth:  2.2,
	}
)

// Themes lists every built-in theme. The order is what the
// theme-cycling key steps through.
var Themes = []Theme{Midnight, Ember, Aurora, Paper, Neon}

// DefaultTheme is used when a requested theme does not exist.
var DefaultTheme = Midnight

// GetTheme returns the named theme, falling back to DefaultTheme for
// unknown names.
func GetTheme(name string) Theme {
	for _, th := range Themes {
		if th.Name == name {
			return th
		}
	}
	return DefaultTheme
}

// ThemeNames lists the available theme names in cycling order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, th := range Themes {
		names[i] = th.Name
	}
	return names
}

// Fader crossfades between themes. Color channels blend in HCL space,
// which keeps midpoints perceptually sane where raw RGB averaging goes
// muddy; alpha and line width interpolate linearly.
type Fader struct {
	// Duration of a full fade in seconds.
	Duration float64

	from Theme
	to   Theme
	t    float64
}

// NewFader starts resting on initial.
func NewFader(initial Theme) *Fader {
	return &Fader{Duration: 0.6, from: initial, to: initial, t: 1}
}

// Switch starts a fade toward next. Switching mid-fade departs from
// the current blend, so there is no visual jump.
func (f *Fader) Switch(next Theme) {
	f.from = f.Current()
	f.to = next
	f.t = 0
}

// Advance moves the fade forward by dt seconds.
func (f *Fader) Advance(dt float64) {
	if f.t >= 1 || !(dt > 0) {
		return
	}
	if f.Duration <= 0 {
		f.t = 1
		return
	}
	f.t += dt / f.Duration
	if f.t > 1 {
		f.t = 1
	}
}

// Target returns the theme being faded toward.
func (f *Fader) Target() Theme {
	return f.to
}

// Current returns the blended theme. At either endpoint the exact
// theme values come back, not a reconverted blend.
func (f *Fader) Current() Theme {
	if f.t <= 0 {
		return f.from
	}
	if f.t >= 1 {
		return f.to
	}
	th := f.to
	th.Background = blendNRGBA(f.from.Background, f.to.Background, f.t)
	th.Line = blendNRGBA(f.from.Line, f.to.Line, f.t)
	th.LineWidth = f.from.LineWidth + (f.to.LineWidth-f.from.LineWidth)*f.t
	return th
}

func blendNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	m := ca.BlendHcl(cb, t).Clamped()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{
		R: uint8(m.R*255 + 0.5),
		G: uint8(m.G*255 + 0.5),
		B: uint8(m.B*255 + 0.5),
		A: uint8(alpha + 0.5),
	}
}
