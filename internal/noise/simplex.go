// Package noise implements seeded simplex gradient noise in two and
// three dimensions. Samples are smooth, deterministic for a given seed,
// and fall in [-1, 1]. Sampling performs no allocation, so the field can
// be queried per point per frame.
package noise

import (
	"math"
	"math/rand"
)

// Skew factors for 2D and 3D simplex lattices.
var (
	f2 = 0.5 * (math.Sqrt(3.0) - 1.0)
	g2 = (3.0 - math.Sqrt(3.0)) / 6.0
)

const (
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
)

// grad3 holds the twelve gradient directions shared by 2D and 3D noise,
// the midpoints of the edges of a cube.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Simplex is a seeded noise field. The zero value is not usable; call
// New. A Simplex is immutable after construction and safe for
// concurrent readers.
type Simplex struct {
	perm [512]int
}

// New builds a noise field from seed. Equal seeds produce identical
// fields.
func New(seed int64) *Simplex {
	s := &Simplex{}
	p := rand.New(rand.NewSource(seed)).Perm(256)
	// Double the table so lattice lookups never need a modulo.
	for i := range s.perm {
		s.perm[i] = p[i&255]
	}
	return s
}

// Noise2D samples the field at (x, y) and returns a value in [-1, 1].
func (s *Simplex) Noise2D(x, y float64) float64 {
	// Skew the input to determine the containing simplex cell.
	sk := (x + y) * f2
	i := fastFloor(x + sk)
	j := fastFloor(y + sk)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Offsets for the middle corner depend on which triangle we are in.
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255
	gi0 := s.perm[ii+s.perm[jj]] % 12
	gi1 := s.perm[ii+i1+s.perm[jj+j1]] % 12
	gi2 := s.perm[ii+1+s.perm[jj+1]] % 12

	var n0, n1, n2 float64
	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * dot2(grad3[gi0], x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * dot2(grad3[gi1], x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * dot2(grad3[gi2], x2, y2)
	}

	// 70 scales the summed contributions to roughly [-1, 1].
	return 70.0 * (n0 + n1 + n2)
}

// Noise3D samples the field at (x, y, z) and returns a value in [-1, 1].
// The third coordinate is typically time, which yields a 2D field that
// evolves smoothly.
func (s *Simplex) Noise3D(x, y, z float64) float64 {
	sk := (x + y + z) * f3
	i := fastFloor(x + sk)
	j := fastFloor(y + sk)
	k := fastFloor(z + sk)

	t := float64(i+j+k) * g3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Rank the coordinates to pick the simplex (one of six tetrahedra).
	var i1, j1, k1, i2, j2, k2 int
	switch {
	case x0 >= y0 && y0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
	case x0 >= y0 && x0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
	case x0 >= y0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
	case y0 < z0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
	case x0 < z0:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
	default:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2.0*g3
	y2 := y0 - float64(j2) + 2.0*g3
	z2 := z0 - float64(k2) + 2.0*g3
	x3 := x0 - 1.0 + 3.0*g3
	y3 := y0 - 1.0 + 3.0*g3
	z3 := z0 - 1.0 + 3.0*g3

	ii := i & 255
	jj := j & 255
	kk := k & 255
	gi0 := s.perm[ii+s.perm[jj+s.perm[kk]]] % 12
	gi1 := s.perm[ii+i1+s.perm[jj+j1+s.perm[kk+k1]]] % 12
	gi2 := s.perm[ii+i2+s.perm[jj+j2+s.perm[kk+k2]]] % 12
	gi3 := s.perm[ii+1+s.perm[jj+1+s.perm[kk+1]]] % 12

	var n0, n1, n2, n3 float64
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * dot3(grad3[gi0], x0, y0, z0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * dot3(grad3[gi1], x1, y1, z1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * dot3(grad3[gi2], x2, y2, z2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		t3 *= t3
		n3 = t3 * t3 * dot3(grad3[gi3], x3, y3, z3)
	}

	// 32 scales the summed contributions to roughly [-1, 1].
	return 32.0 * (n0 + n1 + n2 + n3)
}

// fastFloor avoids math.Floor's special-case handling; noise inputs are
// always finite.
func fastFloor(x float64) int {
	if x >= 0 {
		return int(x)
	}
	return int(x) - 1
}

func dot2(g [3]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

func dot3(g [3]float64, x, y, z float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z
}
