// Package noise implements seeded 3D gradient noise and the fractal
// combinators built on top of it (fbm, turbulence, ridged multifractal).
//
// A Field is a pure function of its seed: two Fields constructed from the
// same seed return bit-identical values for identical inputs, forever. The
// sprite pipelines rely on this to regenerate atlases from a recorded seed
// on any platform, regardless of worker count.
//
// Usage:
//
//	f := noise.New(42)
//	v := f.Noise(1.5, 2.5, 0.0)          // raw signal in [-1, 1]
//	e := f.FBM(1.5, 2.5, 0.0, 4, 0.5)    // fractal sum in [0, 1]
package noise

import "math"

// Field is a seeded 3D gradient-noise generator. It is immutable after
// construction and safe for concurrent use.
type Field struct {
	seed int64
	perm [512]int
}

// New constructs a Field from a seed. The permutation table is a doubled
// permutation of 0..255 derived from the seed alone, so New(s) is a pure
// function of s.
func New(seed int64) *Field {
	return &Field{seed: seed, perm: permute(seed)}
}

// Seed returns the seed the Field was constructed from.
func (f *Field) Seed() int64 { return f.seed }

// permute builds the doubled permutation table for a seed: the identity
// table 0..255 shuffled by Fisher-Yates, driven by a linear congruential
// generator, then duplicated so lattice lookups wrap without masking.
func permute(seed int64) [512]int {
	var base [256]int
	for i := range base {
		base[i] = i
	}

	s := seed
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int(uint64(s>>16) % uint64(i+1))
		base[i], base[j] = base[j], base[i]
	}

	var perm [512]int
	for i := 0; i < 256; i++ {
		perm[i] = base[i]
		perm[i+256] = base[i]
	}
	return perm
}

// Noise computes 3D gradient noise at (x, y, z). Returns a value in [-1, 1].
//
// Lattice cell indices come from the integer parts of the coordinates masked
// to 0..255, fractional parts are smoothed with the fifth-order fade curve,
// and the result is a trilinear blend of gradient dot products at the eight
// cell corners.
func (f *Field) Noise(x, y, z float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255

	xf := x - math.Floor(x)
	yf := y - math.Floor(y)
	zf := z - math.Floor(z)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	aaa := f.perm[f.perm[f.perm[xi]+yi]+zi]
	aba := f.perm[f.perm[f.perm[xi]+yi+1]+zi]
	aab := f.perm[f.perm[f.perm[xi]+yi]+zi+1]
	abb := f.perm[f.perm[f.perm[xi]+yi+1]+zi+1]
	baa := f.perm[f.perm[f.perm[xi+1]+yi]+zi]
	bba := f.perm[f.perm[f.perm[xi+1]+yi+1]+zi]
	bab := f.perm[f.perm[f.perm[xi+1]+yi]+zi+1]
	bbb := f.perm[f.perm[f.perm[xi+1]+yi+1]+zi+1]

	x1 := lerp(u, grad(aaa, xf, yf, zf), grad(baa, xf-1, yf, zf))
	x2 := lerp(u, grad(aba, xf, yf-1, zf), grad(bba, xf-1, yf-1, zf))
	y1 := lerp(v, x1, x2)

	x1 = lerp(u, grad(aab, xf, yf, zf-1), grad(bab, xf-1, yf, zf-1))
	x2 = lerp(u, grad(abb, xf, yf-1, zf-1), grad(bbb, xf-1, yf-1, zf-1))
	y2 := lerp(v, x1, x2)

	return lerp(w, y1, y2)
}

// fade is the fifth-order smoothstep 6t^5 - 15t^4 + 10t^3. Its first and
// second derivatives vanish at t=0 and t=1, which keeps cell boundaries
// invisible in the output.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp linearly interpolates between a and b.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad returns the dot product of a pseudo-random corner gradient and the
// corner-relative offset vector. The low 4 hash bits select one of the 12
// edge-midpoint gradients (4 cases repeat).
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
