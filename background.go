package starsmith

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// BackgroundSpec describes one nebula backdrop. Backdrops are single
// frame and render at full resolution.
type BackgroundSpec struct {
	Size int
	Seed int64
}

// RenderBackground renders a nebula backdrop: layered 2D perlin density
// mapped through a seed-tinted color ramp, with star speckles scattered on
// top. Backgrounds sit outside the atlas rotation contract but are still
// fully seeded and reproducible.
func RenderBackground(spec BackgroundSpec) *Atlas {
	if spec.Size < 16 {
		spec.Size = DefaultBackgroundSize
	}
	a := NewAtlas(spec.Size, 1)
	p := perlin.NewPerlin(2, 2, 3, spec.Seed)

	// The nebula hue comes from the seed, so every backdrop in a set gets
	// its own cast while staying reproducible.
	hue := float64(uint64(spec.Seed) % 360)
	ramp := NewRamp(
		ColorStop{Offset: 0, Color: Hex("05060f")},
		ColorStop{Offset: 0.55, Color: HSL(hue, 0.45, 0.18)},
		ColorStop{Offset: 0.80, Color: HSL(hue+40, 0.55, 0.34)},
		ColorStop{Offset: 1, Color: HSL(hue+70, 0.35, 0.55)},
	)

	scale := 3.0 / float64(spec.Size)
	for y := 0; y < spec.Size; y++ {
		for x := 0; x < spec.Size; x++ {
			nx := float64(x) * scale
			ny := float64(y) * scale
			d := 0.6*perlin01(p, nx, ny) +
				0.3*perlin01(p, nx*2.7+13, ny*2.7+13) +
				0.1*perlin01(p, nx*7.1+31, ny*7.1+31)
			// Deepen the dark regions so the nebula reads as wisps over
			// void rather than uniform haze.
			d = math.Pow(clampUnit(d), 1.6)
			a.SetPixel(x, y, ramp.At(d))
		}
	}

	sprinkleStars(a, spec.Seed, spec.Size)
	return a
}

func perlin01(p *perlin.Perlin, x, y float64) float64 {
	return clampUnit((p.Noise2D(x, y) + 1) / 2)
}

// sprinkleStars scatters point stars over the backdrop, count scaling with
// area. Positions and brightness come from the same LCG family as the
// noise permutation shuffle.
func sprinkleStars(a *Atlas, seed int64, size int) {
	count := size * size / 520
	s := seed
	next := func(mod uint64) uint64 {
		s = s*6364136223846793005 + 1442695040888963407
		return uint64(s>>16) % mod
	}

	for i := 0; i < count; i++ {
		x := int(next(uint64(size)))
		y := int(next(uint64(size)))
		b := 0.4 + 0.6*float64(next(1000))/1000

		a.SetPixel(x, y, White.Scale(b))
		if b > 0.85 {
			// The brightest stars get a small cross glint.
			glint := White.Scale(b * 0.45)
			a.SetPixel(x+1, y, glint)
			a.SetPixel(x-1, y, glint)
			a.SetPixel(x, y+1, glint)
			a.SetPixel(x, y-1, glint)
		}
	}
}
