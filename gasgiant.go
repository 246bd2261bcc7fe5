package starsmith

import (
	"math"

	"github.com/pixelcosm/starsmith/internal/parallel"
	"github.com/pixelcosm/starsmith/noise"
)

// Gas giant banding. Bands come from a sine over latitude perturbed by low
// frequency noise; storms are a separate field confined to the equatorial
// belt.
const (
	gasBandFrequency  = 15.0
	gasBandPerturb    = 4.0
	gasStormThreshold = 0.75
	gasStormMaxLat    = 0.5
)

func renderGasGiant(spec PlanetSpec, pool *parallel.WorkerPool) *Atlas {
	pal := spec.Palette
	if pal == nil {
		pal = PaletteFor(PlanetGasGiant)
	}
	field := noise.New(spec.Seed)

	return compose(spec.Size, spec.Frames, func(a *Atlas, frame int) {
		renderGasGiantFrame(a, frame, spec, pal, field)
	}, pool)
}

func renderGasGiantFrame(a *Atlas, frame int, spec PlanetSpec, pal Palette, field *noise.Field) {
	half := float64(spec.Size) / 2
	radius := half * planetRadiusFactor
	halo := radius + half*planetHaloFactor
	tint := atmosphereTint(PlanetGasGiant)

	for y := 0; y < spec.Size; y += spec.PixelSize {
		for x := 0; x < spec.Size; x += spec.PixelSize {
			dx := float64(x) + float64(spec.PixelSize)/2 - half
			dy := float64(y) + float64(spec.PixelSize)/2 - half
			dist := math.Hypot(dx, dy)

			if dist > radius {
				if dist > halo {
					continue
				}
				span := halo - radius
				if span < 1 {
					span = 1
				}
				alpha := (1 - (dist-radius)/span) * 0.30
				a.FillBlock(frame, x, y, spec.PixelSize, tint.WithAlpha(alpha))
				continue
			}

			nx, ny, nz := sphereNormal(dx, dy, radius)
			texU, texV := sphereTexCoords(nx, ny, nz, frame, spec.Frames)
			sx, sy, sz := cylinderPoint(texU, texV)

			perturb := field.Noise(sx*1.2, sy*2.5, sz*1.2)
			band := math.Sin(texV*gasBandFrequency + perturb*gasBandPerturb)
			turb := field.Turbulence(sx*4.0, sy*6.0, sz*4.0, 3)
			v := clampUnit((band+1)/2*0.8 + turb*0.2)

			feat := GasBand(v)
			if math.Abs(texV) < gasStormMaxLat {
				storm := field.FBM(sx*3.0+77, sy*5.0+77, sz*3.0, 3, 0.5)
				if storm > gasStormThreshold {
					feat = FeatureStorm
				}
			}

			col := pal.Color(feat)
			// Band-edge turbulence keeps the stripes from reading flat.
			col = col.Scale(0.90 + 0.10*turb)
			col = col.Scale(planetLight.shade(nx, ny, nz))
			a.FillBlock(frame, x, y, spec.PixelSize, col)
		}
	}
}
