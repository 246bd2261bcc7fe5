package starsmith

import (
	"math"

	"github.com/pixelcosm/starsmith/internal/parallel"
	"github.com/pixelcosm/starsmith/noise"
)

// AsteroidSpec describes one asteroid to render. Irregularity controls how
// far the silhouette deviates from a circle; zero means use the default. A
// nil Palette uses the kind's built-in palette.
type AsteroidSpec struct {
	Kind         AsteroidKind
	Palette      Palette
	Size         int
	Frames       int
	PixelSize    int
	Irregularity float64
	Seed         int64
}

const (
	asteroidRadiusFactor = 0.62
	asteroidShapeFreq    = 1.8
	craterRimThreshold   = 0.68
)

func (s AsteroidSpec) normalized() AsteroidSpec {
	if s.Size < 1 {
		s.Size = DefaultAsteroidSize
	}
	if s.Frames < 1 {
		s.Frames = DefaultAsteroidFrames
	}
	if s.PixelSize < 1 {
		s.PixelSize = DefaultAsteroidPixelSize
	}
	if s.Irregularity <= 0 {
		s.Irregularity = (DefaultIrregularityMin + DefaultIrregularityMax) / 2
	}
	if s.Irregularity > 0.95 {
		s.Irregularity = 0.95
	}
	return s
}

// RenderAsteroid renders a tumbling irregular rock. The silhouette radius
// varies with polar angle by fbm, so the body keeps its shape while
// rotating through the frame sweep.
func RenderAsteroid(spec AsteroidSpec) *Atlas {
	return renderAsteroid(spec, nil)
}

func renderAsteroid(spec AsteroidSpec, pool *parallel.WorkerPool) *Atlas {
	spec = spec.normalized()
	pal := spec.Palette
	if pal == nil {
		pal = AsteroidPaletteFor(spec.Kind)
	}
	field := noise.New(spec.Seed)

	return compose(spec.Size, spec.Frames, func(a *Atlas, frame int) {
		renderAsteroidFrame(a, frame, spec, pal, field)
	}, pool)
}

// shapeRadius returns the silhouette radius at a body-relative polar
// angle. Bounded by base*(1±irregularity/2) for any angle.
func shapeRadius(field *noise.Field, angle, base, irregularity float64) float64 {
	n := field.FBM(math.Cos(angle)*asteroidShapeFreq, math.Sin(angle)*asteroidShapeFreq, 7.7, 3, 0.5)
	return base * (1 + (n-0.5)*irregularity)
}

func renderAsteroidFrame(a *Atlas, frame int, spec AsteroidSpec, pal Palette, field *noise.Field) {
	half := float64(spec.Size) / 2
	base := half * asteroidRadiusFactor
	rot := 2 * math.Pi * float64(frame) / float64(spec.Frames)
	sinR, cosR := math.Sin(rot), math.Cos(rot)

	for y := 0; y < spec.Size; y += spec.PixelSize {
		for x := 0; x < spec.Size; x += spec.PixelSize {
			dx := float64(x) + float64(spec.PixelSize)/2 - half
			dy := float64(y) + float64(spec.PixelSize)/2 - half
			dist := math.Hypot(dx, dy)

			screenAngle := math.Atan2(dy, dx)
			r := shapeRadius(field, screenAngle+rot, base, spec.Irregularity)
			if dist > r {
				continue
			}

			// Rotate the sample point into body space so the surface
			// texture tumbles with the silhouette.
			bx := dx*cosR + dy*sinR
			by := -dx*sinR + dy*cosR

			rough := field.FBM(bx*0.10, by*0.10, 5.5, 4, 0.5)
			crater := field.Ridged(bx*0.07, by*0.07, 9.5, 3)

			col := pal.Color(FeatureRock).Lerp(pal.Color(FeatureRegolith), rough)
			if crater > craterRimThreshold {
				col = col.Lerp(pal.Color(FeatureCrater), (crater-craterRimThreshold)/(1-craterRimThreshold))
			}
			if rough > 0.80 {
				col = col.Lerp(pal.Color(FeatureHighland), (rough-0.80)/0.20*0.6)
			}

			// Light stays fixed in screen space while the rock tumbles.
			shade := asteroidShade(screenAngle)
			rr := r
			if rr < 1 {
				rr = 1
			}
			shade *= 1 - 0.30*(dist/rr)*(dist/rr)
			col = col.Scale(shade)
			a.FillBlock(frame, x, y, spec.PixelSize, col)
		}
	}
}
