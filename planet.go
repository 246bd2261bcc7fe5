package starsmith

import (
	"math"

	"github.com/pixelcosm/starsmith/internal/parallel"
	"github.com/pixelcosm/starsmith/noise"
)

// PlanetSpec describes one planet to render. A nil Palette uses the
// type's built-in palette.
type PlanetSpec struct {
	Type      PlanetType
	Palette   Palette
	Size      int
	Frames    int
	PixelSize int
	Seed      int64
}

const (
	planetRadiusFactor = 0.84
	planetHaloFactor   = 0.07
	cloudThreshold     = 0.6
	cloudOpacity       = 0.85
)

func (s PlanetSpec) normalized() PlanetSpec {
	if s.Size < 1 {
		s.Size = DefaultPlanetSize
	}
	if s.Frames < 1 {
		s.Frames = DefaultPlanetFrames
	}
	if s.PixelSize < 1 {
		s.PixelSize = DefaultPlanetPixelSize
	}
	return s
}

// RenderPlanet renders a planet atlas. Terrestrial types run the threshold
// ladder over layered noise fields; PlanetGasGiant routes to the banded
// pipeline instead.
func RenderPlanet(spec PlanetSpec) *Atlas {
	return renderPlanet(spec, nil)
}

func renderPlanet(spec PlanetSpec, pool *parallel.WorkerPool) *Atlas {
	spec = spec.normalized()
	if spec.Type == PlanetGasGiant {
		return renderGasGiant(spec, pool)
	}

	pal := spec.Palette
	if pal == nil {
		pal = PaletteFor(spec.Type)
	}
	field := noise.New(spec.Seed)

	return compose(spec.Size, spec.Frames, func(a *Atlas, frame int) {
		renderPlanetFrame(a, frame, spec, pal, field)
	}, pool)
}

func renderPlanetFrame(a *Atlas, frame int, spec PlanetSpec, pal Palette, field *noise.Field) {
	half := float64(spec.Size) / 2
	radius := half * planetRadiusFactor
	halo := radius + half*planetHaloFactor
	tint := atmosphereTint(spec.Type)

	for y := 0; y < spec.Size; y += spec.PixelSize {
		for x := 0; x < spec.Size; x += spec.PixelSize {
			dx := float64(x) + float64(spec.PixelSize)/2 - half
			dy := float64(y) + float64(spec.PixelSize)/2 - half
			dist := math.Hypot(dx, dy)

			if dist > radius {
				if !spec.Type.HasAtmosphere() || dist > halo {
					continue
				}
				span := halo - radius
				if span < 1 {
					span = 1
				}
				alpha := (1 - (dist-radius)/span) * 0.35
				a.FillBlock(frame, x, y, spec.PixelSize, tint.WithAlpha(alpha))
				continue
			}

			nx, ny, nz := sphereNormal(dx, dy, radius)
			texU, texV := sphereTexCoords(nx, ny, nz, frame, spec.Frames)
			sx, sy, sz := cylinderPoint(texU, texV)

			col := pal.Color(Classify(spec.Type, planetFields(field, sx, sy, sz)))

			if spec.Type.HasAtmosphere() {
				cover := field.FBM(sx*3.0+51, sy*3.0, sz*3.0+51, 4, 0.5)
				if cover > cloudThreshold {
					blend := (cover - cloudThreshold) / (1 - cloudThreshold)
					col = col.Lerp(pal.Color(FeatureCloud), blend*cloudOpacity)
				}
			}

			col = col.Scale(planetLight.shade(nx, ny, nz))
			a.FillBlock(frame, x, y, spec.PixelSize, col)
		}
	}
}

// planetFields samples the four scalar fields for one surface point.
// Elevation mixes large, medium and small fbm stacks with a ridged micro
// layer; moisture and temperature sample offset lattices so the fields
// decorrelate from elevation. The offsets shift the cylinder circle, not
// its period, so rotation stays seamless.
func planetFields(f *noise.Field, sx, sy, sz float64) Surface {
	elev := 0.50*f.FBM(sx*2.0, sy*2.0, sz*2.0, 4, 0.5) +
		0.25*f.FBM(sx*4.5, sy*4.5, sz*4.5, 3, 0.5) +
		0.15*f.FBM(sx*9.0, sy*9.0, sz*9.0, 2, 0.5) +
		0.10*f.Ridged(sx*6.0, sy*6.0, sz*6.0, 3)

	moist := 0.70*f.FBM(sx*2.4+23, sy*2.4, sz*2.4+23, 3, 0.5) +
		0.30*f.FBM(sx*6.0+23, sy*6.0, sz*6.0+23, 2, 0.5)

	temp := 1 - math.Abs(sy)*0.9
	temp += (f.FBM(sx*3.0-31, sy*3.0, sz*3.0-31, 3, 0.5) - 0.5) * 0.3

	return Surface{
		Elevation:   clampUnit(elev),
		Moisture:    clampUnit(moist),
		Temperature: clampUnit(temp),
		Latitude:    sy,
	}
}

// atmosphereTint is the halo color per atmosphere-bearing type.
func atmosphereTint(t PlanetType) RGBA {
	switch t {
	case PlanetOcean:
		return Hex("a8d4ff")
	case PlanetJungle:
		return Hex("d7f0c8")
	case PlanetGasGiant:
		return Hex("e8d2ae")
	}
	return Hex("9accff")
}
