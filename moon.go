package starsmith

import (
	"math"

	"github.com/pixelcosm/starsmith/internal/parallel"
	"github.com/pixelcosm/starsmith/noise"
)

// MoonSpec describes one moon to render. A nil Palette uses the surface's
// built-in palette.
type MoonSpec struct {
	Surface   MoonSurface
	Palette   Palette
	Size      int
	Frames    int
	PixelSize int
	Seed      int64
}

const moonRadiusFactor = 0.86

func (s MoonSpec) normalized() MoonSpec {
	if s.Size < 1 {
		s.Size = DefaultMoonSize
	}
	if s.Frames < 1 {
		s.Frames = DefaultMoonFrames
	}
	if s.PixelSize < 1 {
		s.PixelSize = DefaultMoonPixelSize
	}
	return s
}

// RenderMoon renders a moon atlas: an airless cratered ball with a binary
// rocky or icy palette fixed for the whole body.
func RenderMoon(spec MoonSpec) *Atlas {
	return renderMoon(spec, nil)
}

func renderMoon(spec MoonSpec, pool *parallel.WorkerPool) *Atlas {
	spec = spec.normalized()
	pal := spec.Palette
	if pal == nil {
		pal = MoonPaletteFor(spec.Surface)
	}
	field := noise.New(spec.Seed)

	return compose(spec.Size, spec.Frames, func(a *Atlas, frame int) {
		renderMoonFrame(a, frame, spec, pal, field)
	}, pool)
}

func renderMoonFrame(a *Atlas, frame int, spec MoonSpec, pal Palette, field *noise.Field) {
	half := float64(spec.Size) / 2
	radius := half * moonRadiusFactor

	for y := 0; y < spec.Size; y += spec.PixelSize {
		for x := 0; x < spec.Size; x += spec.PixelSize {
			dx := float64(x) + float64(spec.PixelSize)/2 - half
			dy := float64(y) + float64(spec.PixelSize)/2 - half
			dist := math.Hypot(dx, dy)
			if dist > radius {
				// No atmosphere, no glow: straight to transparent.
				continue
			}

			nx, ny, nz := sphereNormal(dx, dy, radius)
			texU, texV := sphereTexCoords(nx, ny, nz, frame, spec.Frames)
			sx, sy, sz := cylinderPoint(texU, texV)

			elev := 0.55*field.FBM(sx*2.2, sy*2.2, sz*2.2, 4, 0.5) +
				0.30*field.FBM(sx*5.0, sy*5.0, sz*5.0, 3, 0.5) +
				0.15*field.FBM(sx*9.0, sy*9.0, sz*9.0, 2, 0.5)
			crater := field.Ridged(sx*3.5, sy*3.5, sz*3.5, 4)

			col := pal.Color(ClassifyMoon(spec.Surface, clampUnit(elev), crater))
			col = col.Scale(moonLight.shade(nx, ny, nz))
			a.FillBlock(frame, x, y, spec.PixelSize, col)
		}
	}
}
