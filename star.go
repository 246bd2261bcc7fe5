package starsmith

import (
	"math"

	"github.com/pixelcosm/starsmith/internal/parallel"
	"github.com/pixelcosm/starsmith/noise"
)

// StarSpec describes one star to render.
type StarSpec struct {
	Class     StarClass
	Size      int
	Frames    int
	PixelSize int
	Seed      int64
}

// Star surface tuning. The time axis advances monotonically per frame, so
// the boiling granulation evolves continuously instead of looping; the
// corona and limb are radial and frame-independent, which keeps the
// non-loop visually unobtrusive.
const (
	starRadiusFactor   = 0.70
	starCoronaFactor   = 0.98
	starTimeStep       = 0.04
	starBaseBrightness = 0.25
	starBoost          = 1.25
	starHoleThreshold  = 0.25
	starHoleDim        = 0.30
	starFlareThreshold = 0.80
	starFlareGain      = 3.0
	starLimbK1         = 0.55
	starLimbK2         = 0.45
	starLimbPow        = 0.50
)

func (s StarSpec) normalized() StarSpec {
	if s.Size < 1 {
		s.Size = DefaultStarSize
	}
	if s.Frames < 1 {
		s.Frames = DefaultStarFrames
	}
	if s.PixelSize < 1 {
		s.PixelSize = DefaultStarPixelSize
	}
	return s
}

// RenderStar renders a star atlas: granulated surface from layered fbm
// stacks, coronal holes, CME flares, and a turbulent corona band outside
// the disc.
func RenderStar(spec StarSpec) *Atlas {
	return renderStar(spec, nil)
}

func renderStar(spec StarSpec, pool *parallel.WorkerPool) *Atlas {
	spec = spec.normalized()
	pal := StarPaletteFor(spec.Class)
	field := noise.New(spec.Seed)

	return compose(spec.Size, spec.Frames, func(a *Atlas, frame int) {
		renderStarFrame(a, frame, spec, pal, field)
	}, pool)
}

func renderStarFrame(a *Atlas, frame int, spec StarSpec, pal StarPalette, field *noise.Field) {
	half := float64(spec.Size) / 2
	radius := half * starRadiusFactor
	corona := half * starCoronaFactor
	t := starTimeStep * float64(frame)

	for y := 0; y < spec.Size; y += spec.PixelSize {
		for x := 0; x < spec.Size; x += spec.PixelSize {
			dx := float64(x) + float64(spec.PixelSize)/2 - half
			dy := float64(y) + float64(spec.PixelSize)/2 - half
			dist := math.Hypot(dx, dy)

			if dist > radius {
				if dist > corona {
					continue
				}
				span := corona - radius
				if span < 1 {
					span = 1
				}
				fall := 1 - (dist-radius)/span
				turb := field.Turbulence(dx*0.06, dy*0.06, t, 3)
				alpha := fall * fall * (0.35 + 0.65*turb)
				a.FillBlock(frame, x, y, spec.PixelSize, pal.Corona.WithAlpha(alpha))
				continue
			}

			nx, ny, nz := sphereNormal(dx, dy, radius)
			texU, texV := sphereTexCoords(nx, ny, nz, frame, spec.Frames)
			sx, sy, sz := cylinderPoint(texU, texV)

			b := starBaseBrightness
			b += 0.30 * field.FBM(sx*2.0, sy*2.0, sz*2.0+t, 4, 0.5)
			b += 0.20 * field.FBM(sx*5.0, sy*5.0, sz*5.0+t*1.3, 3, 0.5)
			b += 0.10 * field.FBM(sx*11.0, sy*11.0, sz*11.0+t*1.7, 2, 0.5)
			b += 0.15 * field.Turbulence(sx*7.0, sy*7.0, sz*7.0+t, 3)

			// Coronal holes: large dark patches where the low-frequency
			// field drops out.
			hole := field.FBM(sx*1.5+40, sy*1.5+40, sz*1.5+t*0.5, 3, 0.5)
			if hole < starHoleThreshold {
				b *= starHoleDim
			}

			// CME flares: sharp local brightness spikes.
			flare := field.FBM(sx*3.0-40, sy*3.0-40, sz*3.0+t*2.0, 3, 0.5)
			if flare > starFlareThreshold {
				b += (flare - starFlareThreshold) * starFlareGain
			}

			// Radial core boost keeps the disc center hot.
			core := 1 - dist/math.Max(radius, 1)
			b += core * core * 0.25

			col := pal.Base.Lerp(pal.Bright, clampUnit(b))
			col = col.Scale(starBoost * limbDarken(nz, starLimbK1, starLimbK2, starLimbPow))
			a.FillBlock(frame, x, y, spec.PixelSize, col)
		}
	}
}
