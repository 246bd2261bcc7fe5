package noise

import "math"

// FBM sums octaves octaves of Noise, doubling frequency and scaling
// amplitude by persistence each octave, normalized by the total amplitude
// and remapped from [-1, 1] to [0, 1].
//
// octaves must be >= 1; persistence is typically in (0, 1].
func (f *Field) FBM(x, y, z float64, octaves int, persistence float64) float64 {
	var total, maxAmp float64
	frequency := 1.0
	amplitude := 1.0

	for i := 0; i < octaves; i++ {
		total += f.Noise(x*frequency, y*frequency, z*frequency) * amplitude
		maxAmp += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return clamp01((total/maxAmp + 1) / 2)
}

// Turbulence sums octaves octaves of |Noise|, halving amplitude each
// octave, normalized by the total amplitude. Returns a value in [0, 1].
// The absolute value folds the signal at zero crossings, producing the
// billowy, vein-like structure used for star granulation and cloud wisps.
func (f *Field) Turbulence(x, y, z float64, octaves int) float64 {
	var total, maxAmp float64
	frequency := 1.0
	amplitude := 1.0

	for i := 0; i < octaves; i++ {
		total += math.Abs(f.Noise(x*frequency, y*frequency, z*frequency)) * amplitude
		maxAmp += amplitude
		amplitude *= 0.5
		frequency *= 2
	}

	return clamp01(total / maxAmp)
}

// Ridged computes a ridged multifractal in [0, 1]. Each octave contributes
// (1 - |Noise|)^2 weighted by the previous octave's clamped signal, with
// amplitude halving per octave. The feedback term concentrates detail on
// the ridge lines, which is what makes crater rims and mountain crests
// read as connected features instead of speckle.
func (f *Field) Ridged(x, y, z float64, octaves int) float64 {
	var total float64
	frequency := 1.0
	amplitude := 1.0
	prev := 1.0

	for i := 0; i < octaves; i++ {
		n := 1 - math.Abs(f.Noise(x*frequency, y*frequency, z*frequency))
		sig := n * n * prev
		total += sig * amplitude
		prev = clamp01(sig)
		amplitude *= 0.5
		frequency *= 2
	}

	return clamp01(total)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
