package starsmith

import (
	"sort"
	"strings"
)

// Feature is a named surface band a classifier can resolve a pixel into.
// Palettes map features to colors; each body type's ladder only ever emits
// features its palette defines.
type Feature int

const (
	FeatureDeepOcean Feature = iota
	FeatureOcean
	FeatureShallows
	FeatureBeach
	FeatureGrass
	FeatureForest
	FeatureSwamp
	FeatureSand
	FeatureDune
	FeatureRock
	FeatureMountain
	FeatureSnow
	FeatureIce
	FeatureCrevasse
	FeatureLava
	FeatureEmber
	FeatureBasalt
	FeatureAsh
	FeatureRegolith
	FeatureCrater
	FeatureHighland
	FeatureBandA
	FeatureBandB
	FeatureBandC
	FeatureBandD
	FeatureStorm
	FeatureCloud
)

var featureNames = map[Feature]string{
	FeatureDeepOcean: "deep_ocean",
	FeatureOcean:     "ocean",
	FeatureShallows:  "shallows",
	FeatureBeach:     "beach",
	FeatureGrass:     "grass",
	FeatureForest:    "forest",
	FeatureSwamp:     "swamp",
	FeatureSand:      "sand",
	FeatureDune:      "dune",
	FeatureRock:      "rock",
	FeatureMountain:  "mountain",
	FeatureSnow:      "snow",
	FeatureIce:       "ice",
	FeatureCrevasse:  "crevasse",
	FeatureLava:      "lava",
	FeatureEmber:     "ember",
	FeatureBasalt:    "basalt",
	FeatureAsh:       "ash",
	FeatureRegolith:  "regolith",
	FeatureCrater:    "crater",
	FeatureHighland:  "highland",
	FeatureBandA:     "band_a",
	FeatureBandB:     "band_b",
	FeatureBandC:     "band_c",
	FeatureBandD:     "band_d",
	FeatureStorm:     "storm",
	FeatureCloud:     "cloud",
}

// String returns the feature name used in config palette overrides.
func (f Feature) String() string {
	if s, ok := featureNames[f]; ok {
		return s
	}
	return "unknown"
}

// ParseFeature maps a feature name to a Feature. The second return value
// is false for unrecognized names.
func ParseFeature(s string) (Feature, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range featureNames {
		if name == s {
			return f, true
		}
	}
	return 0, false
}

// Palette maps surface features to colors. Palettes are immutable once
// built; With returns a modified copy rather than mutating in place.
type Palette map[Feature]RGBA

// Color returns the color for a feature. Missing entries render opaque
// magenta so palette gaps are visible in generated output.
func (p Palette) Color(f Feature) RGBA {
	if c, ok := p[f]; ok {
		return c
	}
	return RGB(1, 0, 1)
}

// With returns a copy of the palette with the given feature colors
// replaced.
func (p Palette) With(overrides map[Feature]RGBA) Palette {
	if len(overrides) == 0 {
		return p
	}
	out := make(Palette, len(p))
	for f, c := range p {
		out[f] = c
	}
	for f, c := range overrides {
		out[f] = c
	}
	return out
}

// Predefined planet palettes. Colors are straight sRGB hex; the lighting
// stage scales them per pixel.
var (
	paletteTerran = Palette{
		FeatureDeepOcean: Hex("16365f"),
		FeatureOcean:     Hex("2257a0"),
		FeatureShallows:  Hex("3f7fc4"),
		FeatureBeach:     Hex("d9c185"),
		FeatureGrass:     Hex("4a8f3c"),
		FeatureForest:    Hex("2d6b2a"),
		FeatureMountain:  Hex("8a7f72"),
		FeatureSnow:      Hex("eef2f5"),
		FeatureCloud:     Hex("ffffffe0"),
	}

	paletteOcean = Palette{
		FeatureDeepOcean: Hex("0e2a52"),
		FeatureOcean:     Hex("1a4a8c"),
		FeatureShallows:  Hex("2f6fb8"),
		FeatureBeach:     Hex("cbb37a"),
		FeatureGrass:     Hex("4e8a45"),
		FeatureCloud:     Hex("f4fbffd8"),
	}

	paletteJungle = Palette{
		FeatureDeepOcean: Hex("123a3e"),
		FeatureOcean:     Hex("1c5a54"),
		FeatureShallows:  Hex("2d7a6a"),
		FeatureSwamp:     Hex("3d6b35"),
		FeatureGrass:     Hex("55a344"),
		FeatureForest:    Hex("1f6125"),
		FeatureMountain:  Hex("6f7a5c"),
		FeatureSnow:      Hex("e8f0e8"),
		FeatureCloud:     Hex("fffef0dc"),
	}

	paletteDesert = Palette{
		FeatureDune:     Hex("c9a864"),
		FeatureSand:     Hex("b58f4f"),
		FeatureRock:     Hex("96683f"),
		FeatureMountain: Hex("7a5233"),
		FeatureSnow:     Hex("e9ddc0"),
	}

	paletteIce = Palette{
		FeatureDeepOcean: Hex("1d4e6e"),
		FeatureIce:       Hex("a8cde2"),
		FeatureCrevasse:  Hex("5d88a8"),
		FeatureSnow:      Hex("e8f4fb"),
		FeatureMountain:  Hex("c4dcea"),
	}

	paletteLava = Palette{
		FeatureLava:   Hex("ff5a1f"),
		FeatureEmber:  Hex("ffc21f"),
		FeatureBasalt: Hex("2b2226"),
		FeatureRock:   Hex("4a3a3e"),
		FeatureAsh:    Hex("6e5f63"),
	}

	paletteRocky = Palette{
		FeatureRegolith: Hex("8a8078"),
		FeatureRock:     Hex("6e655e"),
		FeatureCrater:   Hex("4e463f"),
		FeatureHighland: Hex("a69c92"),
		FeatureMountain: Hex("bdb4aa"),
	}

	paletteGas = Palette{
		FeatureBandA: Hex("d8b48a"),
		FeatureBandB: Hex("b88a5c"),
		FeatureBandC: Hex("96643c"),
		FeatureBandD: Hex("e8d2ae"),
		FeatureStorm: Hex("f2e2cb"),
	}
)

// Moon palettes, binary rocky/icy.
var (
	paletteMoonRocky = Palette{
		FeatureRegolith: Hex("9a948c"),
		FeatureRock:     Hex("7b756d"),
		FeatureCrater:   Hex("55504a"),
		FeatureHighland: Hex("b8b2a8"),
	}

	paletteMoonIcy = Palette{
		FeatureIce:      Hex("cfe2ee"),
		FeatureCrevasse: Hex("7fa3bd"),
		FeatureCrater:   Hex("a3c0d4"),
		FeatureHighland: Hex("ecf5fa"),
	}
)

// Asteroid palettes by kind.
var (
	paletteAsteroidCarbon = Palette{
		FeatureRock:     Hex("4a4542"),
		FeatureRegolith: Hex("383431"),
		FeatureCrater:   Hex("262321"),
		FeatureHighland: Hex("5e5954"),
	}

	paletteAsteroidSilicate = Palette{
		FeatureRock:     Hex("8a6a52"),
		FeatureRegolith: Hex("70543f"),
		FeatureCrater:   Hex("503a2c"),
		FeatureHighland: Hex("a5836a"),
	}

	paletteAsteroidMetal = Palette{
		FeatureRock:     Hex("8c8c94"),
		FeatureRegolith: Hex("70707a"),
		FeatureCrater:   Hex("54545e"),
		FeatureHighland: Hex("b0aeb4"),
	}
)

// PaletteFor returns the palette for a planet type. The rocky palette is
// the explicit default variant.
func PaletteFor(t PlanetType) Palette {
	switch t {
	case PlanetTerran:
		return paletteTerran
	case PlanetOcean:
		return paletteOcean
	case PlanetJungle:
		return paletteJungle
	case PlanetDesert:
		return paletteDesert
	case PlanetIce:
		return paletteIce
	case PlanetLava:
		return paletteLava
	case PlanetRocky:
		return paletteRocky
	case PlanetGasGiant:
		return paletteGas
	}
	return paletteRocky
}

// MoonPaletteFor returns the palette for a moon surface.
func MoonPaletteFor(s MoonSurface) Palette {
	if s == MoonIcy {
		return paletteMoonIcy
	}
	return paletteMoonRocky
}

// AsteroidPaletteFor returns the palette for an asteroid kind.
func AsteroidPaletteFor(k AsteroidKind) Palette {
	switch k {
	case AsteroidSilicate:
		return paletteAsteroidSilicate
	case AsteroidMetal:
		return paletteAsteroidMetal
	}
	return paletteAsteroidCarbon
}

// StarPalette holds the color endpoints for one spectral class: the cool
// base tone, the hot bright tone the surface blends toward, and the corona
// tint.
type StarPalette struct {
	Base   RGBA
	Bright RGBA
	Corona RGBA
}

// StarPaletteFor returns the palette for a spectral class. Colors follow
// the blackbody sequence, blue-white for O down to deep orange-red for M.
func StarPaletteFor(c StarClass) StarPalette {
	switch c {
	case StarO:
		return StarPalette{Base: Hex("3a5dc9"), Bright: Hex("cdd9ff"), Corona: Hex("7d9bff")}
	case StarB:
		return StarPalette{Base: Hex("4a6fd4"), Bright: Hex("dbe4ff"), Corona: Hex("93aeff")}
	case StarA:
		return StarPalette{Base: Hex("7d8fe0"), Bright: Hex("f0f3ff"), Corona: Hex("b4c4ff")}
	case StarF:
		return StarPalette{Base: Hex("c9b98a"), Bright: Hex("fffbf0"), Corona: Hex("f5e9c8")}
	case StarG:
		return StarPalette{Base: Hex("c98a2a"), Bright: Hex("fff3d6"), Corona: Hex("ffd27d")}
	case StarK:
		return StarPalette{Base: Hex("b45f24"), Bright: Hex("ffdfb0"), Corona: Hex("ffb366")}
	case StarM:
		return StarPalette{Base: Hex("8f2f1d"), Bright: Hex("ffb08a"), Corona: Hex("ff7a52")}
	}
	return StarPaletteFor(StarG)
}

// ColorStop represents a color at a specific position in a ramp.
type ColorStop struct {
	Offset float64 // Position in ramp, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Ramp is an ordered sequence of color stops sampled by offset. Used for
// corona falloff and nebula density shading, where a discrete palette
// would band visibly.
type Ramp struct {
	stops []ColorStop
}

// NewRamp builds a ramp from stops. Stops are copied and sorted by offset.
func NewRamp(stops ...ColorStop) Ramp {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return Ramp{stops: sorted}
}

// At returns the interpolated color at offset t. t is clamped to [0, 1];
// an empty ramp returns Transparent.
func (r Ramp) At(t float64) RGBA {
	if len(r.stops) == 0 {
		return Transparent
	}
	if len(r.stops) == 1 {
		return r.stops[0].Color
	}

	t = clampUnit(t)

	idx := sort.Search(len(r.stops), func(i int) bool {
		return r.stops[i].Offset >= t
	})
	if idx == 0 {
		return r.stops[0].Color
	}
	if idx >= len(r.stops) {
		return r.stops[len(r.stops)-1].Color
	}

	s1 := r.stops[idx-1]
	s2 := r.stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.Color.Lerp(s2.Color, localT)
}
