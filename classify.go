package starsmith

import "math"

// Surface carries the per-pixel scalar fields a classifier resolves into a
// Feature. Elevation, Moisture and Temperature are in [0, 1]; Latitude is
// the sphere-normal y component in [-1, 1], negative toward the south pole.
type Surface struct {
	Elevation   float64
	Moisture    float64
	Temperature float64
	Latitude    float64
}

// Terran ladder breakpoints. Intervals are half-open: a value exactly at a
// boundary resolves to the upper band, so elevation 0.35 is already beach
// side of sea level.
const (
	terranDeepMax     = 0.25
	terranOceanMax    = 0.32
	terranSeaLevel    = 0.35
	terranBeachMax    = 0.37
	terranMountainMin = 0.80
	terranSnowMin     = 0.88
	terranPolarLat    = 0.85
)

// Classify resolves the scalar fields into a surface feature through the
// body type's threshold ladder. It never fails; unknown types use the
// rocky ladder, the explicit default.
func Classify(t PlanetType, s Surface) Feature {
	switch t {
	case PlanetTerran:
		return classifyTerran(s)
	case PlanetOcean:
		return classifyOcean(s)
	case PlanetJungle:
		return classifyJungle(s)
	case PlanetDesert:
		return classifyDesert(s)
	case PlanetIce:
		return classifyIce(s)
	case PlanetLava:
		return classifyLava(s)
	case PlanetRocky:
		return classifyRocky(s)
	case PlanetGasGiant:
		// Gas giants classify through GasBand, not an elevation ladder.
		return classifyRocky(s)
	}
	return classifyRocky(s)
}

func classifyTerran(s Surface) Feature {
	switch e := s.Elevation; {
	case e < terranDeepMax:
		return FeatureDeepOcean
	case e < terranOceanMax:
		return FeatureOcean
	case e < terranSeaLevel:
		return FeatureShallows
	case e < terranBeachMax:
		return FeatureBeach
	}

	if math.Abs(s.Latitude) > terranPolarLat {
		return FeatureSnow
	}
	switch e := s.Elevation; {
	case e >= terranSnowMin:
		return FeatureSnow
	case e >= terranMountainMin:
		return FeatureMountain
	}
	if s.Temperature > 0.78 && s.Moisture < 0.30 {
		return FeatureSand
	}
	if s.Moisture > 0.55 && s.Elevation < 0.62 {
		return FeatureForest
	}
	return FeatureGrass
}

func classifyOcean(s Surface) Feature {
	// Almost all water; islands only above the 0.62 line.
	switch e := s.Elevation; {
	case e < 0.48:
		return FeatureDeepOcean
	case e < 0.58:
		return FeatureOcean
	case e < 0.62:
		return FeatureShallows
	case e < 0.64:
		return FeatureBeach
	default:
		return FeatureGrass
	}
}

func classifyJungle(s Surface) Feature {
	switch e := s.Elevation; {
	case e < 0.22:
		return FeatureDeepOcean
	case e < 0.30:
		return FeatureOcean
	case e < 0.34:
		return FeatureShallows
	case e < 0.36:
		return FeatureSwamp
	}
	if math.Abs(s.Latitude) > 0.92 {
		return FeatureSnow
	}
	switch e := s.Elevation; {
	case e >= 0.90:
		return FeatureSnow
	case e >= 0.78:
		return FeatureMountain
	}
	if s.Moisture > 0.35 {
		return FeatureForest
	}
	return FeatureGrass
}

func classifyDesert(s Surface) Feature {
	switch e := s.Elevation; {
	case e < 0.42:
		return FeatureDune
	case e < 0.62:
		return FeatureSand
	case e < 0.78:
		return FeatureRock
	case e < 0.90:
		return FeatureMountain
	default:
		// Salt flats on the highest plateaus.
		return FeatureSnow
	}
}

func classifyIce(s Surface) Feature {
	switch e := s.Elevation; {
	case e < 0.28:
		return FeatureDeepOcean
	case e < 0.60:
		return FeatureIce
	case e < 0.66:
		return FeatureCrevasse
	case e < 0.88:
		return FeatureSnow
	default:
		return FeatureMountain
	}
}

func classifyLava(s Surface) Feature {
	switch e := s.Elevation; {
	case e < 0.30:
		return FeatureLava
	case e < 0.34:
		return FeatureEmber
	case e < 0.60:
		return FeatureBasalt
	case e < 0.80:
		return FeatureRock
	default:
		return FeatureAsh
	}
}

func classifyRocky(s Surface) Feature {
	switch e := s.Elevation; {
	case e < 0.30:
		return FeatureCrater
	case e < 0.55:
		return FeatureRegolith
	case e < 0.75:
		return FeatureRock
	case e < 0.88:
		return FeatureHighland
	default:
		return FeatureMountain
	}
}

// GasBand buckets a normalized band value into the four gas giant band
// features by quartile.
func GasBand(v float64) Feature {
	switch {
	case v < 0.25:
		return FeatureBandA
	case v < 0.50:
		return FeatureBandB
	case v < 0.75:
		return FeatureBandC
	default:
		return FeatureBandD
	}
}

// ClassifyMoon resolves elevation and crater fields into a moon feature.
// The crater field wins over elevation so rims stay crisp.
func ClassifyMoon(surface MoonSurface, elevation, crater float64) Feature {
	if surface == MoonIcy {
		if crater > 0.62 {
			return FeatureCrater
		}
		switch {
		case elevation < 0.55:
			return FeatureIce
		case elevation < 0.62:
			return FeatureCrevasse
		default:
			return FeatureHighland
		}
	}

	if crater > 0.62 {
		return FeatureCrater
	}
	switch {
	case elevation < 0.40:
		return FeatureRegolith
	case elevation < 0.75:
		return FeatureRock
	default:
		return FeatureHighland
	}
}
