package starsmith

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category name does not match any
// sprite family. Manifest loading surfaces it for entries written by a
// different tool or hand-edited files.
var ErrUnknownCategory = errors.New("starsmith: unknown category")

// Category identifies one family of generated sprites.
type Category int

const (
	CategoryStar Category = iota
	CategoryPlanet
	CategoryMoon
	CategoryAsteroid
	CategoryBackground
)

// String returns the category name used in artifact filenames and logs.
func (c Category) String() string {
	switch c {
	case CategoryStar:
		return "star"
	case CategoryPlanet:
		return "planet"
	case CategoryMoon:
		return "moon"
	case CategoryAsteroid:
		return "asteroid"
	case CategoryBackground:
		return "background"
	}
	return "unknown"
}

// ParseCategory maps a category name back to a Category. Unlike the other
// parsers it does not fall back on a default: an entry in an unexpected
// family is a corrupt record, not a stylistic variant.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "star":
		return CategoryStar, nil
	case "planet":
		return CategoryPlanet, nil
	case "moon":
		return CategoryMoon, nil
	case "asteroid":
		return CategoryAsteroid, nil
	case "background":
		return CategoryBackground, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// PlanetType is the closed set of planet archetypes. Each type carries its
// own palette and classification ladder; there is no runtime string
// dispatch past the parse step.
type PlanetType int

const (
	PlanetTerran PlanetType = iota
	PlanetOcean
	PlanetJungle
	PlanetDesert
	PlanetIce
	PlanetLava
	PlanetRocky
	PlanetGasGiant
)

// PlanetTypes returns all planet types in generation order.
func PlanetTypes() []PlanetType {
	return []PlanetType{
		PlanetTerran, PlanetOcean, PlanetJungle, PlanetDesert,
		PlanetIce, PlanetLava, PlanetRocky, PlanetGasGiant,
	}
}

// ParsePlanetType maps a type name to a PlanetType. Unrecognized names fall
// back to PlanetTerran so classification always succeeds.
func ParsePlanetType(s string) PlanetType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "terran":
		return PlanetTerran
	case "ocean":
		return PlanetOcean
	case "jungle":
		return PlanetJungle
	case "desert":
		return PlanetDesert
	case "ice":
		return PlanetIce
	case "lava":
		return PlanetLava
	case "rocky":
		return PlanetRocky
	case "gas", "gasgiant", "gas_giant":
		return PlanetGasGiant
	}
	return PlanetTerran
}

// String returns the type name used in artifact filenames.
func (t PlanetType) String() string {
	switch t {
	case PlanetTerran:
		return "terran"
	case PlanetOcean:
		return "ocean"
	case PlanetJungle:
		return "jungle"
	case PlanetDesert:
		return "desert"
	case PlanetIce:
		return "ice"
	case PlanetLava:
		return "lava"
	case PlanetRocky:
		return "rocky"
	case PlanetGasGiant:
		return "gas"
	}
	return "terran"
}

// HasAtmosphere reports whether the type renders a translucent halo band
// and a cloud overlay.
func (t PlanetType) HasAtmosphere() bool {
	switch t {
	case PlanetTerran, PlanetOcean, PlanetJungle:
		return true
	}
	return false
}

// StarClass is a spectral class on the O B A F G K M sequence, hottest
// first.
type StarClass int

const (
	StarO StarClass = iota
	StarB
	StarA
	StarF
	StarG
	StarK
	StarM
)

// StarClasses returns all spectral classes, hottest first.
func StarClasses() []StarClass {
	return []StarClass{StarO, StarB, StarA, StarF, StarG, StarK, StarM}
}

// ParseStarClass maps a spectral class letter to a StarClass. Unrecognized
// input falls back to StarG.
func ParseStarClass(s string) StarClass {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "O":
		return StarO
	case "B":
		return StarB
	case "A":
		return StarA
	case "F":
		return StarF
	case "G":
		return StarG
	case "K":
		return StarK
	case "M":
		return StarM
	}
	return StarG
}

// String returns the lowercase class letter used in artifact filenames.
func (c StarClass) String() string {
	switch c {
	case StarO:
		return "o"
	case StarB:
		return "b"
	case StarA:
		return "a"
	case StarF:
		return "f"
	case StarG:
		return "g"
	case StarK:
		return "k"
	case StarM:
		return "m"
	}
	return "g"
}

// MoonSurface selects the moon palette. It is fixed per body at
// construction time, never per pixel.
type MoonSurface int

const (
	MoonRocky MoonSurface = iota
	MoonIcy
)

// ParseMoonSurface maps a surface name to a MoonSurface. Unrecognized
// names fall back to MoonRocky.
func ParseMoonSurface(s string) MoonSurface {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rocky":
		return MoonRocky
	case "icy", "ice":
		return MoonIcy
	}
	return MoonRocky
}

// String returns the surface name used in artifact filenames.
func (m MoonSurface) String() string {
	if m == MoonIcy {
		return "icy"
	}
	return "rocky"
}

// AsteroidKind selects the asteroid palette, loosely following the C/S/M
// taxonomy: carbonaceous (dark), silicate (red-brown), metallic (gray).
type AsteroidKind int

const (
	AsteroidCarbon AsteroidKind = iota
	AsteroidSilicate
	AsteroidMetal
)

// AsteroidKinds returns all asteroid kinds in generation order.
func AsteroidKinds() []AsteroidKind {
	return []AsteroidKind{AsteroidCarbon, AsteroidSilicate, AsteroidMetal}
}

// ParseAsteroidKind maps a kind name to an AsteroidKind. Unrecognized
// names fall back to AsteroidCarbon.
func ParseAsteroidKind(s string) AsteroidKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "carbon", "carbonaceous", "c":
		return AsteroidCarbon
	case "silicate", "s":
		return AsteroidSilicate
	case "metal", "metallic", "m":
		return AsteroidMetal
	}
	return AsteroidCarbon
}

// String returns the kind name used in artifact filenames.
func (k AsteroidKind) String() string {
	switch k {
	case AsteroidSilicate:
		return "silicate"
	case AsteroidMetal:
		return "metal"
	}
	return "carbon"
}
