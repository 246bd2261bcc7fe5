// Package starsmith procedurally generates animated sprite atlases for
// celestial bodies: stars, planets, moons, asteroids, plus nebula
// backdrops.
//
// # Overview
//
// Every body is rendered from a deterministic 3D gradient-noise field
// (package noise) through a per-class shading pipeline: scalar fields are
// sampled on a rotating sphere, classified through threshold ladders into
// palette features, lit with Lambert diffuse and limb darkening, and
// packed frame by frame into a horizontal atlas. Identical seeds always
// produce byte-identical atlases.
//
// # Quick Start
//
//	import "github.com/pixelcosm/starsmith"
//
//	// Render a single planet atlas
//	atlas := starsmith.RenderPlanet(starsmith.PlanetSpec{
//	    Type: starsmith.PlanetTerran,
//	    Seed: 42,
//	})
//	atlas.SavePNG("terran.png")
//
//	// Or generate a full sprite set from a config
//	g := starsmith.NewGenerator(starsmith.DefaultConfig())
//	defer g.Close()
//	manifest, err := g.Run(starsmith.AllCategories())
//
// # Atlases
//
// An atlas holds frameCount frames of bodySize x bodySize pixels side by
// side, so its dimensions are (bodySize*frameCount, bodySize). Planet and
// moon frames sweep one full rotation and loop seamlessly; star surfaces
// boil forward in time instead and do not loop.
//
// # Determinism
//
// Per-body seeds derive from the run's master seed via FNV-1a over the
// body's identity. The manifest records every seed, so any sprite can be
// regenerated bit-for-bit, in parallel or not.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - texU walks the equator with period 2, texV is the normal's y
package starsmith

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
