package starsmith

import "math"

// lightModel combines Lambertian diffuse shading with limb darkening for
// one body class. The ambient floor keeps the night side readable instead
// of collapsing to black.
type lightModel struct {
	dirX, dirY, dirZ float64
	ambient          float64
	k1, k2           float64
	limbPow          float64
}

// newLightModel normalizes the light direction so shade factors stay in
// [0, 1] regardless of how the direction was written down.
func newLightModel(dx, dy, dz, ambient, k1, k2, limbPow float64) lightModel {
	n := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if n == 0 {
		n = 1
	}
	return lightModel{
		dirX: dx / n, dirY: dy / n, dirZ: dz / n,
		ambient: ambient, k1: k1, k2: k2, limbPow: limbPow,
	}
}

// Light from the upper left, toward the viewer. Moons get a harder
// terminator than planets; smaller limbPow gives planets their softer
// falloff toward the silhouette.
var (
	planetLight = newLightModel(-0.45, -0.35, 0.80, 0.12, 0.35, 0.65, 0.70)
	moonLight   = newLightModel(-0.45, -0.35, 0.80, 0.08, 0.25, 0.75, 1.10)
)

// shade returns the brightness factor for a surface normal: Lambert
// diffuse against the fixed light direction, lifted by the ambient floor,
// multiplied by limb darkening k1 + k2*nz^p.
func (m lightModel) shade(nx, ny, nz float64) float64 {
	diffuse := nx*m.dirX + ny*m.dirY + nz*m.dirZ
	if diffuse < 0 {
		diffuse = 0
	}
	limb := m.k1 + m.k2*math.Pow(nz, m.limbPow)
	return (m.ambient + (1-m.ambient)*diffuse) * limb
}

// limbDarken is the star variant: no diffuse term, since the surface is
// self-luminous, only the edge falloff.
func limbDarken(nz, k1, k2, p float64) float64 {
	return k1 + k2*math.Pow(nz, p)
}

// Asteroids have no reconstructed 3D normal. Shading is a cosine falloff
// of the pixel's polar angle from a fixed light angle.
const (
	asteroidLightAngle = 2.35
	asteroidShadeFloor = 0.35
)

// asteroidShade returns the brightness factor for a pixel at polar angle
// theta on an asteroid silhouette.
func asteroidShade(theta float64) float64 {
	c := math.Cos(theta - asteroidLightAngle)
	if c < 0 {
		c = 0
	}
	return asteroidShadeFloor + (1-asteroidShadeFloor)*c
}
