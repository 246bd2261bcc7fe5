package starsmith

import (
	"math"
	"testing"
)

func TestNewLightModelNormalizes(t *testing.T) {
	m := newLightModel(3, 0, 0, 0.1, 0.3, 0.7, 1)
	if m.dirX != 1 || m.dirY != 0 || m.dirZ != 0 {
		t.Errorf("direction = (%v, %v, %v), want (1, 0, 0)", m.dirX, m.dirY, m.dirZ)
	}

	// Scaling the direction must not change the shading.
	a := newLightModel(-0.45, -0.35, 0.80, 0.12, 0.35, 0.65, 0.70)
	b := newLightModel(-4.5, -3.5, 8.0, 0.12, 0.35, 0.65, 0.70)
	for _, n := range []struct{ x, y, z float64 }{{0, 0, 1}, {0.5, 0.3, 0.812}, {-0.6, -0.4, 0.693}} {
		sa := a.shade(n.x, n.y, n.z)
		sb := b.shade(n.x, n.y, n.z)
		if math.Abs(sa-sb) > 1e-12 {
			t.Errorf("shade differs after direction scaling: %v vs %v", sa, sb)
		}
	}

	// A zero direction must not divide by zero.
	z := newLightModel(0, 0, 0, 0.1, 0.3, 0.7, 1)
	if got := z.shade(0, 0, 1); math.IsNaN(got) {
		t.Errorf("zero-direction shade = %v", got)
	}
}

func TestShadeBounds(t *testing.T) {
	models := []lightModel{planetLight, moonLight}
	for _, m := range models {
		maxShade := m.k1 + m.k2
		for i := 0; i < 200; i++ {
			// Sweep normals over the visible hemisphere.
			theta := float64(i) * 0.12
			phi := float64(i) * 0.071
			nx := math.Sin(theta) * math.Cos(phi)
			ny := math.Sin(theta) * math.Sin(phi)
			nz := math.Abs(math.Cos(theta))

			s := m.shade(nx, ny, nz)
			if s < 0 {
				t.Fatalf("shade(%v, %v, %v) = %v, negative", nx, ny, nz, s)
			}
			if s > maxShade+1e-9 {
				t.Fatalf("shade(%v, %v, %v) = %v, above limit %v", nx, ny, nz, s, maxShade)
			}
		}
	}
}

func TestShadeDirectionality(t *testing.T) {
	// Light comes from the upper left: a normal leaning that way is
	// brighter than its mirror leaning away.
	nz := math.Sqrt(1 - 0.5*0.5 - 0.4*0.4)
	lit := planetLight.shade(-0.5, -0.4, nz)
	dark := planetLight.shade(0.5, 0.4, nz)
	if lit <= dark {
		t.Errorf("lit side %v not brighter than far side %v", lit, dark)
	}

	// The ambient floor keeps the night side visible.
	if dark <= 0 {
		t.Errorf("night side shade = %v, want > 0", dark)
	}
}

func TestMoonTerminatorHarderThanPlanet(t *testing.T) {
	// Same normal away from the light: the moon model drops further.
	nz := math.Sqrt(1 - 0.5*0.5 - 0.4*0.4)
	p := planetLight.shade(0.5, 0.4, nz)
	m := moonLight.shade(0.5, 0.4, nz)
	if m >= p {
		t.Errorf("moon night side %v not darker than planet %v", m, p)
	}
}

func TestLimbDarken(t *testing.T) {
	if got := limbDarken(1, 0.55, 0.45, 0.5); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("limbDarken(1) = %v, want 1", got)
	}
	if got := limbDarken(0, 0.55, 0.45, 0.5); math.Abs(got-0.55) > 1e-12 {
		t.Errorf("limbDarken(0) = %v, want k1", got)
	}
	// Monotonic toward the limb.
	prev := limbDarken(1, 0.55, 0.45, 0.5)
	for nz := 0.9; nz >= 0; nz -= 0.1 {
		cur := limbDarken(nz, 0.55, 0.45, 0.5)
		if cur > prev {
			t.Fatalf("limbDarken not monotonic at nz=%v: %v > %v", nz, cur, prev)
		}
		prev = cur
	}
}

func TestAsteroidShade(t *testing.T) {
	// Facing the light angle exactly gives full brightness.
	if got := asteroidShade(asteroidLightAngle); math.Abs(got-1) > 1e-12 {
		t.Errorf("asteroidShade(lightAngle) = %v, want 1", got)
	}
	// Opposite the light drops to the floor, never black.
	if got := asteroidShade(asteroidLightAngle + math.Pi); math.Abs(got-asteroidShadeFloor) > 1e-12 {
		t.Errorf("asteroidShade(opposite) = %v, want %v", got, asteroidShadeFloor)
	}
	for theta := 0.0; theta < 2*math.Pi; theta += 0.05 {
		s := asteroidShade(theta)
		if s < asteroidShadeFloor-1e-12 || s > 1+1e-12 {
			t.Fatalf("asteroidShade(%v) = %v, outside [%v, 1]", theta, s, asteroidShadeFloor)
		}
	}
}
