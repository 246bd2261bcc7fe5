package starsmith

import (
	"bytes"
	"testing"

	"github.com/pixelcosm/starsmith/internal/parallel"
)

func TestComposeSequential(t *testing.T) {
	a := compose(4, 3, func(a *Atlas, frame int) {
		a.FillBlock(frame, 0, 0, 4, RGBA{float64(frame) / 3, 0, 0, 1})
	}, nil)

	if a.BodySize() != 4 || a.Frames() != 3 {
		t.Fatalf("composed atlas %dx%d frames, want 4 body 3 frames", a.BodySize(), a.Frames())
	}
	for f := 0; f < 3; f++ {
		got := a.GetFramePixel(f, 1, 1)
		want := float64(f) / 3
		if absDiff(got.R, want) > 1.0/255 {
			t.Errorf("frame %d red = %v, want %v", f, got.R, want)
		}
	}
}

func TestComposePoolMatchesSequential(t *testing.T) {
	// Frame slots are disjoint and every pixel is a pure function of its
	// inputs, so parallel execution must be bit-identical to sequential.
	pool := parallel.NewWorkerPool(4)
	defer pool.Close()

	fn := func(a *Atlas, frame int) {
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				v := float64((x*7+y*13+frame*29)%255) / 255
				a.SetPixel(frame*16+x, y, RGBA{v, 1 - v, v * v, 1})
			}
		}
	}

	seq := compose(16, 8, fn, nil)
	par := compose(16, 8, fn, pool)

	if !bytes.Equal(seq.Data(), par.Data()) {
		t.Error("pooled compose differs from sequential")
	}
}

func TestRenderersPoolInvariant(t *testing.T) {
	// The full pipelines give the same guarantee end to end.
	pool := parallel.NewWorkerPool(3)
	defer pool.Close()

	t.Run("planet", func(t *testing.T) {
		spec := PlanetSpec{Type: PlanetTerran, Size: 32, Frames: 4, PixelSize: 2, Seed: 11}
		seq := renderPlanet(spec, nil)
		par := renderPlanet(spec, pool)
		if !bytes.Equal(seq.Data(), par.Data()) {
			t.Error("pooled planet render differs from sequential")
		}
	})

	t.Run("star", func(t *testing.T) {
		spec := StarSpec{Class: StarG, Size: 32, Frames: 4, PixelSize: 2, Seed: 11}
		seq := renderStar(spec, nil)
		par := renderStar(spec, pool)
		if !bytes.Equal(seq.Data(), par.Data()) {
			t.Error("pooled star render differs from sequential")
		}
	})

	t.Run("asteroid", func(t *testing.T) {
		spec := AsteroidSpec{Kind: AsteroidMetal, Size: 24, Frames: 4, Seed: 11}
		seq := renderAsteroid(spec, nil)
		par := renderAsteroid(spec, pool)
		if !bytes.Equal(seq.Data(), par.Data()) {
			t.Error("pooled asteroid render differs from sequential")
		}
	})
}
