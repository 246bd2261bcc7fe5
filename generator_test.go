package starsmith

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// tinyConfig keeps render sizes small enough that a full run stays fast.
func tinyConfig(dir string) Config {
	cfg := DefaultConfig()
	cfg.OutputDir = dir
	cfg.Seed = 12345
	cfg.Stars = StarConfig{Size: 16, Frames: 2, PixelSize: 2, Classes: []string{"g"}}
	cfg.Planets = PlanetConfig{Size: 16, Frames: 2, PixelSize: 2, CountPerType: 1, GasGiantCount: 1}
	cfg.Moons = MoonConfig{Size: 16, Frames: 2, PixelSize: 2, Count: 2}
	cfg.Asteroids = AsteroidConfig{
		Size: 16, Frames: 2, PixelSize: 1, Count: 3,
		IrregularityMin: 0.3, IrregularityMax: 0.6,
	}
	cfg.Backgrounds = BackgroundConfig{Size: 16, Count: 1}
	cfg.Preview = PreviewConfig{Scale: 2, DelayCS: 5}
	return cfg
}

func TestSelectionNone(t *testing.T) {
	if !(Selection{}).None() {
		t.Error("zero Selection should report None")
	}
	if AllCategories().None() {
		t.Error("AllCategories should not report None")
	}
	if (Selection{Moons: true}).None() {
		t.Error("partial Selection should not report None")
	}
}

func TestRunRejectsEmptySelection(t *testing.T) {
	g := NewGenerator(tinyConfig(t.TempDir()))
	defer g.Close()

	_, err := g.Run(Selection{})
	if !errors.Is(err, ErrNoCategories) {
		t.Fatalf("Run(empty) = %v, want ErrNoCategories", err)
	}
}

func TestRunGeneratesEverything(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(tinyConfig(dir), WithRunID("test-run"))
	defer g.Close()

	m, err := g.Run(AllCategories())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// 1 star + 7 terrestrial planets + 1 gas giant + 2 moons +
	// 3 asteroids + 1 background.
	if len(m.Sprites) != 15 {
		t.Fatalf("manifest has %d sprites, want 15", len(m.Sprites))
	}
	if m.RunID != "test-run" {
		t.Errorf("RunID = %q, want test-run", m.RunID)
	}
	if m.Seed != 12345 {
		t.Errorf("manifest Seed = %d, want 12345", m.Seed)
	}

	counts := map[string]int{}
	for _, s := range m.Sprites {
		counts[s.Category]++
		if _, err := os.Stat(filepath.Join(dir, s.File)); err != nil {
			t.Errorf("listed sprite %s not on disk: %v", s.File, err)
		}
		if s.Seed == 0 {
			t.Errorf("sprite %s has zero derived seed", s.File)
		}
		if !strings.HasPrefix(s.File, s.Category+"_") {
			t.Errorf("sprite file %q does not carry category prefix %q", s.File, s.Category)
		}
	}
	want := map[string]int{"star": 1, "planet": 8, "moon": 2, "asteroid": 3, "background": 1}
	for cat, n := range want {
		if counts[cat] != n {
			t.Errorf("category %s has %d sprites, want %d", cat, counts[cat], n)
		}
	}

	// Known fixed names for the per-class and per-type artifacts.
	for _, file := range []string{"star_g.png", "planet_terran_000.png", "planet_gas_000.png", "background_nebula_000.png"} {
		if _, err := os.Stat(filepath.Join(dir, file)); err != nil {
			t.Errorf("expected artifact %s missing: %v", file, err)
		}
	}

	// The manifest itself landed next to the sprites and loads back.
	loaded, err := LoadManifest(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if len(loaded.Sprites) != len(m.Sprites) {
		t.Errorf("loaded manifest has %d sprites, want %d", len(loaded.Sprites), len(m.Sprites))
	}
}

func TestRunPartialSelection(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(tinyConfig(dir))
	defer g.Close()

	m, err := g.Run(Selection{Stars: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(m.Sprites) != 1 || m.Sprites[0].Category != "star" {
		t.Fatalf("star-only run produced %+v", m.Sprites)
	}
	if _, err := os.Stat(filepath.Join(dir, "planet_terran_000.png")); err == nil {
		t.Error("star-only run wrote planet sprites")
	}
}

func TestRunReproducible(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()

	ga := NewGenerator(tinyConfig(dirA))
	if _, err := ga.Run(Selection{Stars: true, Asteroids: true}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	ga.Close()

	gb := NewGenerator(tinyConfig(dirB))
	if _, err := gb.Run(Selection{Stars: true, Asteroids: true}); err != nil {
		t.Fatalf("second run: %v", err)
	}
	gb.Close()

	for _, file := range []string{"star_g.png", "asteroid_carbon_000.png"} {
		a, err := os.ReadFile(filepath.Join(dirA, file))
		if err != nil {
			t.Fatalf("read %s: %v", file, err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, file))
		if err != nil {
			t.Fatalf("read %s: %v", file, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between identically seeded runs", file)
		}
	}
}

func TestRunDerivesSeedFromClock(t *testing.T) {
	cfg := tinyConfig(t.TempDir())
	cfg.Seed = 0
	g := NewGenerator(cfg)
	defer g.Close()

	m, err := g.Run(Selection{Backgrounds: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Seed == 0 {
		t.Error("manifest seed still zero, want clock-derived")
	}
}

func TestRunWritesPreviews(t *testing.T) {
	dir := t.TempDir()
	cfg := tinyConfig(dir)
	g := NewGenerator(cfg, WithPreviews(true))
	defer g.Close()

	if _, err := g.Run(Selection{Asteroids: true}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	preview := filepath.Join(dir, "previews", "asteroid_carbon_000.png")
	if _, err := os.Stat(preview); err != nil {
		t.Fatalf("preview missing: %v", err)
	}
}

func TestRunAppliesPaletteOverrides(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()

	ga := NewGenerator(tinyConfig(dirA))
	if _, err := ga.Run(Selection{Planets: true}); err != nil {
		t.Fatalf("plain run: %v", err)
	}
	ga.Close()

	// Cover every band the lava ladder can emit, so the override is
	// visible no matter where the elevation field lands.
	cfg := tinyConfig(dirB)
	cfg.Palettes = map[string]map[string]string{
		"lava": {
			"lava": "00ff00", "ember": "00ee00", "basalt": "00dd00",
			"rock": "00cc00", "ash": "00bb00",
		},
	}
	gb := NewGenerator(cfg)
	if _, err := gb.Run(Selection{Planets: true}); err != nil {
		t.Fatalf("override run: %v", err)
	}
	gb.Close()

	a, err := os.ReadFile(filepath.Join(dirA, "planet_lava_000.png"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dirB, "planet_lava_000.png"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Error("palette override left the lava planet unchanged")
	}

	// Other types keep rendering identically.
	a, err = os.ReadFile(filepath.Join(dirA, "planet_terran_000.png"))
	if err != nil {
		t.Fatal(err)
	}
	b, err = os.ReadFile(filepath.Join(dirB, "planet_terran_000.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("override for lava changed the terran render")
	}
}

func TestDeriveSeed(t *testing.T) {
	a := deriveSeed(1, "star", "g", 0)
	if b := deriveSeed(1, "star", "g", 0); b != a {
		t.Error("deriveSeed not deterministic")
	}

	variants := []int64{
		deriveSeed(2, "star", "g", 0),
		deriveSeed(1, "planet", "g", 0),
		deriveSeed(1, "star", "k", 0),
		deriveSeed(1, "star", "g", 1),
	}
	for i, v := range variants {
		if v == a {
			t.Errorf("variant %d collides with base seed", i)
		}
	}

	// The separator byte keeps (category, kind) pairs unambiguous.
	if deriveSeed(1, "starg", "", 0) == deriveSeed(1, "star", "g", 0) {
		t.Error("category/kind concatenation is ambiguous")
	}
}

func TestRollRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		v := rollRange(7, "asteroid-irregularity", i, 0.3, 0.6)
		if v < 0.3 || v > 0.6 {
			t.Fatalf("rollRange index %d = %v, outside [0.3, 0.6]", i, v)
		}
	}

	if a, b := rollRange(7, "x", 3, 0, 1), rollRange(7, "x", 3, 0, 1); a != b {
		t.Error("rollRange not deterministic")
	}

	seen := map[float64]bool{}
	for i := 0; i < 20; i++ {
		seen[rollRange(7, "x", i, 0, 1)] = true
	}
	if len(seen) < 2 {
		t.Error("rollRange produced a single value across indexes")
	}

	// A degenerate range pins to the low bound.
	if got := rollRange(7, "x", 0, 0.5, 0.5); got != 0.5 {
		t.Errorf("degenerate range = %v, want 0.5", got)
	}
	if got := rollRange(7, "x", 0, 0.8, 0.2); got != 0.8 {
		t.Errorf("inverted range = %v, want lo", got)
	}
}
