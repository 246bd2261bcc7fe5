package starsmith

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"time"

	"github.com/pixelcosm/starsmith/internal/parallel"
)

// ErrNoCategories is returned by Run when the selection enables nothing.
var ErrNoCategories = errors.New("starsmith: no categories selected")

// Selection picks the sprite categories a run generates. The zero value
// selects nothing, which Run rejects.
type Selection struct {
	Stars       bool
	Planets     bool
	Moons       bool
	Asteroids   bool
	Backgrounds bool
}

// AllCategories returns a selection with every category enabled.
func AllCategories() Selection {
	return Selection{Stars: true, Planets: true, Moons: true, Asteroids: true, Backgrounds: true}
}

// None reports whether no category is selected.
func (s Selection) None() bool {
	return !s.Stars && !s.Planets && !s.Moons && !s.Asteroids && !s.Backgrounds
}

// Generator renders sprite batches from a Config. It owns a worker pool
// for frame-parallel rendering; call Close when done. A Generator may run
// any number of times, each run writing a fresh manifest.
type Generator struct {
	cfg  Config
	opts generatorOptions
	pool *parallel.WorkerPool
}

// NewGenerator creates a Generator from a configuration.
func NewGenerator(cfg Config, opts ...GeneratorOption) *Generator {
	o := defaultGeneratorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{
		cfg:  cfg,
		opts: o,
		pool: parallel.NewWorkerPool(o.workers),
	}
}

// Close shuts down the Generator's worker pool.
func (g *Generator) Close() {
	g.pool.Close()
}

// Run generates every selected category into the configured output
// directory and writes the manifest. The returned manifest lists every
// sprite with its derived seed.
//
// A configured seed of zero derives one from the clock; the chosen seed is
// logged and recorded in the manifest either way, so any run can be
// reproduced.
func (g *Generator) Run(sel Selection) (*Manifest, error) {
	if sel.None() {
		return nil, ErrNoCategories
	}

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		Logger().Info("no seed configured, derived from clock", "seed", seed)
	}

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("starsmith: create output dir %s: %w", g.cfg.OutputDir, err)
	}
	if g.opts.previews {
		if err := os.MkdirAll(filepath.Join(g.cfg.OutputDir, "previews"), 0o755); err != nil {
			return nil, fmt.Errorf("starsmith: create previews dir: %w", err)
		}
	}

	start := time.Now()
	Logger().Info("generation started",
		"seed", seed,
		"output", g.cfg.OutputDir,
		"workers", g.pool.Workers())

	manifest := NewManifest(seed, g.opts.runID)

	if sel.Stars {
		if err := g.generateStars(manifest); err != nil {
			return nil, err
		}
	}
	if sel.Planets {
		if err := g.generatePlanets(manifest); err != nil {
			return nil, err
		}
	}
	if sel.Moons {
		if err := g.generateMoons(manifest); err != nil {
			return nil, err
		}
	}
	if sel.Asteroids {
		if err := g.generateAsteroids(manifest); err != nil {
			return nil, err
		}
	}
	if sel.Backgrounds {
		if err := g.generateBackgrounds(manifest); err != nil {
			return nil, err
		}
	}

	if err := manifest.Write(g.cfg.OutputDir); err != nil {
		return nil, err
	}

	Logger().Info("generation complete",
		"sprites", len(manifest.Sprites),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return manifest, nil
}

func (g *Generator) generateStars(m *Manifest) error {
	sc := g.cfg.Stars
	for _, name := range sc.Classes {
		class := ParseStarClass(name)
		seed := deriveSeed(m.Seed, "star", class.String(), 0)

		start := time.Now()
		atlas := renderStar(StarSpec{
			Class:     class,
			Size:      sc.Size,
			Frames:    sc.Frames,
			PixelSize: sc.PixelSize,
			Seed:      seed,
		}, g.pool)

		file := fmt.Sprintf("star_%s.png", class)
		if err := g.writeAtlas(atlas, file); err != nil {
			return err
		}
		m.Add(SpriteEntry{
			File: file, Category: CategoryStar.String(), Type: class.String(),
			Seed: seed, Size: atlas.BodySize(), Frames: atlas.Frames(),
		})
		Logger().Info("star rendered",
			"class", class.String(), "seed", seed,
			"elapsed", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func (g *Generator) generatePlanets(m *Manifest) error {
	pc := g.cfg.Planets
	for _, t := range PlanetTypes() {
		count := pc.CountPerType
		if t == PlanetGasGiant {
			count = pc.GasGiantCount
		}
		pal := g.paletteFor(t.String(), PaletteFor(t))

		for i := 0; i < count; i++ {
			seed := deriveSeed(m.Seed, "planet", t.String(), i)

			start := time.Now()
			atlas := renderPlanet(PlanetSpec{
				Type:      t,
				Palette:   pal,
				Size:      pc.Size,
				Frames:    pc.Frames,
				PixelSize: pc.PixelSize,
				Seed:      seed,
			}, g.pool)

			file := fmt.Sprintf("planet_%s_%03d.png", t, i)
			if err := g.writeAtlas(atlas, file); err != nil {
				return err
			}
			m.Add(SpriteEntry{
				File: file, Category: CategoryPlanet.String(), Type: t.String(),
				Seed: seed, Size: atlas.BodySize(), Frames: atlas.Frames(),
			})
			Logger().Info("planet rendered",
				"type", t.String(), "index", i, "seed", seed,
				"elapsed", time.Since(start).Round(time.Millisecond))
		}
	}
	return nil
}

func (g *Generator) generateMoons(m *Manifest) error {
	mc := g.cfg.Moons
	indexBySurface := map[MoonSurface]int{}

	for i := 0; i < mc.Count; i++ {
		seed := deriveSeed(m.Seed, "moon", "", i)
		surface := MoonRocky
		if uint64(seed)&1 == 1 {
			surface = MoonIcy
		}
		idx := indexBySurface[surface]
		indexBySurface[surface]++

		start := time.Now()
		atlas := renderMoon(MoonSpec{
			Surface:   surface,
			Palette:   g.paletteFor("moon_"+surface.String(), MoonPaletteFor(surface)),
			Size:      mc.Size,
			Frames:    mc.Frames,
			PixelSize: mc.PixelSize,
			Seed:      seed,
		}, g.pool)

		file := fmt.Sprintf("moon_%s_%03d.png", surface, idx)
		if err := g.writeAtlas(atlas, file); err != nil {
			return err
		}
		m.Add(SpriteEntry{
			File: file, Category: CategoryMoon.String(), Type: surface.String(),
			Seed: seed, Size: atlas.BodySize(), Frames: atlas.Frames(),
		})
		Logger().Info("moon rendered",
			"surface", surface.String(), "index", idx, "seed", seed,
			"elapsed", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func (g *Generator) generateAsteroids(m *Manifest) error {
	ac := g.cfg.Asteroids
	kinds := AsteroidKinds()
	indexByKind := map[AsteroidKind]int{}

	for i := 0; i < ac.Count; i++ {
		kind := kinds[i%len(kinds)]
		seed := deriveSeed(m.Seed, "asteroid", kind.String(), i)
		irr := rollRange(m.Seed, "asteroid-irregularity", i, ac.IrregularityMin, ac.IrregularityMax)
		idx := indexByKind[kind]
		indexByKind[kind]++

		start := time.Now()
		atlas := renderAsteroid(AsteroidSpec{
			Kind:         kind,
			Palette:      g.paletteFor("asteroid_"+kind.String(), AsteroidPaletteFor(kind)),
			Size:         ac.Size,
			Frames:       ac.Frames,
			PixelSize:    ac.PixelSize,
			Irregularity: irr,
			Seed:         seed,
		}, g.pool)

		file := fmt.Sprintf("asteroid_%s_%03d.png", kind, idx)
		if err := g.writeAtlas(atlas, file); err != nil {
			return err
		}
		m.Add(SpriteEntry{
			File: file, Category: CategoryAsteroid.String(), Type: kind.String(),
			Seed: seed, Size: atlas.BodySize(), Frames: atlas.Frames(),
		})
		Logger().Info("asteroid rendered",
			"kind", kind.String(), "index", idx, "seed", seed,
			"irregularity", fmt.Sprintf("%.3f", irr),
			"elapsed", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func (g *Generator) generateBackgrounds(m *Manifest) error {
	bc := g.cfg.Backgrounds
	for i := 0; i < bc.Count; i++ {
		seed := deriveSeed(m.Seed, "background", "nebula", i)

		start := time.Now()
		atlas := RenderBackground(BackgroundSpec{Size: bc.Size, Seed: seed})

		file := fmt.Sprintf("background_nebula_%03d.png", i)
		if err := g.writeAtlas(atlas, file); err != nil {
			return err
		}
		m.Add(SpriteEntry{
			File: file, Category: CategoryBackground.String(), Type: "nebula",
			Seed: seed, Size: atlas.BodySize(), Frames: atlas.Frames(),
		})
		Logger().Info("background rendered",
			"index", i, "seed", seed,
			"elapsed", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// writeAtlas persists one atlas, plus its APNG preview when previews are
// enabled. I/O failures are fatal for the run and surface to the caller.
func (g *Generator) writeAtlas(a *Atlas, file string) error {
	path := filepath.Join(g.cfg.OutputDir, file)
	if err := a.SavePNG(path); err != nil {
		return fmt.Errorf("starsmith: save atlas %s: %w", path, err)
	}
	Logger().Debug("atlas written", "path", path, "width", a.Width(), "height", a.Height())

	if g.opts.previews {
		previewPath := filepath.Join(g.cfg.OutputDir, "previews", file)
		if err := WritePreview(a, previewPath, g.cfg.Preview.Scale, g.cfg.Preview.DelayCS); err != nil {
			return err
		}
		Logger().Debug("preview written", "path", previewPath)
	}
	return nil
}

// paletteFor applies configured overrides for a palette key. Unknown
// feature names are logged and skipped.
func (g *Generator) paletteFor(key string, base Palette) Palette {
	raw := g.cfg.Palettes[key]
	if len(raw) == 0 {
		return base
	}
	overrides, unknown := parsePaletteOverrides(raw)
	for _, name := range unknown {
		Logger().Warn("unknown palette feature", "palette", key, "feature", name)
	}
	return base.With(overrides)
}

// deriveSeed produces a body seed from the master seed and the body's
// identity, so each body's noise field is independent but reproducible.
func deriveSeed(master int64, category, kind string, index int) int64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(master))
	h.Write(buf[:])
	h.Write([]byte(category))
	h.Write([]byte{0})
	h.Write([]byte(kind))
	h.Write([]byte{0})
	binary.LittleEndian.PutUint64(buf[:], uint64(index))
	h.Write(buf[:])
	return int64(h.Sum64())
}

// rollRange maps a derived seed onto [lo, hi] uniformly to 4 decimal
// places. Used for per-body parameters like asteroid irregularity.
func rollRange(master int64, kind string, index int, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	u := uint64(deriveSeed(master, "roll", kind, index))
	f := float64(u%10000) / 9999
	return lo + f*(hi-lo)
}
