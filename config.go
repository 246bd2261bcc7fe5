package starsmith

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails
// validation.
var ErrInvalidConfig = errors.New("starsmith: invalid configuration")

// Default sprite dimensions per category. Planets get the most frames
// because their rotation loop is the most visible; asteroids are small and
// render at full resolution.
const (
	DefaultStarSize      = 160
	DefaultStarFrames    = 32
	DefaultStarPixelSize = 2

	DefaultPlanetSize      = 128
	DefaultPlanetFrames    = 48
	DefaultPlanetPixelSize = 2

	DefaultMoonSize      = 64
	DefaultMoonFrames    = 32
	DefaultMoonPixelSize = 2

	DefaultAsteroidSize      = 48
	DefaultAsteroidFrames    = 16
	DefaultAsteroidPixelSize = 1

	DefaultBackgroundSize = 512

	DefaultIrregularityMin = 0.3
	DefaultIrregularityMax = 0.6
)

// Config is the complete generation configuration. It is a plain value:
// load it once, pass it into NewGenerator, and nothing mutates it
// afterward, so concurrent generations can share one Config freely.
type Config struct {
	// OutputDir receives atlases, previews and the manifest.
	OutputDir string `yaml:"output_dir"`

	// Seed is the master seed all per-body seeds derive from. Zero means
	// derive one from the current time; the generator logs whichever seed
	// it uses so the run stays reproducible.
	Seed int64 `yaml:"seed"`

	Stars       StarConfig       `yaml:"stars"`
	Planets     PlanetConfig     `yaml:"planets"`
	Moons       MoonConfig       `yaml:"moons"`
	Asteroids   AsteroidConfig   `yaml:"asteroids"`
	Backgrounds BackgroundConfig `yaml:"backgrounds"`
	Preview     PreviewConfig    `yaml:"preview"`

	// Palettes overrides palette entries by body type key and feature
	// name, e.g. palettes: {terran: {grass: "44aa33"}}. Unknown feature
	// names are logged and skipped.
	Palettes map[string]map[string]string `yaml:"palettes"`
}

// StarConfig controls star sprite generation. One sprite is generated per
// listed spectral class.
type StarConfig struct {
	Size      int      `yaml:"size"`
	Frames    int      `yaml:"frames"`
	PixelSize int      `yaml:"pixel_size"`
	Classes   []string `yaml:"classes"`
}

// PlanetConfig controls planet sprite generation.
type PlanetConfig struct {
	Size          int `yaml:"size"`
	Frames        int `yaml:"frames"`
	PixelSize     int `yaml:"pixel_size"`
	CountPerType  int `yaml:"count_per_type"`
	GasGiantCount int `yaml:"gas_giant_count"`
}

// MoonConfig controls moon sprite generation. Surfaces alternate between
// rocky and icy, driven by each body's derived seed.
type MoonConfig struct {
	Size      int `yaml:"size"`
	Frames    int `yaml:"frames"`
	PixelSize int `yaml:"pixel_size"`
	Count     int `yaml:"count"`
}

// AsteroidConfig controls asteroid sprite generation. Each body rolls its
// irregularity from [IrregularityMin, IrregularityMax].
type AsteroidConfig struct {
	Size            int     `yaml:"size"`
	Frames          int     `yaml:"frames"`
	PixelSize       int     `yaml:"pixel_size"`
	Count           int     `yaml:"count"`
	IrregularityMin float64 `yaml:"irregularity_min"`
	IrregularityMax float64 `yaml:"irregularity_max"`
}

// BackgroundConfig controls nebula backdrop generation.
type BackgroundConfig struct {
	Size  int `yaml:"size"`
	Count int `yaml:"count"`
}

// PreviewConfig controls animated APNG previews. Scale is the integer
// upscaling factor; DelayCS is the per-frame delay in centiseconds.
type PreviewConfig struct {
	Scale   int `yaml:"scale"`
	DelayCS int `yaml:"delay_cs"`
}

// DefaultConfig returns the configuration used when no file or overrides
// are given.
func DefaultConfig() Config {
	return Config{
		OutputDir: "sprites",
		Stars: StarConfig{
			Size:      DefaultStarSize,
			Frames:    DefaultStarFrames,
			PixelSize: DefaultStarPixelSize,
			Classes:   []string{"o", "b", "a", "f", "g", "k", "m"},
		},
		Planets: PlanetConfig{
			Size:          DefaultPlanetSize,
			Frames:        DefaultPlanetFrames,
			PixelSize:     DefaultPlanetPixelSize,
			CountPerType:  2,
			GasGiantCount: 3,
		},
		Moons: MoonConfig{
			Size:      DefaultMoonSize,
			Frames:    DefaultMoonFrames,
			PixelSize: DefaultMoonPixelSize,
			Count:     8,
		},
		Asteroids: AsteroidConfig{
			Size:            DefaultAsteroidSize,
			Frames:          DefaultAsteroidFrames,
			PixelSize:       DefaultAsteroidPixelSize,
			Count:           16,
			IrregularityMin: DefaultIrregularityMin,
			IrregularityMax: DefaultIrregularityMax,
		},
		Backgrounds: BackgroundConfig{
			Size:  DefaultBackgroundSize,
			Count: 4,
		},
		Preview: PreviewConfig{
			Scale:   4,
			DelayCS: 6,
		},
	}
}

// LoadConfig reads a YAML configuration file merged over DefaultConfig.
// Fields absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cfg, fmt.Errorf("starsmith: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("starsmith: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipelines cannot
// render from.
func (c Config) Validate() error {
	check := func(name string, size, frames, pixel int) error {
		if size < 8 {
			return fmt.Errorf("%w: %s size %d below minimum 8", ErrInvalidConfig, name, size)
		}
		if frames < 1 {
			return fmt.Errorf("%w: %s frames %d below minimum 1", ErrInvalidConfig, name, frames)
		}
		if pixel < 1 || pixel > size {
			return fmt.Errorf("%w: %s pixel size %d outside [1, %d]", ErrInvalidConfig, name, pixel, size)
		}
		return nil
	}

	if err := check("stars", c.Stars.Size, c.Stars.Frames, c.Stars.PixelSize); err != nil {
		return err
	}
	if err := check("planets", c.Planets.Size, c.Planets.Frames, c.Planets.PixelSize); err != nil {
		return err
	}
	if err := check("moons", c.Moons.Size, c.Moons.Frames, c.Moons.PixelSize); err != nil {
		return err
	}
	if err := check("asteroids", c.Asteroids.Size, c.Asteroids.Frames, c.Asteroids.PixelSize); err != nil {
		return err
	}

	if c.Backgrounds.Size < 16 {
		return fmt.Errorf("%w: background size %d below minimum 16", ErrInvalidConfig, c.Backgrounds.Size)
	}

	a := c.Asteroids
	if a.IrregularityMin < 0 || a.IrregularityMax > 0.95 || a.IrregularityMin > a.IrregularityMax {
		return fmt.Errorf("%w: irregularity range [%v, %v] invalid", ErrInvalidConfig, a.IrregularityMin, a.IrregularityMax)
	}

	if c.Preview.Scale < 1 {
		return fmt.Errorf("%w: preview scale %d below minimum 1", ErrInvalidConfig, c.Preview.Scale)
	}

	for typeKey, features := range c.Palettes {
		for name, hex := range features {
			if hex == "" {
				return fmt.Errorf("%w: empty palette override %s.%s", ErrInvalidConfig, typeKey, name)
			}
		}
	}

	return nil
}

// parsePaletteOverrides resolves feature-name keyed hex strings into a
// palette override map, returning any unrecognized feature names.
func parsePaletteOverrides(raw map[string]string) (map[Feature]RGBA, []string) {
	if len(raw) == 0 {
		return nil, nil
	}
	overrides := make(map[Feature]RGBA, len(raw))
	var unknown []string
	for name, hex := range raw {
		f, ok := ParseFeature(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		overrides[f] = Hex(hex)
	}
	return overrides, unknown
}
