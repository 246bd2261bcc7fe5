package starsmith

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ManifestName is the manifest filename inside the output directory.
const ManifestName = "manifest.yaml"

// Manifest records everything needed to reproduce a run: the master seed,
// and per sprite the derived seed, dimensions and output file. Regenerating
// with the same master seed yields byte-identical atlases.
type Manifest struct {
	RunID     string        `yaml:"run_id"`
	CreatedAt time.Time     `yaml:"created_at"`
	Seed      int64         `yaml:"seed"`
	Sprites   []SpriteEntry `yaml:"sprites"`
}

// SpriteEntry describes one generated atlas.
type SpriteEntry struct {
	File     string `yaml:"file"`
	Category string `yaml:"category"`
	Type     string `yaml:"type"`
	Seed     int64  `yaml:"seed"`
	Size     int    `yaml:"size"`
	Frames   int    `yaml:"frames"`
}

// NewManifest starts a manifest for a run. An empty runID gets a fresh
// UUID.
func NewManifest(seed int64, runID string) *Manifest {
	if runID == "" {
		runID = uuid.NewString()
	}
	return &Manifest{
		RunID:     runID,
		CreatedAt: time.Now().UTC(),
		Seed:      seed,
	}
}

// Add appends a sprite entry.
func (m *Manifest) Add(entry SpriteEntry) {
	m.Sprites = append(m.Sprites, entry)
}

// Write saves the manifest as YAML into dir.
func (m *Manifest) Write(dir string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("starsmith: marshal manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("starsmith: write manifest %s: %w", path, err)
	}
	return nil
}

// LoadManifest reads a manifest written by a previous run. Entries whose
// category is not one this build knows fail the load, so a stale or
// hand-edited manifest cannot be silently reused.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("starsmith: read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("starsmith: parse manifest %s: %w", path, err)
	}
	for _, entry := range m.Sprites {
		if _, err := ParseCategory(entry.Category); err != nil {
			return nil, fmt.Errorf("starsmith: manifest %s entry %s: %w", path, entry.File, err)
		}
	}
	return &m, nil
}
