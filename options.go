package starsmith

// GeneratorOption configures a Generator during creation.
//
// Example:
//
//	// Default: one render worker per CPU, no previews
//	g := starsmith.NewGenerator(cfg)
//
//	// Previews on, explicit worker count
//	g := starsmith.NewGenerator(cfg, starsmith.WithPreviews(true), starsmith.WithWorkers(4))
type GeneratorOption func(*generatorOptions)

// generatorOptions holds optional configuration for Generator creation.
type generatorOptions struct {
	workers  int
	previews bool
	runID    string
}

// defaultGeneratorOptions returns the default generator options.
func defaultGeneratorOptions() generatorOptions {
	return generatorOptions{
		workers: 0, // 0 means one worker per CPU
	}
}

// WithWorkers sets the number of frame-render workers. Zero or negative
// uses one worker per CPU.
func WithWorkers(n int) GeneratorOption {
	return func(o *generatorOptions) {
		o.workers = n
	}
}

// WithPreviews enables animated APNG previews alongside the atlases.
func WithPreviews(enabled bool) GeneratorOption {
	return func(o *generatorOptions) {
		o.previews = enabled
	}
}

// WithRunID pins the manifest run ID instead of generating a fresh UUID.
// Useful for reproducible manifests in tests and pipelines.
func WithRunID(id string) GeneratorOption {
	return func(o *generatorOptions) {
		o.runID = id
	}
}
