// Command starsmith renders sprite atlases of procedural celestial bodies.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixelcosm/starsmith"
)

var (
	// Global flags
	configPath string
	outputDir  string
	seed       int64
	workers    int
	verbose    bool
)

// rootCmd is the base command; the subcommands do the actual work.
var rootCmd = &cobra.Command{
	Use:   "starsmith",
	Short: "Generate animated pixel-art sprites of stars, planets, moons and asteroids",
	Long: `starsmith renders sprite atlases of procedurally generated celestial
bodies. Every sprite derives from a master seed, so a run can be
reproduced exactly from its manifest.

Atlases are horizontal PNG strips, one square frame per rotation step.
Planets, moons and asteroids loop seamlessly; stars boil forward without
looping.`,
	Version:       starsmith.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		starsmith.SetLogger(slog.New(h))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "out", "o", "", "Output directory (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Master seed (overrides config; 0 derives from the clock)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Render workers (0 means one per CPU)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadConfig builds the effective configuration from the config file, if
// any, with command-line overrides applied on top.
func loadConfig() (starsmith.Config, error) {
	cfg := starsmith.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = starsmith.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
