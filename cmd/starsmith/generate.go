package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixelcosm/starsmith"
)

var (
	// Category flags, shared with the watch command
	genStars       bool
	genPlanets     bool
	genMoons       bool
	genAsteroids   bool
	genBackgrounds bool
	genAll         bool
	genPreviews    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the selected sprite categories",
	Long: `Renders sprite atlases for the selected categories into the output
directory, along with a manifest listing every sprite and its seed.

At least one category flag (or --all) is required.

Example:
  starsmith generate --all --seed 42 --out sprites
  starsmith generate --planets --moons --previews`,
	RunE: runGenerate,
}

func init() {
	addSelectionFlags(generateCmd)
}

// addSelectionFlags registers the category and preview flags on a
// command. generate and watch take the same set.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&genStars, "stars", false, "Generate star sprites")
	cmd.Flags().BoolVar(&genPlanets, "planets", false, "Generate planet sprites")
	cmd.Flags().BoolVar(&genMoons, "moons", false, "Generate moon sprites")
	cmd.Flags().BoolVar(&genAsteroids, "asteroids", false, "Generate asteroid sprites")
	cmd.Flags().BoolVar(&genBackgrounds, "backgrounds", false, "Generate nebula backdrops")
	cmd.Flags().BoolVar(&genAll, "all", false, "Generate every category")
	cmd.Flags().BoolVar(&genPreviews, "previews", false, "Write animated APNG previews")
}

// selection maps the category flags onto a Selection.
func selection() starsmith.Selection {
	if genAll {
		return starsmith.AllCategories()
	}
	return starsmith.Selection{
		Stars:       genStars,
		Planets:     genPlanets,
		Moons:       genMoons,
		Asteroids:   genAsteroids,
		Backgrounds: genBackgrounds,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	sel := selection()
	if sel.None() {
		return fmt.Errorf("%w: pass --all or one of --stars, --planets, --moons, --asteroids, --backgrounds",
			starsmith.ErrNoCategories)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gen := starsmith.NewGenerator(cfg,
		starsmith.WithWorkers(workers),
		starsmith.WithPreviews(genPreviews),
	)
	defer gen.Close()

	_, err = gen.Run(sel)
	return err
}
