package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelcosm/starsmith/internal/termview"
)

var (
	previewWidth int
	previewDelay int
	previewDump  bool
	previewFrame int
)

var previewCmd = &cobra.Command{
	Use:   "preview <atlas.png>",
	Short: "Animate a sprite atlas in the terminal",
	Long: `Plays a rendered atlas as a terminal animation using quadrant block
characters. Frame boundaries are inferred from the atlas shape: frames
are square, so an atlas N times as wide as it is tall has N frames.

With --dump, a single frame is printed as ANSI escape sequences instead,
which suits shell pipelines and quick looks over SSH.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 64, "Preview width in terminal columns")
	previewCmd.Flags().IntVar(&previewDelay, "delay", 100, "Frame delay in milliseconds")
	previewCmd.Flags().BoolVar(&previewDump, "dump", false, "Print one frame as ANSI text and exit")
	previewCmd.Flags().IntVar(&previewFrame, "frame", 0, "Frame to print with --dump")
}

func runPreview(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0]) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}

	frames := sliceFrames(img)

	if previewDump {
		if previewFrame < 0 || previewFrame >= len(frames) {
			return fmt.Errorf("frame %d out of range [0, %d)", previewFrame, len(frames))
		}
		return termview.Convert(frames[previewFrame], previewWidth).WriteANSI(os.Stdout)
	}

	converted := make([]*termview.Frame, len(frames))
	for i, fr := range frames {
		converted[i] = termview.Convert(fr, previewWidth)
	}
	return termview.Play(converted, time.Duration(previewDelay)*time.Millisecond)
}

// sliceFrames splits an atlas strip into its square frames. Images that
// are not a whole number of squares play as a single frame.
func sliceFrames(img image.Image) []image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if h == 0 || w%h != 0 {
		return []image.Image{img}
	}

	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}
	si, ok := img.(subImager)
	if !ok {
		return []image.Image{img}
	}

	n := w / h
	frames := make([]image.Image, n)
	for i := 0; i < n; i++ {
		frames[i] = si.SubImage(image.Rect(b.Min.X+i*h, b.Min.Y, b.Min.X+(i+1)*h, b.Max.Y))
	}
	return frames
}
