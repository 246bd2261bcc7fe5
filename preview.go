package starsmith

import (
	"fmt"
	"image"

	"github.com/setanarut/apng"
	"golang.org/x/image/draw"
)

// WritePreview writes an animated APNG of the atlas frame sweep, upscaled
// by an integer factor with nearest-neighbor sampling so the chunky pixels
// stay crisp. delayCS is the per-frame delay in centiseconds.
func WritePreview(a *Atlas, path string, scale, delayCS int) error {
	if scale < 1 {
		scale = 1
	}
	if delayCS < 1 {
		delayCS = 6
	}

	frames := make([]image.Image, a.Frames())
	for f := 0; f < a.Frames(); f++ {
		frames[f] = upscale(a.Frame(f), scale)
	}

	if err := apng.Save(path, frames, uint16(delayCS)); err != nil {
		return fmt.Errorf("starsmith: write preview %s: %w", path, err)
	}
	return nil
}

// upscale resizes by an integer factor with nearest-neighbor sampling.
func upscale(src *image.NRGBA, scale int) image.Image {
	if scale == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
