package starsmith

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Atlas is the pixel buffer one body renders into: frameCount equal-width
// frames concatenated horizontally, so width = bodySize * frameCount and
// height = bodySize. Pixels are straight-alpha RGBA, 4 bytes each.
//
// Frame slots occupy disjoint byte ranges, so distinct frames may be
// written from different goroutines without synchronization.
type Atlas struct {
	bodySize int
	frames   int
	data     []uint8
}

// NewAtlas creates a transparent atlas for a body of the given size and
// frame count. bodySize and frames must be >= 1.
func NewAtlas(bodySize, frames int) *Atlas {
	if bodySize < 1 {
		bodySize = 1
	}
	if frames < 1 {
		frames = 1
	}
	return &Atlas{
		bodySize: bodySize,
		frames:   frames,
		data:     make([]uint8, bodySize*frames*bodySize*4),
	}
}

// BodySize returns the edge length of one frame slot.
func (a *Atlas) BodySize() int { return a.bodySize }

// Frames returns the number of frame slots.
func (a *Atlas) Frames() int { return a.frames }

// Width returns the full atlas width (bodySize * frames).
func (a *Atlas) Width() int { return a.bodySize * a.frames }

// Height returns the atlas height (bodySize).
func (a *Atlas) Height() int { return a.bodySize }

// Data returns the raw pixel data (straight-alpha RGBA order).
func (a *Atlas) Data() []uint8 { return a.data }

// SetPixel sets the color of a single pixel in absolute atlas coordinates.
func (a *Atlas) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= a.Width() || y < 0 || y >= a.bodySize {
		return
	}
	i := (y*a.Width() + x) * 4
	a.data[i+0] = uint8(clamp255(c.R * 255))
	a.data[i+1] = uint8(clamp255(c.G * 255))
	a.data[i+2] = uint8(clamp255(c.B * 255))
	a.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel in absolute atlas
// coordinates. Out-of-bounds reads return Transparent.
func (a *Atlas) GetPixel(x, y int) RGBA {
	if x < 0 || x >= a.Width() || y < 0 || y >= a.bodySize {
		return Transparent
	}
	i := (y*a.Width() + x) * 4
	return RGBA{
		R: float64(a.data[i+0]) / 255,
		G: float64(a.data[i+1]) / 255,
		B: float64(a.data[i+2]) / 255,
		A: float64(a.data[i+3]) / 255,
	}
}

// GetFramePixel returns the color at frame-relative coordinates (x, y)
// inside frame slot f.
func (a *Atlas) GetFramePixel(f, x, y int) RGBA {
	if f < 0 || f >= a.frames || x < 0 || x >= a.bodySize {
		return Transparent
	}
	return a.GetPixel(f*a.bodySize+x, y)
}

// FillBlock fills the square block of the given size at frame-relative
// coordinates (x, y) inside frame slot f. The block is clipped to the frame
// slot so edge blocks never bleed into the neighboring frame.
func (a *Atlas) FillBlock(f, x, y, size int, c RGBA) {
	if f < 0 || f >= a.frames {
		return
	}
	x1 := x + size
	y1 := y + size
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x1 > a.bodySize {
		x1 = a.bodySize
	}
	if y1 > a.bodySize {
		y1 = a.bodySize
	}
	base := f * a.bodySize
	for by := y; by < y1; by++ {
		for bx := x; bx < x1; bx++ {
			a.SetPixel(base+bx, by, c)
		}
	}
}

// Clear fills the entire atlas with a color.
func (a *Atlas) Clear(c RGBA) {
	r, g, b, al := c.NRGBA8()
	for i := 0; i < len(a.data); i += 4 {
		a.data[i+0] = r
		a.data[i+1] = g
		a.data[i+2] = b
		a.data[i+3] = al
	}
}

// Frame extracts a copy of one frame slot as a standalone image.
func (a *Atlas) Frame(f int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, a.bodySize, a.bodySize))
	if f < 0 || f >= a.frames {
		return img
	}
	stride := a.Width() * 4
	rowLen := a.bodySize * 4
	for y := 0; y < a.bodySize; y++ {
		src := y*stride + f*rowLen
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], a.data[src:src+rowLen])
	}
	return img
}

// ToImage converts the full atlas to an image.NRGBA.
func (a *Atlas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, a.Width(), a.bodySize))
	copy(img.Pix, a.data)
	return img
}

// SavePNG writes the atlas to a PNG file.
func (a *Atlas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, a.ToImage())
}

// At implements the image.Image interface.
func (a *Atlas) At(x, y int) color.Color {
	return a.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (a *Atlas) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.Width(), a.bodySize)
}

// ColorModel implements the image.Image interface.
func (a *Atlas) ColorModel() color.Model {
	return color.NRGBAModel
}
