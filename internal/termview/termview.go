// Package termview renders sprite frames as colored terminal cells.
//
// Each cell packs a 2x2 block of image pixels into one Unicode quadrant
// character with separate foreground and background colors, doubling the
// effective resolution over plain background-color painting.
package termview

import (
	"image"
	"image/color"
)

// RGB is an 8-bit color triple for one cell layer.
type RGB struct {
	R, G, B uint8
}

// Cell is one terminal cell of a converted frame.
type Cell struct {
	Ch rune
	Fg RGB
	Bg RGB
}

// Frame is a sprite frame converted to a cell grid, row-major.
type Frame struct {
	Cells  []Cell
	Width  int
	Height int
}

// quadrants maps 4-bit pixel patterns to block characters.
// Bit order: 0=upper-left, 1=upper-right, 2=lower-left, 3=lower-right.
var quadrants = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// Convert resamples img into a cell grid cols columns wide. The row count
// follows from the image aspect ratio, halved to compensate for terminal
// cell proportions; each cell then covers a 2x2 block of the sampling
// grid, so the subpixels come out square.
func Convert(img image.Image, cols int) *Frame {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	if srcW == 0 || srcH == 0 || cols < 1 {
		return &Frame{}
	}

	rows := int(float64(cols) * float64(srcH) / float64(srcW) * 0.5)
	if rows < 1 {
		rows = 1
	}

	f := &Frame{
		Cells:  make([]Cell, cols*rows),
		Width:  cols,
		Height: rows,
	}

	gridW := cols * 2
	gridH := rows * 2

	offsets := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var block [4]RGB
			for i, off := range offsets {
				sx := bounds.Min.X + ((x*2+off[0])*srcW+srcW/2)/gridW
				sy := bounds.Min.Y + ((y*2+off[1])*srcH+srcH/2)/gridH
				if sx >= bounds.Max.X {
					sx = bounds.Max.X - 1
				}
				if sy >= bounds.Max.Y {
					sy = bounds.Max.Y - 1
				}
				block[i] = toRGB(img.At(sx, sy))
			}

			ch, fg, bg := bestQuadrant(block)
			f.Cells[y*cols+x] = Cell{Ch: ch, Fg: fg, Bg: bg}
		}
	}

	return f
}

// bestQuadrant picks the quadrant character and fg/bg pair that minimize
// squared color error over the four pixels of a block. All 16 patterns
// are tried; ties go to the lowest pattern.
func bestQuadrant(block [4]RGB) (rune, RGB, RGB) {
	bestErr := int(^uint(0) >> 1)
	best := 0
	var bestFg, bestBg RGB

	for pattern := 0; pattern < 16; pattern++ {
		fg, bg, e := patternColors(block, pattern)
		if e < bestErr {
			bestErr = e
			best = pattern
			bestFg = fg
			bestBg = bg
		}
	}

	return quadrants[best], bestFg, bestBg
}

// patternColors averages the block pixels into a foreground and a
// background group per the pattern bits and reports the total squared
// error of representing the block that way.
func patternColors(block [4]RGB, pattern int) (fg, bg RGB, totalErr int) {
	var fr, fgr, fb, fn int
	var br, bgr, bb, bn int

	for i := 0; i < 4; i++ {
		if pattern&(1<<i) != 0 {
			fr += int(block[i].R)
			fgr += int(block[i].G)
			fb += int(block[i].B)
			fn++
		} else {
			br += int(block[i].R)
			bgr += int(block[i].G)
			bb += int(block[i].B)
			bn++
		}
	}

	if fn > 0 {
		fg = RGB{uint8(fr / fn), uint8(fgr / fn), uint8(fb / fn)}
	}
	if bn > 0 {
		bg = RGB{uint8(br / bn), uint8(bgr / bn), uint8(bb / bn)}
	}

	for i := 0; i < 4; i++ {
		target := bg
		if pattern&(1<<i) != 0 {
			target = fg
		}
		totalErr += distSq(block[i], target)
	}

	return fg, bg, totalErr
}

// distSq is the squared Euclidean distance between two colors.
func distSq(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// toRGB composites a pixel over black. RGBA returns alpha-premultiplied
// components, so the high byte already carries color times alpha, which
// is the right look for sprites drawn on a space backdrop.
func toRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}
