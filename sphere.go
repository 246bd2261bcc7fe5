package starsmith

import "math"

// sphereNormal reconstructs the unit-sphere surface normal for a pixel at
// planar offset (dx, dy) from the body center. radius is clamped to a
// minimum of 1 so degenerate bodies cannot divide by zero.
func sphereNormal(dx, dy, radius float64) (nx, ny, nz float64) {
	if radius < 1 {
		radius = 1
	}
	nx = dx / radius
	ny = dy / radius
	nz = math.Sqrt(math.Max(0, 1-(nx*nx+ny*ny)))
	return nx, ny, nz
}

// sphereTexCoords converts a surface normal plus the frame's rotation
// angle into texture coordinates. texU has period 2: advancing frame by
// frames adds exactly 2, so a full rotation resamples identical points and
// the animation loops seamlessly. texV is the normal's y component in
// [-1, 1].
func sphereTexCoords(nx, ny, nz float64, frame, frames int) (texU, texV float64) {
	if frames < 1 {
		frames = 1
	}
	texU = math.Atan2(nx, nz)/math.Pi + 2*float64(frame)/float64(frames)
	texV = ny
	return texU, texV
}

// cylinderPoint maps texture coordinates onto the 3D noise lattice. texU
// walks a unit circle in the xz plane, so any two texU values that differ
// by the period 2 land on the same lattice point. This is what makes the
// rotation loop exact rather than approximate.
func cylinderPoint(texU, texV float64) (x, y, z float64) {
	a := texU * math.Pi
	return math.Cos(a), texV, math.Sin(a)
}
