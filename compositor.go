package starsmith

import "github.com/pixelcosm/starsmith/internal/parallel"

// frameFunc renders one frame slot of an atlas.
type frameFunc func(a *Atlas, frame int)

// compose allocates the atlas and sweeps the frame parameter, rendering
// each frame into its horizontal slot. With a pool, frames render
// concurrently. Every pixel is a pure function of (seed, coordinates,
// frame) and frame slots occupy disjoint memory, so the result is
// bit-identical regardless of execution order.
func compose(bodySize, frames int, fn frameFunc, pool *parallel.WorkerPool) *Atlas {
	a := NewAtlas(bodySize, frames)
	if pool == nil {
		for f := 0; f < a.Frames(); f++ {
			fn(a, f)
		}
		return a
	}

	tasks := make([]func(), a.Frames())
	for f := 0; f < a.Frames(); f++ {
		frame := f
		tasks[f] = func() { fn(a, frame) }
	}
	pool.ExecuteAll(tasks)
	return a
}
