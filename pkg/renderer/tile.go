package renderer

import (
	"math"
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/integrator"
	"github.com/SimpsonGSD/path-tracer/pkg/scene"
)

// In realtime mode each pixel is only sampled with this probability per
// pass, trading noise for responsiveness.
const realtimePixelSkipChance = 0.8

// TileJob renders one sample per pixel over a rectangular region of the
// framebuffer. Tiles are disjoint, so jobs write to the framebuffer without
// locking. The camera and tracer must not be mutated while the job runs.
type TileJob struct {
	StartX, StartY int
	EndX, EndY     int // exclusive

	Framebuffer *Framebuffer
	Camera      *scene.Camera
	Tracer      *integrator.PathTracer
	Random      *rand.Rand
	Realtime    bool
	Stats       *Stats
}

// Run traces the tile's pixels bottom-to-top and blends each sample into
// the progressive accumulation
func (t *TileJob) Run() {
	width := float64(t.Framebuffer.Width)
	height := float64(t.Framebuffer.Height)
	samples := 0

	for y := t.EndY - 1; y >= t.StartY; y-- {
		for x := t.StartX; x < t.EndX; x++ {
			if t.Realtime && t.Random.Float64() < realtimePixelSkipChance {
				continue
			}

			u := (float64(x) + t.Random.Float64()) / width
			v := (float64(y) + t.Random.Float64()) / height
			ray := t.Camera.GetRay(u, v, t.Random)
			sample := t.Tracer.RayColor(ray, 0, t.Random)

			// A degenerate path can produce a non-finite sample,
			// which would poison the accumulation forever
			if !isFinite(sample.X) || !isFinite(sample.Y) || !isFinite(sample.Z) {
				continue
			}

			t.Framebuffer.Accumulate(x, y, sample)
			samples++
		}
	}

	if t.Stats != nil {
		t.Stats.AddSamples(samples)
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
