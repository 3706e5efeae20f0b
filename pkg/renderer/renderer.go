package renderer

import (
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/log"
	"github.com/SimpsonGSD/path-tracer/pkg/integrator"
	"github.com/SimpsonGSD/path-tracer/pkg/jobs"
	"github.com/SimpsonGSD/path-tracer/pkg/scene"
)

var logger = log.New("renderer")

// Renderer drives progressive tile-based rendering of a scene. Each pass
// dispatches one job per tile to a fixed worker pool and waits on the
// batch's fence; every pass adds one sample per pixel to the accumulation.
type Renderer struct {
	options Options
	state   *SceneState
	fb      *Framebuffer
	pool    *jobs.Pool
	stats   *Stats

	tileWidth, tileHeight int
	tileRandoms           []*rand.Rand
}

// New creates a renderer for the given scene. Tile dimensions are rounded
// down to factors of the frame so the tiles partition it exactly.
func New(sc *scene.Scene, opts Options) *Renderer {
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = jobs.DefaultWorkerCount()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultOptions().MaxDepth
	}

	tileWidth := roundDownToClosestFactor(opts.TileWidth, opts.Width)
	tileHeight := roundDownToClosestFactor(opts.TileHeight, opts.Height)
	numTiles := (opts.Width / tileWidth) * (opts.Height / tileHeight)

	// One generator per tile keeps sampling deterministic for a given
	// seed regardless of worker scheduling
	tileRandoms := make([]*rand.Rand, numTiles)
	for i := range tileRandoms {
		tileRandoms[i] = rand.New(rand.NewSource(opts.Seed + int64(i)))
	}

	logger.Noticef("rendering %q at %dx%d, %d tiles of %dx%d, %d workers",
		sc.Name, opts.Width, opts.Height, numTiles, tileWidth, tileHeight, opts.NumWorkers)

	return &Renderer{
		options:     opts,
		state:       NewSceneState(sc),
		fb:          NewFramebuffer(opts.Width, opts.Height),
		pool:        jobs.NewPool(opts.NumWorkers),
		stats:       NewStats(),
		tileWidth:   tileWidth,
		tileHeight:  tileHeight,
		tileRandoms: tileRandoms,
	}
}

// RenderPass traces one sample per pixel (fewer in realtime mode) and
// blocks until every tile finished
func (r *Renderer) RenderPass(realtime bool) {
	sc := r.state.Scene()
	skyBrightness, disableEmissive := r.state.Snapshot()
	tracer := &integrator.PathTracer{
		World:           sc.World,
		Lights:          sc.Lights,
		SkyBrightness:   skyBrightness,
		DisableEmissive: disableEmissive,
		MaxDepth:        r.options.MaxDepth,
	}

	var batch []jobs.Job
	tile := 0
	for y := 0; y < r.options.Height; y += r.tileHeight {
		for x := 0; x < r.options.Width; x += r.tileWidth {
			batch = append(batch, &TileJob{
				StartX:      x,
				StartY:      y,
				EndX:        x + r.tileWidth,
				EndY:        y + r.tileHeight,
				Framebuffer: r.fb,
				Camera:      sc.Camera,
				Tracer:      tracer,
				Random:      r.tileRandoms[tile],
				Realtime:    realtime,
				Stats:       r.stats,
			})
			tile++
		}
	}

	r.pool.DispatchAll(batch).Wait(0)
	r.stats.AddPass()
}

// Render runs the configured number of offline passes
func (r *Renderer) Render() {
	for pass := 0; pass < r.options.SamplesPerPixel; pass++ {
		r.RenderPass(false)
		if (pass+1)%32 == 0 || pass+1 == r.options.SamplesPerPixel {
			logger.Infof("pass %d/%d, %.0f samples/sec",
				pass+1, r.options.SamplesPerPixel, r.stats.SamplesPerSecond())
		}
	}
}

// ClearIfDirty drops the accumulation when interactive controls changed the
// scene since the last pass. Must only be called between passes.
func (r *Renderer) ClearIfDirty() {
	if r.state.ConsumeDirty() {
		r.fb.Clear()
	}
}

// State returns the shared scene state for interactive controls
func (r *Renderer) State() *SceneState {
	return r.state
}

// Framebuffer returns the progressive accumulation buffer
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Stats returns the render counters
func (r *Renderer) Stats() *Stats {
	return r.stats
}

// Close joins the worker pool. The renderer must not be used afterwards.
func (r *Renderer) Close() {
	r.pool.Close()
}
