package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"

	"github.com/SimpsonGSD/path-tracer/pkg/renderer"
	"github.com/SimpsonGSD/path-tracer/pkg/scene"
)

func optionsFromContext(ctx *cli.Context) renderer.Options {
	opts := renderer.DefaultOptions()
	opts.Width = ctx.Int("width")
	opts.Height = ctx.Int("height")
	opts.SamplesPerPixel = ctx.Int("spp")
	opts.MaxDepth = ctx.Int("max-depth")
	opts.NumWorkers = ctx.Int("workers")
	opts.Seed = ctx.Int64("seed")
	return opts
}

func sceneFromContext(ctx *cli.Context, opts renderer.Options) (*scene.Scene, error) {
	name := ctx.String("scene")
	aspect := float64(opts.Width) / float64(opts.Height)
	return scene.Create(name, aspect)
}

func logHostInfo() {
	if counts, err := cpu.Counts(true); err == nil {
		logger.Infof("host has %d logical cores", counts)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		logger.Infof("host memory: %d MB total, %d MB available",
			vm.Total/(1<<20), vm.Available/(1<<20))
	}
}

// RenderFrame renders a still frame and writes it to disk.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)
	logHostInfo()

	opts := optionsFromContext(ctx)
	sc, err := sceneFromContext(ctx, opts)
	if err != nil {
		return err
	}

	r := renderer.New(sc, opts)
	defer r.Close()

	r.Render()

	out := ctx.String("out")
	if err := r.Framebuffer().WriteImage(out); err != nil {
		return fmt.Errorf("could not save frame: %v", err)
	}
	logger.Noticef("saved frame to %s", out)

	displayFrameStats(r.Stats(), opts)
	return nil
}

// RenderInteractive renders the scene into an OpenGL window with camera and
// lighting controls.
func RenderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)
	logHostInfo()

	opts := optionsFromContext(ctx)
	sc, err := sceneFromContext(ctx, opts)
	if err != nil {
		return err
	}

	ir, err := renderer.NewInteractive(renderer.New(sc, opts), ctx.Float64("move-scale"))
	if err != nil {
		return err
	}
	defer ir.Close()

	ir.Render()
	return nil
}

func displayFrameStats(stats *renderer.Stats, opts renderer.Options) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Passes", "Samples", "Samples/sec", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		fmt.Sprintf("%d", stats.Passes()),
		fmt.Sprintf("%d", stats.Samples()),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.Elapsed().Round(1e6).String(),
	})
	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
