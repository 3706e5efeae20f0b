package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/SimpsonGSD/path-tracer/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	sharedFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "scene",
			Value: "cornell",
			Usage: "scene to render (cornell, cornell-smoke, spheres, simple-light)",
		},
		cli.IntFlag{
			Name:  "width",
			Value: 800,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 600,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "max-depth",
			Value: 16,
			Usage: "maximum path depth",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "worker count, 0 leaves one core free",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 1,
			Usage: "sampling seed",
		},
	}

	app := cli.NewApp()
	app.Name = "path-tracer"
	app.Usage = "render scenes using progressive path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:        "frame",
					Usage:       "render single frame",
					Description: `Render a single frame and save it as a PNG or PPM image.`,
					Flags: append([]cli.Flag{
						cli.IntFlag{
							Name:  "spp",
							Value: 128,
							Usage: "samples per pixel",
						},
						cli.StringFlag{
							Name:  "out, o",
							Value: "frame.png",
							Usage: "image filename for the rendered frame",
						},
					}, sharedFlags...),
					Action: cmd.RenderFrame,
				},
				{
					Name:  "interactive",
					Usage: "render interactive view of the scene",
					Description: `Render the scene progressively into an OpenGL window.

Arrow keys and page up/down move the camera, O/P dim or brighten the sky,
B toggles emissive surfaces and escape quits. Moving the camera or changing
the lighting restarts the accumulation.`,
					Flags: append([]cli.Flag{
						cli.Float64Flag{
							Name:  "move-scale",
							Value: 1.0,
							Usage: "camera movement speed multiplier",
						},
					}, sharedFlags...),
					Action: cmd.RenderInteractive,
				},
			},
		},
	}

	app.Run(os.Args)
}
