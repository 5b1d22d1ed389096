package main

import (
	"fmt"
	"os"

	"github.com/df07/go-recursive-raytracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-recursive-raytracer"
	app.Usage = "render scenes with a recursive ray tracer"
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
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, notice, warning or error",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Build one of the registered scenes, trace it with the selected integrator and
write the averaged frame to disk.

Without --out the frame is written to output/<scene>/render_<timestamp>.<format>.`,
			ArgsUsage: "[scene]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "name of the scene to render",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width; height follows the camera aspect ratio (0 keeps the scene default)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (0 keeps the scene default)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounce depth (0 keeps the scene default)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for scene layout and sampling",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "format, f",
					Usage: "output format: ppm, png, bmp or tiff (defaults to the --out extension)",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "image file for textured scenes",
				},
				cli.StringFlag{
					Name:  "integrator",
					Value: "recursive",
					Usage: "light transport: recursive or iterative",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:  "serve",
			Usage: "serve renders over HTTP",
			Description: `
Start a web server exposing /api/render, /api/inspect, /api/scenes and
/api/scene-config. Renders take the same parameters as the render command.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
				cli.IntFlag{
					Name:  "max-renders",
					Value: 2,
					Usage: "maximum number of renders running at once",
				},
			},
			Action: cmd.Serve,
		},
	}

	return app
}
