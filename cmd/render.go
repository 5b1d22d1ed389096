package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/output"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderOptions holds the parsed arguments of the render command. Zero
// values for Width, SamplesPerPixel and MaxDepth keep the scene defaults.
type RenderOptions struct {
	Scene           string
	Width           int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
	Out             string
	Format          string
	TexturePath     string
	Integrator      string
}

// RenderResult describes a finished render.
type RenderResult struct {
	Path   string
	Format output.Format
	Stats  renderer.RenderStats
	Scene  *scene.Scene
}

// Render a still frame of a registered scene.
func RenderScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() > 1 {
		return errors.New("render accepts at most one scene name argument")
	}

	opts := RenderOptions{
		Scene:           ctx.String("scene"),
		Width:           ctx.Int("width"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		Seed:            ctx.Int64("seed"),
		Out:             ctx.String("out"),
		Format:          ctx.String("format"),
		TexturePath:     ctx.String("texture"),
		Integrator:      ctx.String("integrator"),
	}
	if ctx.NArg() == 1 {
		opts.Scene = ctx.Args().First()
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := Render(runCtx, opts)
	if err != nil {
		return err
	}

	logger.Noticef("render saved as %s", result.Path)
	displayRenderStats(result)
	return nil
}

// Render builds the scene described by opts, traces it and writes the frame.
func Render(ctx context.Context, opts RenderOptions) (*RenderResult, error) {
	in, err := integrator.New(opts.Integrator)
	if err != nil {
		return nil, err
	}

	sc, err := scene.New(opts.Scene, scene.Options{
		Camera:      renderer.CameraConfig{Width: opts.Width},
		Sampler:     core.NewSeededSampler(opts.Seed),
		TexturePath: opts.TexturePath,
	})
	if err != nil {
		return nil, err
	}

	path, format, err := resolveOutput(opts, sc.Name, time.Now())
	if err != nil {
		return nil, err
	}

	sampling := sc.SamplingConfig
	if opts.SamplesPerPixel > 0 {
		sampling.SamplesPerPixel = opts.SamplesPerPixel
	}
	if opts.MaxDepth > 0 {
		sampling.MaxDepth = opts.MaxDepth
	}

	rt := renderer.NewRaytracer(sc, sc.CameraConfig.Width, sc.CameraConfig.Height())
	rt.SetSamplingConfig(sampling)
	rt.SetIntegrator(in)
	rt.SetSampler(core.NewSeededSampler(opts.Seed + 1))

	logger.Infof("rendering scene %q with %d primitives", sc.Name, sc.GetPrimitiveCount())
	frame, stats, err := rt.Render(ctx)
	if err != nil {
		return nil, err
	}

	if err := output.SaveFile(path, frame, format); err != nil {
		return nil, err
	}

	return &RenderResult{Path: path, Format: format, Stats: stats, Scene: sc}, nil
}

// resolveOutput picks the destination path and encoding. Without an explicit
// path the frame goes to output/<scene>/render_<timestamp>.<format>.
func resolveOutput(opts RenderOptions, sceneName string, now time.Time) (string, output.Format, error) {
	if opts.Out == "" {
		format := output.PNG
		if opts.Format != "" {
			var err error
			if format, err = output.ParseFormat(opts.Format); err != nil {
				return "", "", err
			}
		}
		name := fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), format)
		return filepath.Join("output", sceneName, name), format, nil
	}

	if opts.Format != "" {
		format, err := output.ParseFormat(opts.Format)
		return opts.Out, format, err
	}
	format, err := output.FormatFromPath(opts.Out)
	return opts.Out, format, err
}

func renderStatsTable(result *RenderResult) string {
	stats := result.Stats
	bvh := result.Scene.BVHStats

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Resolution", "SPP", "Depth", "Primitives", "BVH nodes", "BVH depth", "Samples/s", "Render time"})
	table.Append([]string{
		result.Scene.Name,
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", bvh.Primitives),
		fmt.Sprintf("%d", bvh.TotalNodes),
		fmt.Sprintf("%d", bvh.MaxDepth),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.Duration.String(),
	})
	table.SetFooter([]string{"", "", "", "", "", "", "", "TOTAL SAMPLES", fmt.Sprintf("%d", stats.TotalSamples)})

	table.Render()
	return buf.String()
}

func displayRenderStats(result *RenderResult) {
	logger.Noticef("frame statistics\n%s", renderStatsTable(result))
}
