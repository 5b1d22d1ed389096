package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/log"
)

// ErrInvalidConfig is returned when a render is configured with unusable values
var ErrInvalidConfig = errors.New("renderer: invalid configuration")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate rejects non-positive sample counts and depths
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetBackground() core.Vec3
}

// Frame holds averaged linear radiance per pixel. Row 0 is the top of the image.
type Frame struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

// At returns the pixel at column x, row y (row 0 at the top)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the pixel at column x, row y
func (f *Frame) Set(x, y int, color core.Vec3) {
	f.Pixels[y*f.Width+x] = color
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	sampler    core.Sampler
	logger     log.Logger
}

// NewRaytracer creates a new single-threaded raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     DefaultSamplingConfig(),
		integrator: integrator.NewRecursiveIntegrator(),
		sampler:    core.NewSeededSampler(42), // Deterministic for testing
		logger:     log.New("renderer"),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(in integrator.Integrator) {
	rt.integrator = in
}

// SetSampler replaces the random source used for pixel jitter and shading
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// Render traces SamplesPerPixel rays through every pixel and averages them.
// Scanlines run from the bottom of the image to the top.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	if rt.width <= 0 || rt.height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, rt.width, rt.height)
	}
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	background := rt.scene.GetBackground()

	frame := NewFrame(rt.width, rt.height)
	stats := RenderStats{
		Width:           rt.width,
		Height:          rt.height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
	}

	rt.logger.Infof("rendering %dx%d at %d spp, depth %d", rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth)
	start := time.Now()

	sDenominator := float64(max(1, rt.width-1))
	tDenominator := float64(max(1, rt.height-1))

	for j := rt.height - 1; j >= 0; j-- {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		rt.logger.Debugf("scanlines remaining: %d", j+1)

		for i := 0; i < rt.width; i++ {
			var pixel PixelStats
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				s := (float64(i) + rt.sampler.Get1D()) / sDenominator
				t := (float64(j) + rt.sampler.Get1D()) / tDenominator

				ray := camera.GetRay(s, t, rt.sampler)
				pixel.AddSample(rt.integrator.RayColor(ray, world, background, rt.config.MaxDepth, rt.sampler))
			}

			frame.Set(i, rt.height-1-j, pixel.GetColor())
			stats.TotalSamples += pixel.SampleCount
		}
	}

	stats.TotalPixels = rt.width * rt.height
	stats.Duration = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(frame)

	rt.logger.Infof("finished in %s (%d samples)", stats.Duration, stats.TotalSamples)
	return frame, stats, nil
}
