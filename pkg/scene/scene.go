package scene

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/log"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	Objects        *geometry.List // Primitives, reordered by BVH construction
	World          geometry.Shape // BVH over Objects
	Background     core.Vec3      // Radiance seen by rays that escape the scene
	SamplingConfig renderer.SamplingConfig
	BVHStats       geometry.BVHStats
}

// Options customize a scene at construction
type Options struct {
	Camera      renderer.CameraConfig // Non-zero fields override the scene's camera
	Sampler     core.Sampler          // Random source for scene layout, nil for a fixed seed
	TexturePath string                // Image used by textured scenes
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetBackground implements renderer.Scene
func (s *Scene) GetBackground() core.Vec3 {
	return s.Background
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.Objects.Len()
}

// defaultSamplingConfig is used by scenes without special requirements
func defaultSamplingConfig() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// skyBackground is the constant light blue used by outdoor scenes
var skyBackground = core.NewVec3(0.70, 0.80, 1.00)

// newScene applies camera overrides, builds the BVH and the camera
func newScene(name string, objects *geometry.List, cameraConfig renderer.CameraConfig, background core.Vec3, sampling renderer.SamplingConfig, opts Options) (*Scene, error) {
	cameraConfig = renderer.MergeCameraConfig(cameraConfig, opts.Camera)

	bvh, err := geometry.NewBVHFromList(objects, cameraConfig.Time0, cameraConfig.Time1, samplerOrDefault(opts))
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", name, err)
	}

	stats := bvh.Stats()
	logger.Debugf("%s: %d primitives, %d BVH nodes, depth %d", name, stats.Primitives, stats.TotalNodes, stats.MaxDepth)

	return &Scene{
		Name:           name,
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Objects:        objects,
		World:          bvh,
		Background:     background,
		SamplingConfig: sampling,
		BVHStats:       stats,
	}, nil
}

// samplerOrDefault returns the caller's sampler or a fixed-seed one
func samplerOrDefault(opts Options) core.Sampler {
	if opts.Sampler != nil {
		return opts.Sampler
	}
	return core.NewSeededSampler(42)
}
