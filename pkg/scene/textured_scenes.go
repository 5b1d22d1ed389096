package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// DefaultEarthTexture is loaded by the earth scene when no path is given
const DefaultEarthTexture = "earthmap.jpg"

// NewTwoCheckeredSpheresScene creates two large spheres sharing one checker texture
func NewTwoCheckeredSpheresScene(opts Options) (*Scene, error) {
	checker := material.NewTexturedLambertian(
		material.NewCheckerTextureFromColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)),
	)

	objects := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return newScene("two-checkered-spheres", objects, outdoorCamera(), skyBackground, defaultSamplingConfig(), opts)
}

// NewPerlinSpheresScene creates a marble ground and a marble sphere
func NewPerlinSpheresScene(opts Options) (*Scene, error) {
	objects := perlinSpheres(samplerOrDefault(opts))
	return newScene("perlin-spheres", objects, outdoorCamera(), skyBackground, defaultSamplingConfig(), opts)
}

func perlinSpheres(sampler core.Sampler) *geometry.List {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))
	return geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
}

// NewEarthScene creates a globe textured from opts.TexturePath. A texture
// that fails to load renders in the missing-texture color.
func NewEarthScene(opts Options) (*Scene, error) {
	path := opts.TexturePath
	if path == "" {
		path = DefaultEarthTexture
	}

	texture, err := loaders.LoadImageTexture(path)
	if err != nil {
		logger.Warningf("earth: %v; rendering with the missing-texture color", err)
	}

	objects := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
	)

	return newScene("earth", objects, outdoorCamera(), skyBackground, defaultSamplingConfig(), opts)
}
