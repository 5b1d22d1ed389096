package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// outdoorCamera looks from (13,2,3) at the origin with motion blur over [0,1]
func outdoorCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	}
}

// NewRandomSpheresScene creates a checkered ground covered in small random
// spheres, with glass, diffuse and metal feature spheres in the middle.
// Small diffuse spheres bounce upward during the shutter interval.
func NewRandomSpheresScene(opts Options) (*Scene, error) {
	sampler := samplerOrDefault(opts)
	objects := geometry.NewList()

	checker := material.NewCheckerTextureFromColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	objects.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.SampleVec3(sampler, 0, 1).MultiplyVec(core.SampleVec3(sampler, 0, 1))
				center1 := center.Add(core.NewVec3(0, core.SampleRange(sampler, 0, 0.5), 0))
				objects.Add(geometry.NewMovingSphere(center, center1, 0.0, 1.0, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.SampleVec3(sampler, 0.5, 1)
				fuzz := core.SampleRange(sampler, 0, 0.5)
				objects.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	objects.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	objects.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	cameraConfig := outdoorCamera()
	cameraConfig.Aperture = 0.1

	return newScene("random-spheres", objects, cameraConfig, skyBackground, defaultSamplingConfig(), opts)
}
