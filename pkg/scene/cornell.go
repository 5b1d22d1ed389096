package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// NewSimpleLightScene lights the marble spheres with a rectangle and a
// glowing sphere against a black background
func NewSimpleLightScene(opts Options) (*Scene, error) {
	objects := perlinSpheres(samplerOrDefault(opts))

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	objects.Add(geometry.NewXYRect(3, 5, 1, 3, -2, light))
	objects.Add(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))

	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
		Time0:       0.0,
		Time1:       1.0,
	}

	sampling := renderer.SamplingConfig{
		SamplesPerPixel: 400, // Small light needs many samples
		MaxDepth:        50,
	}

	return newScene("simple-light", objects, cameraConfig, core.Vec3{}, sampling, opts)
}

// NewCornellScene creates the classic Cornell box with two boxes inside
func NewCornellScene(opts Options) (*Scene, error) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	objects := geometry.NewList(
		geometry.NewYZRect(0, 555, 0, 555, 555, green), // Left wall
		geometry.NewYZRect(0, 555, 0, 555, 0, red),     // Right wall
		geometry.NewXZRect(213, 343, 227, 332, 554, light),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),   // Floor
		geometry.NewXZRect(0, 555, 0, 555, 555, white), // Ceiling
		geometry.NewXYRect(0, 555, 0, 555, 555, white), // Back wall
		geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white),
		geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white),
	)

	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
		Time0:       0.0,
		Time1:       1.0,
	}

	sampling := renderer.SamplingConfig{
		SamplesPerPixel: 200,
		MaxDepth:        50,
	}

	return newScene("cornell-box", objects, cameraConfig, core.Vec3{}, sampling, opts)
}
