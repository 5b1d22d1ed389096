package integrator

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// Color computes the radiance along ray by recursive shading: emitted light
// plus the material attenuation times the radiance along the scattered ray.
// A depth of zero or less returns black.
func Color(ray core.Ray, background core.Vec3, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, infinity)
	if !isHit {
		return background
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	incoming := Color(scatter.Scattered, background, world, depth-1, sampler)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

// RecursiveIntegrator evaluates Color depth-first with one sample per bounce
type RecursiveIntegrator struct{}

// NewRecursiveIntegrator creates a new recursive integrator
func NewRecursiveIntegrator() *RecursiveIntegrator {
	return &RecursiveIntegrator{}
}

// RayColor implements Integrator
func (ri *RecursiveIntegrator) RayColor(ray core.Ray, world geometry.Shape, background core.Vec3, maxDepth int, sampler core.Sampler) core.Vec3 {
	return Color(ray, background, world, maxDepth, sampler)
}
