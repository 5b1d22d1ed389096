package integrator

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// IterativeIntegrator computes the same estimate as Color in a loop,
// carrying the product of attenuations along the path
type IterativeIntegrator struct{}

// NewIterativeIntegrator creates a new iterative integrator
func NewIterativeIntegrator() *IterativeIntegrator {
	return &IterativeIntegrator{}
}

// RayColor implements Integrator
func (ii *IterativeIntegrator) RayColor(ray core.Ray, world geometry.Shape, background core.Vec3, maxDepth int, sampler core.Sampler) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for depth := maxDepth; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, infinity)
		if !isHit {
			return radiance.Add(throughput.MultiplyVec(background))
		}

		emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)
		radiance = radiance.Add(throughput.MultiplyVec(emitted))

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return radiance
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce budget exhausted: no more light is gathered
	return radiance
}
