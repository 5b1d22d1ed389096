package material

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestLambertian_ScatterAboveSurface(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: normal,
	}
	ray := core.NewRayAtTime(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.4)

	cosineSum := 0.0
	const n = 5000
	for i := 0; i < n; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		// normal + unit vector never points below the tangent plane
		cosTheta := scatter.Scattered.Direction.Normalize().Dot(normal)
		if cosTheta < -1e-9 {
			t.Fatalf("Scattered direction %v points into the surface", scatter.Scattered.Direction)
		}
		cosineSum += cosTheta

		if scatter.Scattered.Time != ray.Time {
			t.Fatalf("Scattered ray should inherit time %f, got %f", ray.Time, scatter.Scattered.Time)
		}
		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}
	}

	// Cosine-weighted hemisphere sampling has E[cos θ] = 2/3
	mean := cosineSum / n
	if math.Abs(mean-2.0/3.0) > 0.02 {
		t.Errorf("Expected mean cosine near 2/3, got %f", mean)
	}
}

func TestLambertian_AttenuationFromTexture(t *testing.T) {
	checker := NewCheckerTextureFromColors(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	lambertian := NewTexturedLambertian(checker)
	sampler := core.NewSeededSampler(1)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"even cell", core.NewVec3(0.05, 0.05, 0.05), core.NewVec3(1, 0, 0)},
		{"odd cell", core.NewVec3(-0.05, 0.05, 0.05), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := HitRecord{Point: tt.point, Normal: core.NewVec3(0, 1, 0)}
			scatter, _ := lambertian.Scatter(ray, hit, sampler)
			if !scatter.Attenuation.Equals(tt.expected) {
				t.Errorf("Expected attenuation %v, got %v", tt.expected, scatter.Attenuation)
			}
		})
	}
}

func TestNonEmissiveMaterials_EmitBlack(t *testing.T) {
	materials := map[string]Material{
		"lambertian": NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
		"metal":      NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0.1),
		"dielectric": NewDielectric(1.5),
	}

	for name, mat := range materials {
		t.Run(name, func(t *testing.T) {
			emitted := mat.Emitted(0.3, 0.7, core.NewVec3(1, 2, 3))
			if !emitted.Equals(core.Vec3{}) {
				t.Errorf("Expected black emission, got %v", emitted)
			}
		})
	}
}
