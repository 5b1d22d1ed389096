package material

import (
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
		{"Clamp large negative", -10.0, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewSeededSampler(42)

	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	// No stochastic perturbation: exact mirror direction
	expected := core.NewVec3(1, 1, 0)
	if !scatter.Scattered.Direction.Equals(expected) {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, scatter.Scattered.Direction)
	}

	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzyReflection(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	metal := NewMetal(albedo, 0.5)
	sampler := core.NewSeededSampler(42)

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	mirror := core.NewVec3(0, 0, 1)
	distinct := make(map[core.Vec3]bool)
	for i := 0; i < 50; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatal("Head-on fuzz 0.5 reflection can never point into the surface")
		}

		// Perturbation is bounded by the fuzz radius around the unit mirror direction
		offset := scatter.Scattered.Direction.Subtract(mirror).Length()
		if offset > 0.5+1e-9 {
			t.Errorf("Perturbation %f exceeds fuzz radius", offset)
		}
		distinct[scatter.Scattered.Direction] = true
	}

	if len(distinct) < 2 {
		t.Error("Expected fuzzy reflection to vary between samples")
	}
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	// Grazing incidence with full fuzz sends many samples into the surface
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	sampler := core.NewSeededSampler(5)

	rayIn := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}

	absorbed := 0
	for i := 0; i < 500; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if didScatter && scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scatter reported for direction %v below the surface", scatter.Scattered.Direction)
		}
		if !didScatter {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("Expected some grazing fuzzy reflections to be absorbed")
	}
}
