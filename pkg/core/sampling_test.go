package core

import (
	"math"
	"testing"
)

func TestSampleOnUnitSphere_UnitLength(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		dir := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(dir.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f for %v", dir.Length(), dir)
		}
	}
}

func TestSamplePointInUnitSphere_InsideSphere(t *testing.T) {
	sampler := NewSeededSampler(7)
	var mean Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Length() > 1.0+1e-12 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
		mean = mean.Add(p)
	}

	// Uniform over the ball means the centroid converges to the origin
	mean = mean.Multiply(1.0 / n)
	if mean.Length() > 0.02 {
		t.Errorf("Expected centroid near origin, got %v", mean)
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	tests := []struct {
		name     string
		sample   Vec2
		expected Vec3
	}{
		{"center", NewVec2(0.5, 0.5), NewVec3(0, 0, 0)},
		{"right edge", NewVec2(1.0, 0.5), NewVec3(1, 0, 0)},
		{"top edge", NewVec2(0.5, 1.0), NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := SamplePointInUnitDisk(tt.sample)
			if p.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, p)
			}
		})
	}

	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 || p.Length() > 1.0+1e-12 {
			t.Fatalf("Point %v not in unit disk", p)
		}
	}
}

func TestSampleInt_Range(t *testing.T) {
	sampler := NewSeededSampler(11)
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		n := SampleInt(sampler, 0, 3)
		if n < 0 || n > 2 {
			t.Fatalf("SampleInt out of range: %d", n)
		}
		counts[n]++
	}
	for axis, count := range counts {
		if count < 800 {
			t.Errorf("Axis %d under-sampled: %d of 3000", axis, count)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical streams for identical seeds")
		}
	}
}
