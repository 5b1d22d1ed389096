package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestMovingSphere_Center(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0, 1, 0.5, nil)

	tests := []struct {
		time     float64
		expected core.Vec3
	}{
		{0, core.NewVec3(0, 0, 0)},
		{0.5, core.NewVec3(0, 1, 0)},
		{1, core.NewVec3(0, 2, 0)},
		{2, core.NewVec3(0, 4, 0)},
	}

	for _, tt := range tests {
		got := sphere.Center(tt.time)
		if !vecNear(got, tt.expected, 1e-12) {
			t.Errorf("Center(%f) = %v, expected %v", tt.time, got, tt.expected)
		}
	}
}

func TestMovingSphere_ZeroShutterUsesCenter0(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(1, 1, 1), core.NewVec3(5, 5, 5), 0.5, 0.5, 1, nil)

	if got := sphere.Center(0.5); !got.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Expected center0 for an empty interval, got %v", got)
	}
}

func TestMovingSphere_HitDependsOnRayTime(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, -2), core.NewVec3(0, 3, -2), 0, 1, 0.5, nil)

	tests := []struct {
		name      string
		time      float64
		expectHit bool
	}{
		{"At shutter open", 0, true},
		{"At shutter close", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRayAtTime(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), tt.time)
			hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t at time %f", tt.expectHit, tt.time)
			}
			if isHit && math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected t=1.5, got %f", hit.T)
			}
		})
	}
}

func TestMovingSphere_BoundingBox(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), 0, 1, 1, nil)

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Moving sphere should have a bounding box")
	}
	if !vecNear(box.Min, core.NewVec3(-1, -1, -1), 1e-12) || !vecNear(box.Max, core.NewVec3(3, 1, 1), 1e-12) {
		t.Errorf("Expected box spanning both end positions, got [%v, %v]", box.Min, box.Max)
	}

	// Narrower interval gives a narrower box
	half, _ := sphere.BoundingBox(0, 0.5)
	if math.Abs(half.Max.X-2) > 1e-12 {
		t.Errorf("Expected max X of 2 over [0, 0.5], got %f", half.Max.X)
	}
}
