package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestRects_Hit(t *testing.T) {
	tests := []struct {
		name           string
		shape          Shape
		ray            core.Ray
		expectHit      bool
		expectedT      float64
		expectedU      float64
		expectedV      float64
		expectedNormal core.Vec3
		expectedFront  bool
	}{
		{
			name:           "XY rect head on",
			shape:          NewXYRect(0, 2, 0, 4, -1, nil),
			ray:            core.NewRay(core.NewVec3(0.5, 1, 1), core.NewVec3(0, 0, -1)),
			expectHit:      true,
			expectedT:      2,
			expectedU:      0.25,
			expectedV:      0.25,
			expectedNormal: core.NewVec3(0, 0, 1),
			expectedFront:  true,
		},
		{
			name:           "XY rect from behind",
			shape:          NewXYRect(0, 2, 0, 4, -1, nil),
			ray:            core.NewRay(core.NewVec3(1, 2, -3), core.NewVec3(0, 0, 1)),
			expectHit:      true,
			expectedT:      2,
			expectedU:      0.5,
			expectedV:      0.5,
			expectedNormal: core.NewVec3(0, 0, -1),
			expectedFront:  false,
		},
		{
			name:      "XY rect outside extent",
			shape:     NewXYRect(0, 2, 0, 4, -1, nil),
			ray:       core.NewRay(core.NewVec3(3, 1, 1), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
		{
			name:           "XZ rect from above",
			shape:          NewXZRect(-1, 1, -1, 1, 0, nil),
			ray:            core.NewRay(core.NewVec3(0.5, 5, -0.5), core.NewVec3(0, -1, 0)),
			expectHit:      true,
			expectedT:      5,
			expectedU:      0.75,
			expectedV:      0.25,
			expectedNormal: core.NewVec3(0, 1, 0),
			expectedFront:  true,
		},
		{
			name:           "YZ rect from the left",
			shape:          NewYZRect(0, 1, 0, 1, 2, nil),
			ray:            core.NewRay(core.NewVec3(0, 0.5, 0.5), core.NewVec3(1, 0, 0)),
			expectHit:      true,
			expectedT:      2,
			expectedU:      0.5,
			expectedV:      0.5,
			expectedNormal: core.NewVec3(-1, 0, 0),
			expectedFront:  false,
		},
		{
			name:           "Edge is inclusive",
			shape:          NewYZRect(0, 1, 0, 1, 2, nil),
			ray:            core.NewRay(core.NewVec3(3, 1, 0), core.NewVec3(-1, 0, 0)),
			expectHit:      true,
			expectedT:      1,
			expectedU:      1,
			expectedV:      0,
			expectedNormal: core.NewVec3(1, 0, 0),
			expectedFront:  true,
		},
		{
			name:      "Parallel to plane",
			shape:     NewXZRect(-1, 1, -1, 1, 0, nil),
			ray:       core.NewRay(core.NewVec3(-5, 1, 0), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "Parallel inside plane",
			shape:     NewXZRect(-1, 1, -1, 1, 0, nil),
			ray:       core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "Behind the ray",
			shape:     NewXYRect(0, 2, 0, 4, -1, nil),
			ray:       core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.shape.Hit(tt.ray, 0.001, math.Inf(1))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if math.Abs(hit.U-tt.expectedU) > 1e-9 || math.Abs(hit.V-tt.expectedV) > 1e-9 {
				t.Errorf("Expected uv (%f,%f), got (%f,%f)", tt.expectedU, tt.expectedV, hit.U, hit.V)
			}
			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
		})
	}
}

func TestRects_BoundingBoxHasVolume(t *testing.T) {
	shapes := map[string]Shape{
		"XY": NewXYRect(0, 1, 0, 1, 3, nil),
		"XZ": NewXZRect(0, 1, 0, 1, 3, nil),
		"YZ": NewYZRect(0, 1, 0, 1, 3, nil),
	}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			box, ok := shape.BoundingBox(0, 1)
			if !ok {
				t.Fatal("Rect should have a bounding box")
			}
			size := box.Max.Subtract(box.Min)
			if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
				t.Errorf("Expected positive volume, got size %v", size)
			}

			// Padded box still contains the plane
			for axis := 0; axis < 3; axis++ {
				if box.Min.Axis(axis) > 3 || box.Max.Axis(axis) < 0 {
					t.Errorf("Box %v does not enclose the rect on axis %d", box, axis)
				}
			}
		})
	}
}

func TestFlipFace(t *testing.T) {
	rect := NewXYRect(0, 1, 0, 1, 0, nil)
	flipped := NewFlipFace(rect)
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 2), core.NewVec3(0, 0, -1))

	hit, ok := rect.Hit(ray, 0.001, math.Inf(1))
	flippedHit, flippedOK := flipped.Hit(ray, 0.001, math.Inf(1))
	if !ok || !flippedOK {
		t.Fatal("Both shapes should be hit")
	}
	if flippedHit.FrontFace == hit.FrontFace {
		t.Errorf("Expected FrontFace to flip, both are %t", hit.FrontFace)
	}
	if !flippedHit.Normal.Equals(hit.Normal) || flippedHit.T != hit.T {
		t.Errorf("Flipping should keep normal and t, got %v at %f", flippedHit.Normal, flippedHit.T)
	}

	if _, ok := flipped.Hit(core.NewRay(core.NewVec3(5, 5, 2), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1)); ok {
		t.Error("Expected miss outside the rect")
	}

	box, _ := rect.BoundingBox(0, 1)
	flippedBox, ok := flipped.BoundingBox(0, 1)
	if !ok || flippedBox != box {
		t.Errorf("Expected the wrapped box %v, got %v", box, flippedBox)
	}
}
