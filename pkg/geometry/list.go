package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// List is a flat collection of shapes tested by linear scan
type List struct {
	Objects []Shape
}

// NewList creates a list holding the given shapes
func NewList(objects ...Shape) *List {
	return &List{Objects: objects}
}

// Add appends a shape to the list
func (l *List) Add(object Shape) {
	l.Objects = append(l.Objects, object)
}

// Clear removes every shape from the list
func (l *List) Clear() {
	l.Objects = nil
}

// Len returns the number of shapes in the list
func (l *List) Len() int {
	return len(l.Objects)
}

// Hit returns the nearest hit across all shapes
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all child boxes. An empty list, or one
// containing a shape without a box, has no bounding box.
func (l *List) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var outputBox core.AABB
	for i, object := range l.Objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			outputBox = box
		} else {
			outputBox = core.SurroundingBox(outputBox, box)
		}
	}

	return outputBox, true
}
