package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// FlipFace reverses the outward side of a shape. Hits keep their normal,
// which already opposes the ray, and report the opposite FrontFace.
type FlipFace struct {
	Shape Shape
}

// NewFlipFace wraps shape so its outward normal points the other way
func NewFlipFace(shape Shape) *FlipFace {
	return &FlipFace{Shape: shape}
}

// Hit intersects the wrapped shape and flips the face flag
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, isHit := f.Shape.Hit(ray, tMin, tMax)
	if !isHit {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox returns the wrapped shape's box
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Shape.BoundingBox(time0, time1)
}
