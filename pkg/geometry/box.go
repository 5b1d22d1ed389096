package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Box is an axis-aligned box made up of 6 rects
type Box struct {
	Min, Max core.Vec3
	Material material.Material
	sides    *List
}

// NewBox creates a box spanning the corners p0 and p1 (p0 ≤ p1 component-wise).
// Rects face +axis, so the min-side faces are flipped to point outward.
func NewBox(p0, p1 core.Vec3, material material.Material) *Box {
	sides := NewList(
		// Front and back (Z)
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material),
		NewFlipFace(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material)),
		// Top and bottom (Y)
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material),
		NewFlipFace(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material)),
		// Right and left (X)
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material),
		NewFlipFace(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material)),
	)

	return &Box{
		Min:      p0,
		Max:      p1,
		Material: material,
		sides:    sides,
	}
}

// NewBoxFromCenter creates a box from its center and half-extents
func NewBoxFromCenter(center, halfSize core.Vec3, material material.Material) *Box {
	return NewBox(center.Subtract(halfSize), center.Add(halfSize), material)
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
