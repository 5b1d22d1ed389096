package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// rectPadding thickens the flat axis of a rect's bounding box
const rectPadding = 0.0001

// XYRect is an axis-aligned rectangle in the plane z = K
type XYRect struct {
	X0, X1, Y0, Y1 float64
	K              float64
	Material       material.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

// Hit tests the ray against the rectangle, outward normal +Z
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	rect := axisRect{k: 2, a: 0, b: 1, kValue: r.K, a0: r.X0, a1: r.X1, b0: r.Y0, b1: r.Y1}
	return hitAxisRect(ray, tMin, tMax, rect, r.Material)
}

// BoundingBox returns the rect's box padded along Z
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-rectPadding),
		core.NewVec3(r.X1, r.Y1, r.K+rectPadding),
	), true
}

// XZRect is an axis-aligned rectangle in the plane y = K
type XZRect struct {
	X0, X1, Z0, Z1 float64
	K              float64
	Material       material.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests the ray against the rectangle, outward normal +Y
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	rect := axisRect{k: 1, a: 0, b: 2, kValue: r.K, a0: r.X0, a1: r.X1, b0: r.Z0, b1: r.Z1}
	return hitAxisRect(ray, tMin, tMax, rect, r.Material)
}

// BoundingBox returns the rect's box padded along Y
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-rectPadding, r.Z0),
		core.NewVec3(r.X1, r.K+rectPadding, r.Z1),
	), true
}

// YZRect is an axis-aligned rectangle in the plane x = K
type YZRect struct {
	Y0, Y1, Z0, Z1 float64
	K              float64
	Material       material.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests the ray against the rectangle, outward normal +X
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	rect := axisRect{k: 0, a: 1, b: 2, kValue: r.K, a0: r.Y0, a1: r.Y1, b0: r.Z0, b1: r.Z1}
	return hitAxisRect(ray, tMin, tMax, rect, r.Material)
}

// BoundingBox returns the rect's box padded along X
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-rectPadding, r.Y0, r.Z0),
		core.NewVec3(r.K+rectPadding, r.Y1, r.Z1),
	), true
}

// axisRect describes a rectangle lying in the plane axis k = kValue,
// spanning [a0,a1] on axis a and [b0,b1] on axis b
type axisRect struct {
	k, a, b int
	kValue  float64
	a0, a1  float64
	b0, b1  float64
}

func hitAxisRect(ray core.Ray, tMin, tMax float64, r axisRect, mat material.Material) (*material.HitRecord, bool) {
	// A ray parallel to the plane gives ±Inf or NaN here, both rejected below
	t := (r.kValue - ray.Origin.Axis(r.k)) / ray.Direction.Axis(r.k)
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	pa := ray.Origin.Axis(r.a) + t*ray.Direction.Axis(r.a)
	pb := ray.Origin.Axis(r.b) + t*ray.Direction.Axis(r.b)
	if pa < r.a0 || pa > r.a1 || pb < r.b0 || pb > r.b1 {
		return nil, false
	}

	var outwardNormal core.Vec3
	switch r.k {
	case 0:
		outwardNormal = core.NewVec3(1, 0, 0)
	case 1:
		outwardNormal = core.NewVec3(0, 1, 0)
	default:
		outwardNormal = core.NewVec3(0, 0, 1)
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (pa - r.a0) / (r.a1 - r.a0),
		V:        (pb - r.b0) / (r.b1 - r.b0),
		Material: mat,
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
