package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

var (
	// ErrEmptyBVH is returned when building a BVH over no shapes
	ErrEmptyBVH = errors.New("geometry: cannot build BVH from zero shapes")

	// ErrNoBoundingBox is returned when a shape in a BVH has no bounding box
	ErrNoBoundingBox = errors.New("geometry: shape has no bounding box")
)

// BVHNode is an internal node of a Bounding Volume Hierarchy. Children are
// either further BVHNodes or the input shapes. A node over a single shape
// references it from both Left and Right.
type BVHNode struct {
	Left  Shape
	Right Shape
	Box   core.AABB // Union of both children's boxes
}

// NewBVH builds a BVH over shapes for the shutter interval [time0, time1].
// The shapes slice is reordered in place.
func NewBVH(shapes []Shape, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}
	return buildBVH(shapes, 0, len(shapes), time0, time1, sampler)
}

// NewBVHFromList builds a BVH over the list's shapes, reordering the list
func NewBVHFromList(list *List, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	return NewBVH(list.Objects, time0, time1, sampler)
}

// buildBVH builds the subtree over shapes[start:end]
func buildBVH(shapes []Shape, start, end int, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	node := &BVHNode{}
	axis := core.SampleInt(sampler, 0, 3)

	switch span := end - start; span {
	case 1:
		node.Left = shapes[start]
		node.Right = shapes[start]
	case 2:
		less, err := boxLess(shapes[start], shapes[start+1], axis, time0, time1)
		if err != nil {
			return nil, err
		}
		if less {
			node.Left, node.Right = shapes[start], shapes[start+1]
		} else {
			node.Left, node.Right = shapes[start+1], shapes[start]
		}
	default:
		if err := sortByBoxMin(shapes[start:end], axis, time0, time1); err != nil {
			return nil, err
		}

		mid := start + span/2
		left, err := buildBVH(shapes, start, mid, time0, time1, sampler)
		if err != nil {
			return nil, err
		}
		right, err := buildBVH(shapes, mid, end, time0, time1, sampler)
		if err != nil {
			return nil, err
		}
		node.Left, node.Right = left, right
	}

	boxLeft, okLeft := node.Left.BoundingBox(time0, time1)
	boxRight, okRight := node.Right.BoundingBox(time0, time1)
	if !okLeft || !okRight {
		return nil, fmt.Errorf("building BVH node: %w", ErrNoBoundingBox)
	}
	node.Box = core.SurroundingBox(boxLeft, boxRight)

	return node, nil
}

// boxLess orders two shapes by the minimum of their boxes on axis
func boxLess(a, b Shape, axis int, time0, time1 float64) (bool, error) {
	boxA, okA := a.BoundingBox(time0, time1)
	boxB, okB := b.BoundingBox(time0, time1)
	if !okA || !okB {
		return false, fmt.Errorf("comparing BVH shapes: %w", ErrNoBoundingBox)
	}
	return boxA.Min.Axis(axis) < boxB.Min.Axis(axis), nil
}

// byBoxMin sorts shapes by a precomputed box minimum
type byBoxMin struct {
	shapes []Shape
	keys   []float64
}

func (s byBoxMin) Len() int           { return len(s.shapes) }
func (s byBoxMin) Less(i, j int) bool { return s.keys[i] < s.keys[j] }
func (s byBoxMin) Swap(i, j int) {
	s.shapes[i], s.shapes[j] = s.shapes[j], s.shapes[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

// sortByBoxMin sorts shapes in place by their box minimum on axis
func sortByBoxMin(shapes []Shape, axis int, time0, time1 float64) error {
	keys := make([]float64, len(shapes))
	for i, shape := range shapes {
		box, ok := shape.BoundingBox(time0, time1)
		if !ok {
			return fmt.Errorf("sorting BVH shapes: %w", ErrNoBoundingBox)
		}
		keys[i] = box.Min.Axis(axis)
	}
	sort.Sort(byBoxMin{shapes: shapes, keys: keys})
	return nil
}

// Hit tests the left child first, then the right child with tMax narrowed
// to the left hit, so the right child only reports strictly closer hits.
// Coincident surfaces at exactly equal t resolve to the left subtree, which
// after construction reordering need not be the shape a List would report.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	closestSoFar := tMax
	if hitLeft {
		closestSoFar = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, closestSoFar); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the node's cached box
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// BVHStats describes the shape of a built BVH
type BVHStats struct {
	TotalNodes int // Internal BVHNodes
	Primitives int // Distinct leaf references
	MaxDepth   int // Depth of the deepest node, root at 0
}

// Stats walks the tree and collects node statistics
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Shape{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if inner, ok := child.(*BVHNode); ok {
			inner.collectStats(depth+1, stats)
		} else {
			stats.Primitives++
		}
	}
}
