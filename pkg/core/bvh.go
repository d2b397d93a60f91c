package core

import "sort"

// BVHNode is a node of a Bounding Volume Hierarchy: either an interior node
// with two children, or a leaf holding a small run of shapes tested linearly.
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // non-nil only for leaves
}

// BVH accelerates ray/world intersection by recursively partitioning shapes
// into an axis-aligned hierarchy.
type BVH struct {
	Root *BVHNode
}

// leafThreshold is the shape count at or below which a node stops splitting
// and becomes a leaf tested by linear search.
const leafThreshold = 20

// NewBVH builds a BVH over shapes. Every Shape returns a bounding box (there
// is no "infinite shape" escape hatch in this model), so the build has no
// failure case and never panics; an empty list yields a BVH with a nil root.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{Root: nil}
	}

	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy)}
}

func buildBVH(shapes []Shape) *BVHNode {
	bounds := shapes[0].BoundingBox()
	for i := 1; i < len(shapes); i++ {
		bounds = bounds.Union(shapes[i].BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: bounds, Shapes: shapes}
	}

	axis, splitPos := findSplit(shapes, bounds)
	if axis == -1 {
		return &BVHNode{BoundingBox: bounds, Shapes: shapes}
	}

	left, right := partition(shapes, axis, splitPos)
	if len(left) == 0 || len(right) == 0 {
		return &BVHNode{BoundingBox: bounds, Shapes: shapes}
	}

	return &BVHNode{
		BoundingBox: bounds,
		Left:        buildBVH(left),
		Right:       buildBVH(right),
	}
}

// findSplit picks the longest axis of the node's bounding box and returns the
// median of the shapes' bounding-box centers along it, so partition sends
// about half the shapes to each side (a plain median split, not a full SAH
// build).
func findSplit(shapes []Shape, bounds AABB) (axis int, pos float64) {
	axis = bounds.LongestAxis()

	var lo, hi float64
	switch axis {
	case 0:
		lo, hi = bounds.Min.X, bounds.Max.X
	case 1:
		lo, hi = bounds.Min.Y, bounds.Max.Y
	case 2:
		lo, hi = bounds.Min.Z, bounds.Max.Z
	}

	if hi <= lo {
		return -1, 0
	}

	centers := make([]float64, len(shapes))
	for i, shape := range shapes {
		center := shape.BoundingBox().Center()
		centers[i] = [3]float64{center.X, center.Y, center.Z}[axis]
	}
	sort.Float64s(centers)
	return axis, centers[len(centers)/2]
}

func partition(shapes []Shape, axis int, splitPos float64) (left, right []Shape) {
	for _, shape := range shapes {
		center := shape.BoundingBox().Center()
		var v float64
		switch axis {
		case 0:
			v = center.X
		case 1:
			v = center.Y
		case 2:
			v = center.Z
		}

		if v < splitPos {
			left = append(left, shape)
		} else {
			right = append(right, shape)
		}
	}
	return left, right
}

// Hit finds the closest intersection in [tMin, tMax]. A nil root (empty
// world) silently misses rather than erroring.
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.hitNode(bvh.Root, ray, tMin, tMax)
}

// BoundingBox implements Shape so a BVH can be nested inside another (e.g. a
// Transform wrapping an entire sub-scene).
func (bvh *BVH) BoundingBox() AABB {
	if bvh.Root == nil {
		return AABB{}
	}
	return bvh.Root.BoundingBox
}

func (bvh *BVH) hitNode(node *BVHNode, ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.Shapes != nil {
		var closest *HitRecord
		hitAnything := false
		closestSoFar := tMax

		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				hitAnything = true
				closestSoFar = hit.T
				closest = hit
			}
		}
		return closest, hitAnything
	}

	var closest *HitRecord
	hitAnything := false
	closestSoFar := tMax

	if node.Left != nil {
		if hit, ok := bvh.hitNode(node.Left, ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	if node.Right != nil {
		if hit, ok := bvh.hitNode(node.Right, ray, tMin, closestSoFar); ok {
			hitAnything = true
			closest = hit
		}
	}

	return closest, hitAnything
}
