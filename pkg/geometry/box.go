package geometry

import "github.com/pathtracer/engine/pkg/core"

// Box is an axis-aligned rectangular solid built from six Rects. Rotated
// boxes are produced by wrapping a Box in a Transform rather than by
// rotating the box itself.
type Box struct {
	Min, Max core.Vec3
	sides    []core.Shape
	bbox     core.AABB
}

// NewBox creates an axis-aligned box spanning [min, max].
func NewBox(min, max core.Vec3, material core.Material) *Box {
	b := &Box{Min: min, Max: max, bbox: core.NewAABB(min, max)}
	b.sides = []core.Shape{
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material),
	}
	return b
}

func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestT := tMax
	hitAnything := false

	for _, side := range b.sides {
		if hit, ok := side.Hit(ray, tMin, closestT); ok {
			hitAnything = true
			closestT = hit.T
			closest = hit
		}
	}
	return closest, hitAnything
}

func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}
