package geometry

import (
	"math/rand"

	"github.com/pathtracer/engine/pkg/core"
)

// Transform instances a shape under translation and XYZ-order rotation
// (applied in that order: X, then Y, then Z), by transforming incoming rays
// into the shape's local space and transforming hit results back out.
//
// Its bounding box is the component-wise min/max of all 8 transformed corners
// of the local-space box: exact for translation and rotations by multiples
// of 90 degrees, and conservative-but-loose otherwise.
type Transform struct {
	Shape    core.Shape
	Offset   core.Vec3
	Rotation core.Vec3 // radians, applied X then Y then Z
	bbox     core.AABB
}

// NewTransform wraps shape with a translation and rotation.
func NewTransform(shape core.Shape, offset, rotation core.Vec3) *Transform {
	t := &Transform{Shape: shape, Offset: offset, Rotation: rotation}
	t.bbox = t.computeBoundingBox()
	return t
}

func (t *Transform) toLocal(p core.Vec3) core.Vec3 {
	p = p.Subtract(t.Offset)
	return p.Rotate(t.Rotation.Negate())
}

func (t *Transform) toWorldPoint(p core.Vec3) core.Vec3 {
	return p.Rotate(t.Rotation).Add(t.Offset)
}

func (t *Transform) toWorldDirection(v core.Vec3) core.Vec3 {
	return v.Rotate(t.Rotation)
}

func (t *Transform) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	localRay := core.NewRayAt(t.toLocal(ray.Origin), t.toLocal(ray.Origin.Add(ray.Direction)).Subtract(t.toLocal(ray.Origin)), ray.Time)

	hit, ok := t.Shape.Hit(localRay, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = t.toWorldPoint(hit.Point)
	hit.Normal = t.toWorldDirection(hit.Normal).Normalize()
	return hit, true
}

func (t *Transform) computeBoundingBox() core.AABB {
	local := t.Shape.BoundingBox()
	corners := [8]core.Vec3{
		core.NewVec3(local.Min.X, local.Min.Y, local.Min.Z),
		core.NewVec3(local.Max.X, local.Min.Y, local.Min.Z),
		core.NewVec3(local.Min.X, local.Max.Y, local.Min.Z),
		core.NewVec3(local.Max.X, local.Max.Y, local.Min.Z),
		core.NewVec3(local.Min.X, local.Min.Y, local.Max.Z),
		core.NewVec3(local.Max.X, local.Min.Y, local.Max.Z),
		core.NewVec3(local.Min.X, local.Max.Y, local.Max.Z),
		core.NewVec3(local.Max.X, local.Max.Y, local.Max.Z),
	}
	for i := range corners {
		corners[i] = t.toWorldPoint(corners[i])
	}
	return core.NewAABBFromPoints(corners[:]...)
}

func (t *Transform) BoundingBox() core.AABB {
	return t.bbox
}

// scaleFactor approximates the PDF scaling introduced by the transform as
// the largest column norm of its linear part, which is exact only for
// uniform scale. Transform's linear part is a pure rotation, so the factor
// is 1 up to rounding.
func (t *Transform) scaleFactor() float64 {
	factor := 0.0
	for _, axis := range [3]core.Vec3{core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1)} {
		factor = max3(factor, t.toWorldDirection(axis).Length())
	}
	return factor
}

func max3(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}

// PDFValue transforms direction into local space and scales the child's
// density by the (approximate) Jacobian of the transform.
func (t *Transform) PDFValue(origin, direction core.Vec3) float64 {
	s, ok := t.Shape.(core.Sampleable)
	if !ok {
		return 0
	}
	localOrigin := t.toLocal(origin)
	localDirection := direction.Rotate(t.Rotation.Negate())
	scale := t.scaleFactor()
	if scale <= 0 {
		return 0
	}
	return s.PDFValue(localOrigin, localDirection) / (scale * scale)
}

// Random samples a direction in local space and rotates it back to world.
func (t *Transform) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	s, ok := t.Shape.(core.Sampleable)
	if !ok {
		return core.Vec3{}
	}
	localOrigin := t.toLocal(origin)
	localDir := s.Random(localOrigin, random)
	return t.toWorldDirection(localDir)
}
