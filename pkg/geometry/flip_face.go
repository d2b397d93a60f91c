package geometry

import (
	"math/rand"

	"github.com/pathtracer/engine/pkg/core"
)

// FlipFace wraps a shape and inverts the front/back sense of its hits,
// useful when a shape's winding puts its emitting side away from the scene.
type FlipFace struct {
	Shape core.Shape
}

// NewFlipFace wraps shape so its hit records report the opposite face.
func NewFlipFace(shape core.Shape) *FlipFace {
	return &FlipFace{Shape: shape}
}

func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	hit, ok := f.Shape.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

func (f *FlipFace) BoundingBox() core.AABB {
	return f.Shape.BoundingBox()
}

// PDFValue and Random forward to the wrapped shape when it is itself usable
// as a light, so FlipFace can be used transparently inside light lists.
func (f *FlipFace) PDFValue(origin, direction core.Vec3) float64 {
	if s, ok := f.Shape.(core.Sampleable); ok {
		return s.PDFValue(origin, direction)
	}
	return 0
}

func (f *FlipFace) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if s, ok := f.Shape.(core.Sampleable); ok {
		return s.Random(origin, random)
	}
	return core.Vec3{}
}
