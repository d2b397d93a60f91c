package core

import "math/rand"

// Logger is satisfied by the standard library's log.Logger and by
// DefaultLogger; it is the only logging seam the renderer depends on.
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord describes a ray/shape intersection.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3
	UV        Vec2
	T         float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal to face against the incoming ray and records
// which side of the surface was hit.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is anything a ray can hit: the common contract for spheres, rects,
// triangles, transformed instances, and BVH nodes themselves.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() AABB
}

// Sampleable is implemented by shapes usable as area lights for explicit
// light sampling: they can report the solid-angle PDF of a given direction
// from a reference point, and generate a direction toward themselves.
type Sampleable interface {
	PDFValue(origin, direction Vec3) float64
	Random(origin Vec3, random *rand.Rand) Vec3
}

// ScatterResult is what a Material produces when it decides how a ray
// continues after hitting a surface.
type ScatterResult struct {
	Scattered   Ray
	Attenuation Vec3
	PDF         float64 // 0 for specular (delta) scattering
	Specular    bool
}

// Material decides how incoming light scatters off a surface.
type Material interface {
	// Scatter proposes an outgoing ray and its PDF (or marks the scatter
	// specular, in which case PDF is meaningless and must not be mixed with
	// light sampling).
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)

	// ScatteringPDF evaluates the material's own sampling density for a
	// specific outgoing direction, used to compute MIS weights when a
	// direction was instead generated by light sampling.
	ScatteringPDF(rayIn Ray, hit HitRecord, scattered Ray) float64
}

// Emitter is implemented by materials that emit light (e.g. DiffuseLight).
// Hit records whose Material does not implement Emitter contribute no
// emission.
type Emitter interface {
	Emitted(rayIn Ray, hit HitRecord) Vec3
}

// PDF is a sampling strategy over directions: generate a direction and
// evaluate the probability density of any direction under that strategy.
type PDF interface {
	Value(direction Vec3) float64
	Generate(random *rand.Rand) Vec3
}
