package geometry

import (
	"math/rand"

	"github.com/pathtracer/engine/pkg/core"
)

// RectAxis names which coordinate a rect's plane is constant along.
type RectAxis int

const (
	AxisZ RectAxis = iota // XY rect: constant Z
	AxisY                 // XZ rect: constant Y
	AxisX                 // YZ rect: constant X
)

// Rect is an axis-aligned rectangle lying in one of the three coordinate
// planes. A0/A1 and B0/B1 bound the two varying axes; K is the constant
// coordinate along the third axis.
type Rect struct {
	Axis     RectAxis
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material core.Material
}

// NewXYRect creates a rect in the plane Z=k.
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *Rect {
	return &Rect{Axis: AxisZ, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material}
}

// NewXZRect creates a rect in the plane Y=k.
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *Rect {
	return &Rect{Axis: AxisY, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material}
}

// NewYZRect creates a rect in the plane X=k.
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *Rect {
	return &Rect{Axis: AxisX, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material}
}

// components splits a point into (constant-axis value, a, b) according to
// the rect's orientation.
func (r *Rect) components(p core.Vec3) (k, a, b float64) {
	switch r.Axis {
	case AxisZ:
		return p.Z, p.X, p.Y
	case AxisY:
		return p.Y, p.X, p.Z
	default: // AxisX
		return p.X, p.Y, p.Z
	}
}

func (r *Rect) outwardNormal() core.Vec3 {
	switch r.Axis {
	case AxisZ:
		return core.NewVec3(0, 0, 1)
	case AxisY:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(1, 0, 0)
	}
}

// pointFromComponents rebuilds a Vec3 from (constant-axis value, a, b).
func (r *Rect) pointFromComponents(k, a, b float64) core.Vec3 {
	switch r.Axis {
	case AxisZ:
		return core.NewVec3(a, b, k)
	case AxisY:
		return core.NewVec3(a, k, b)
	default:
		return core.NewVec3(k, a, b)
	}
}

func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	kOrigin, aOrigin, bOrigin := r.components(ray.Origin)
	kDir, aDir, bDir := r.components(ray.Direction)

	if kDir == 0 {
		return nil, false
	}

	t := (r.K - kOrigin) / kDir
	if t < tMin || t > tMax {
		return nil, false
	}

	a := aOrigin + t*aDir
	b := bOrigin + t*bDir
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	u := (a - r.A0) / (r.A1 - r.A0)
	v := (b - r.B0) / (r.B1 - r.B0)

	rec := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2(u, v),
		Material: r.Material,
	}
	rec.SetFaceNormal(ray, r.outwardNormal())
	return rec, true
}

func (r *Rect) BoundingBox() core.AABB {
	min := r.pointFromComponents(r.K, r.A0, r.B0)
	max := r.pointFromComponents(r.K, r.A1, r.B1)
	box := core.NewAABBFromPoints(min, max)
	return box.Expand(0.0001)
}

// PDFValue is the inverse solid-angle density for sampling this rect as an
// area light from origin toward direction.
func (r *Rect) PDFValue(origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	hit, ok := r.Hit(ray, 0.001, 1e8)
	if !ok {
		return 0
	}

	area := (r.A1 - r.A0) * (r.B1 - r.B0)
	distSq := hit.T * hit.T * direction.LengthSquared()
	cosine := direction.AbsDot(hit.Normal) / direction.Length()
	if cosine < 1e-8 {
		return 0
	}
	return distSq / (cosine * area)
}

// Random samples a direction from origin toward a uniformly random point on
// the rect.
func (r *Rect) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	a := core.RandomRange(random, r.A0, r.A1)
	b := core.RandomRange(random, r.B0, r.B1)
	point := r.pointFromComponents(r.K, a, b)
	return point.Subtract(origin)
}
