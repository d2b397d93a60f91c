package geometry

import "github.com/pathtracer/engine/pkg/core"

// Triangle is a single triangle defined by three vertices, optionally with
// per-vertex UVs. Triangles are never treated as area lights: PDFValue and
// Random are not implemented (a mesh large enough to matter as a light
// source is out of scope for this renderer's light list).
type Triangle struct {
	V0, V1, V2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	hasUVs        bool
	Material      core.Material
	normal        core.Vec3
	bbox          core.AABB
}

// NewTriangle creates a triangle with its normal derived from vertex winding.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// NewTriangleWithUVs creates a triangle with per-vertex texture coordinates.
func NewTriangleWithUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, material core.Material) *Triangle {
	t := NewTriangle(v0, v1, v2, material)
	t.UV0, t.UV1, t.UV2 = uv0, uv1, uv2
	t.hasUVs = true
	return t
}

// Hit implements the Moller-Trumbore ray/triangle intersection algorithm.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	var uv core.Vec2
	if t.hasUVs {
		w := 1.0 - u - v
		uv = t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))
	} else {
		uv = core.NewVec2(u, v)
	}

	rec := &core.HitRecord{T: tParam, Point: ray.At(tParam), UV: uv, Material: t.Material}
	rec.SetFaceNormal(ray, t.normal)
	return rec, true
}

func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}
