package geometry

import "github.com/pathtracer/engine/pkg/core"

// TriangleMesh is a collection of triangles built from shared vertices and
// face indices, accelerated by an internal BVH so the mesh behaves as a
// single Shape from the point of view of the world's top-level BVH.
// Rotation is not a mesh concern: a rotated mesh is produced by wrapping a
// TriangleMesh in a Transform rather than pre-rotating its vertices.
type TriangleMesh struct {
	Triangles []*Triangle
	bvh       *core.BVH
	bbox      core.AABB
}

// TriangleMeshOptions carries optional per-vertex/per-triangle data.
type TriangleMeshOptions struct {
	VertexUVs []core.Vec2     // optional, one per vertex
	Materials []core.Material // optional, one per triangle; overrides the default material
}

// NewTriangleMesh builds a mesh from a shared vertex buffer and a flat list
// of triangle indices (every 3 entries form one triangle), matching the
// layout produced by an OBJ-style mesh loader.
func NewTriangleMesh(vertices []core.Vec3, faces []int, defaultMaterial core.Material, options *TriangleMeshOptions) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("triangle mesh face indices must be a multiple of 3")
	}

	numTriangles := len(faces) / 3
	if options != nil {
		if options.Materials != nil && len(options.Materials) != numTriangles {
			panic("triangle mesh materials count must match triangle count")
		}
		if options.VertexUVs != nil && len(options.VertexUVs) != len(vertices) {
			panic("triangle mesh vertex UV count must match vertex count")
		}
	}

	triangles := make([]*Triangle, numTriangles)
	shapes := make([]core.Shape, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= len(vertices) || i1 >= len(vertices) || i2 >= len(vertices) {
			panic("triangle mesh face index out of bounds")
		}

		triMaterial := defaultMaterial
		if options != nil && options.Materials != nil {
			triMaterial = options.Materials[i]
		}

		v0, v1, v2 := vertices[i0], vertices[i1], vertices[i2]

		var tri *Triangle
		if options != nil && options.VertexUVs != nil {
			tri = NewTriangleWithUVs(v0, v1, v2, options.VertexUVs[i0], options.VertexUVs[i1], options.VertexUVs[i2], triMaterial)
		} else {
			tri = NewTriangle(v0, v1, v2, triMaterial)
		}
		triangles[i] = tri
		shapes[i] = tri
	}

	bvh := core.NewBVH(shapes)
	return &TriangleMesh{Triangles: triangles, bvh: bvh, bbox: bvh.BoundingBox()}
}

func (m *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return m.bvh.Hit(ray, tMin, tMax)
}

func (m *TriangleMesh) BoundingBox() core.AABB {
	return m.bbox
}

// TriangleCount returns the number of triangles in the mesh.
func (m *TriangleMesh) TriangleCount() int {
	return len(m.Triangles)
}
