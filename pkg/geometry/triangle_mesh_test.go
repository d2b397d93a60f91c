package geometry

import (
	"testing"

	"github.com/pathtracer/engine/pkg/core"
	"github.com/pathtracer/engine/pkg/material"
)

func TestTriangleMeshPerTriangleMaterials(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0), // 0
		core.NewVec3(1, 0, 0), // 1
		core.NewVec3(1, 1, 0), // 2
		core.NewVec3(0, 1, 0), // 3
	}

	faces := []int{
		0, 1, 2, // first triangle
		0, 2, 3, // second triangle
	}

	material1 := material.NewLambertian(core.NewVec3(1, 0, 0))
	material2 := material.NewLambertian(core.NewVec3(0, 1, 0))

	options := &TriangleMeshOptions{
		Materials: []core.Material{material1, material2},
	}

	mesh := NewTriangleMesh(vertices, faces, material1, options)
	if mesh.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles, got %d", mesh.TriangleCount())
	}

	ray1 := core.NewRay(core.NewVec3(0.8, 0.1, -1), core.NewVec3(0, 0, 1))
	hit1, ok1 := mesh.Hit(ray1, 0.001, 10.0)
	if !ok1 || hit1.Material != material1 {
		t.Error("expected hit on first triangle with material1")
	}

	ray2 := core.NewRay(core.NewVec3(0.1, 0.8, -1), core.NewVec3(0, 0, 1))
	hit2, ok2 := mesh.Hit(ray2, 0.001, 10.0)
	if !ok2 || hit2.Material != material2 {
		t.Error("expected hit on second triangle with material2")
	}
}

func TestTriangleMeshPyramid(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),     // 0 - base corner
		core.NewVec3(1, 0, 0),     // 1 - base corner
		core.NewVec3(1, 0, 1),     // 2 - base corner
		core.NewVec3(0, 0, 1),     // 3 - base corner
		core.NewVec3(0.5, 1, 0.5), // 4 - apex
	}

	faces := []int{
		0, 1, 2,
		0, 2, 3,
		0, 4, 1,
		1, 4, 2,
		2, 4, 3,
		3, 4, 0,
	}

	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	mesh := NewTriangleMesh(vertices, faces, mat, nil)

	if mesh.TriangleCount() != 6 {
		t.Errorf("expected 6 triangles in pyramid, got %d", mesh.TriangleCount())
	}

	bbox := mesh.BoundingBox()
	if bbox.Min.X > 0 || bbox.Min.Y > 0 || bbox.Min.Z > 0 {
		t.Errorf("bounding box min should be at origin, got %v", bbox.Min)
	}
	if bbox.Max.X < 1 || bbox.Max.Y < 1 || bbox.Max.Z < 1 {
		t.Errorf("bounding box max should include all vertices, got %v", bbox.Max)
	}

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
	}{
		{"ray hits base from below", core.NewRay(core.NewVec3(0.5, -1, 0.5), core.NewVec3(0, 1, 0)), true},
		{"ray hits side face", core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1)), true},
		{"ray misses pyramid completely", core.NewRay(core.NewVec3(2, 0.5, 0.5), core.NewVec3(1, 0, 0)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := mesh.Hit(tt.ray, 0.001, 10.0)
			if isHit != tt.shouldHit {
				t.Errorf("expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}
			if tt.shouldHit && (hit == nil || hit.T <= 0) {
				t.Error("expected valid positive-t hit record")
			}
		})
	}
}

func TestTriangleMeshEmptyAndSingle(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	}
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))

	t.Run("empty mesh", func(t *testing.T) {
		mesh := NewTriangleMesh(vertices, []int{}, mat, nil)
		if mesh.TriangleCount() != 0 {
			t.Errorf("expected 0 triangles for empty faces, got %d", mesh.TriangleCount())
		}
		ray := core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1))
		if _, ok := mesh.Hit(ray, 0.001, 10.0); ok {
			t.Error("expected no hit for empty mesh")
		}
	})

	t.Run("single triangle", func(t *testing.T) {
		mesh := NewTriangleMesh(vertices, []int{0, 1, 2}, mat, nil)
		if mesh.TriangleCount() != 1 {
			t.Errorf("expected 1 triangle, got %d", mesh.TriangleCount())
		}
		ray := core.NewRay(core.NewVec3(0.3, 0.3, -1), core.NewVec3(0, 0, 1))
		if _, ok := mesh.Hit(ray, 0.001, 10.0); !ok {
			t.Error("expected hit for single triangle")
		}
	})
}

func TestTriangleMeshInvalidFaceCountPanics(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	}
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for invalid face count")
		}
	}()

	NewTriangleMesh(vertices, []int{0, 1}, mat, nil)
}

func TestTriangleMeshInvalidMaterialCountPanics(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	}
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for mismatched materials count")
		}
	}()

	options := &TriangleMeshOptions{Materials: []core.Material{mat, mat}}
	NewTriangleMesh(vertices, []int{0, 1, 2}, mat, options)
}
