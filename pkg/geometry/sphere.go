// Package geometry implements the core.Shape contract: spheres, axis-aligned
// rects, boxes, triangles/meshes, and a Transform wrapper for instancing.
package geometry

import (
	"math"
	"math/rand"

	"github.com/pathtracer/engine/pkg/core"
)

// Sphere is a ray-traceable sphere with optional linear motion between
// Center0 (at Time0) and Center1 (at Time1), used for motion blur.
type Sphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
	moving           bool
}

// NewSphere creates a stationary sphere.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center0: center, Center1: center, Radius: radius, Material: material}
}

// NewMovingSphere creates a sphere whose center moves linearly from center0
// at time0 to center1 at time1.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center0: center0, Center1: center1,
		Time0: time0, Time1: time1,
		Radius: radius, Material: material, moving: true,
	}
}

func (s *Sphere) centerAt(time float64) core.Vec3 {
	if !s.moving || s.Time1 == s.Time0 {
		return s.Center0
	}
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(t))
}

func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)

	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	uv := core.NewVec2(phi/(2.0*math.Pi), theta/math.Pi)

	rec := &core.HitRecord{T: root, Point: point, UV: uv, Material: s.Material}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.Center0.Subtract(r), s.Center0.Add(r))
	if !s.moving {
		return box0
	}
	box1 := core.NewAABB(s.Center1.Subtract(r), s.Center1.Add(r))
	return box0.Union(box1)
}

// PDFValue returns the solid-angle density of sampling direction from origin
// toward this sphere via cone sampling, used when the sphere is an area
// light. Returns 0 if origin cannot see the sphere along direction.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction.Normalize())
	if _, ok := s.Hit(ray, 0.001, math.MaxFloat64); !ok {
		return 0
	}

	distSq := s.Center0.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSq))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}
	return 1 / solidAngle
}

// Random samples a direction from origin uniformly over the solid angle
// subtended by the sphere (cone sampling).
func (s *Sphere) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	direction := s.Center0.Subtract(origin)
	distSq := direction.LengthSquared()
	uvw := core.NewONBFromW(direction)
	return uvw.LocalVec(randomToSphere(s.Radius, distSq, random))
}

func randomToSphere(radius, distanceSquared float64, random *rand.Rand) core.Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	z := 1 + r2*(math.Sqrt(1-radius*radius/distanceSquared)-1)

	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(1 - z*z)
	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta

	return core.NewVec3(x, y, z)
}
