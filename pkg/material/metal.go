package material

import (
	"math/rand"

	"github.com/pathtracer/engine/pkg/core"
)

// Metal is a specular reflector: perfectly mirror-like at Fuzz=0, increasingly
// diffuse as Fuzz approaches 1.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64
}

// NewMetal creates a Metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)

	if m.Fuzz > 0 {
		reflected = reflected.Normalize().Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
	}

	scattered := core.NewRayAt(hit.Point, reflected, rayIn.Time)
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
		Specular:    true,
	}, scatters
}

// ScatteringPDF is meaningless for a delta-function material; metal is never
// reachable via light sampling's MIS term, so this always returns 0.
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}
