// Package material implements the Material/Emitter contracts from pkg/core:
// perfectly diffuse, metallic, dielectric, and light-emitting surfaces.
package material

import (
	"math"
	"math/rand"

	"github.com/pathtracer/engine/pkg/core"
	"github.com/pathtracer/engine/pkg/texture"
)

// Lambertian is a perfectly diffuse material: it scatters incoming light
// uniformly (in the cosine-weighted sense) over the hemisphere above the
// surface, tinted by Albedo.
type Lambertian struct {
	Albedo texture.ColorSource
}

// NewLambertian creates a Lambertian material from a solid color.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolidColor(albedo)}
}

// NewLambertianTexture creates a Lambertian material from any ColorSource.
func NewLambertianTexture(albedo texture.ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	onb := core.NewONBFromW(hit.Normal)
	direction := onb.LocalVec(core.RandomCosineDirection(random))

	scattered := core.NewRayAt(hit.Point, direction, rayIn.Time)
	pdf := l.ScatteringPDF(rayIn, hit, scattered)

	attenuation := l.Albedo.Evaluate(hit.UV, hit.Point)

	return core.ScatterResult{Scattered: scattered, Attenuation: attenuation, PDF: pdf}, true
}

// ScatteringPDF is cos(theta)/pi, the cosine-weighted hemisphere density
// also used as one arm of the integrator's light/material MIS mixture.
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
