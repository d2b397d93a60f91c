package material

import (
	"math"
	"math/rand"

	"github.com/pathtracer/engine/pkg/core"
)

// Dielectric is a transparent material (glass, water) that stochastically
// reflects or refracts each incoming ray according to the Fresnel term,
// approximated with Schlick's reflectance.
type Dielectric struct {
	RefractionIndex float64
}

// NewDielectric creates a Dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1, 1, 1)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractionIndex
	} else {
		refractionRatio = d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || core.SchlickReflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	scattered := core.NewRayAt(hit.Point, direction, rayIn.Time)

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
		Specular:    true,
	}, true
}

func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}
