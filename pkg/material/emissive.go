package material

import (
	"math/rand"

	"github.com/pathtracer/engine/pkg/core"
	"github.com/pathtracer/engine/pkg/texture"
)

// DiffuseLight emits a constant radiance from its front face only; it never
// scatters, so a path terminates (for direct lighting purposes) on hitting
// one.
type DiffuseLight struct {
	Emission texture.ColorSource
}

// NewDiffuseLight creates a DiffuseLight of uniform emitted color.
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: texture.NewSolidColor(emission)}
}

func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission color when the ray hit the front face, and
// black otherwise (lights do not glow from behind).
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emission.Evaluate(hit.UV, hit.Point)
}
