// Package pdf implements sampling strategies used by the path integrator:
// a cosine-weighted hemisphere PDF, a shape-driven PDF for explicit light
// sampling, and a 50/50 mixture of the two for multiple importance sampling.
package pdf

import (
	"math"
	"math/rand"

	"github.com/pathtracer/engine/pkg/core"
)

// CosinePDF samples directions proportional to cos(theta) around a normal,
// matching Lambertian.ScatteringPDF exactly so that BSDF sampling and its
// PDF evaluation stay consistent.
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF builds a CosinePDF oriented around normal w.
func NewCosinePDF(w core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONBFromW(w)}
}

func (p *CosinePDF) Generate(random *rand.Rand) core.Vec3 {
	return p.uvw.LocalVec(core.RandomCosineDirection(random))
}

func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// HittablePDF samples directions toward a specific shape (used as an area
// light), via the shape's own Sampleable implementation.
type HittablePDF struct {
	origin core.Vec3
	shape  core.Sampleable
}

// NewHittablePDF builds a PDF that samples directions from origin toward shape.
func NewHittablePDF(origin core.Vec3, shape core.Sampleable) *HittablePDF {
	return &HittablePDF{origin: origin, shape: shape}
}

func (p *HittablePDF) Generate(random *rand.Rand) core.Vec3 {
	return p.shape.Random(p.origin, random)
}

func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.shape.PDFValue(p.origin, direction)
}

// MixturePDF combines two PDFs with equal weight: generation flips a coin to
// choose which strategy to sample from, and Value always averages both
// densities. This equal-weight mixture is what gives the integrator its
// multiple-importance-sampling behavior between light sampling and BSDF
// sampling.
type MixturePDF struct {
	A, B core.PDF
}

// NewMixturePDF builds a 50/50 mixture of a and b.
func NewMixturePDF(a, b core.PDF) *MixturePDF {
	return &MixturePDF{A: a, B: b}
}

func (p *MixturePDF) Generate(random *rand.Rand) core.Vec3 {
	if random.Float64() < 0.5 {
		return p.A.Generate(random)
	}
	return p.B.Generate(random)
}

func (p *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*p.A.Value(direction) + 0.5*p.B.Value(direction)
}
