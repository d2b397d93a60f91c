// Package integrator implements the path-tracing light transport estimator:
// a recursive, depth-capped Monte Carlo integrator that combines explicit
// light sampling with BSDF sampling via multiple importance sampling.
package integrator

import (
	"math/rand"

	"github.com/pathtracer/engine/pkg/core"
	"github.com/pathtracer/engine/pkg/pdf"
)

// Config controls the integrator's recursion depth and miss color.
type Config struct {
	MaxDepth int // hard recursion cap; no Russian Roulette

	// Background is the color returned when a ray escapes the scene. If nil,
	// BackgroundGradient supplies a sky-like gradient instead.
	Background func(ray core.Ray) core.Vec3
}

// PathTracer estimates radiance along camera rays by recursively sampling
// the rendering equation.
type PathTracer struct {
	config Config
}

// New builds a PathTracer from config, filling in a default max depth and
// background gradient when left zero.
func New(config Config) *PathTracer {
	if config.MaxDepth <= 0 {
		config.MaxDepth = 50
	}
	if config.Background == nil {
		config.Background = BackgroundGradient
	}
	return &PathTracer{config: config}
}

// BackgroundGradient is the default miss color: a vertical white-to-blue
// gradient keyed on the ray's normalized Y direction, matching the classic
// Ray Tracing in One Weekend sky.
func BackgroundGradient(ray core.Ray) core.Vec3 {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	white := core.NewVec3(1.0, 1.0, 1.0)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1 - t).Add(blue.Multiply(t))
}

// rayEpsilon offsets scattered ray origins along the surface normal to avoid
// immediately re-intersecting the originating surface from floating point
// error.
const rayEpsilon = 1e-4

// RayColor estimates the radiance arriving along ray from world, recursing
// up to the configured max depth. The returned color may contain NaN or Inf
// components on numerically degenerate paths (e.g. a near-zero PDF); callers
// accumulate samples before guarding against this, never mid-recursion.
func (p *PathTracer) RayColor(ray core.Ray, world *core.World, random *rand.Rand) core.Vec3 {
	return p.rayColor(ray, world, random, p.config.MaxDepth)
}

func (p *PathTracer) rayColor(ray core.Ray, world *core.World, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := world.Hit(ray, rayEpsilon, 1e10)
	if !ok {
		return p.config.Background(ray)
	}

	var emitted core.Vec3
	if emitter, ok := hit.Material.(core.Emitter); ok {
		emitted = emitter.Emitted(ray, *hit)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return emitted
	}

	if scatter.Specular {
		incoming := p.rayColor(scatter.Scattered, world, random, depth-1)
		return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	scattered, samplePDF := p.sampleDirection(hit, world, random, scatter.Scattered)
	if samplePDF <= 0 {
		return emitted
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)
	if scatteringPDF <= 0 {
		return emitted
	}

	incoming := p.rayColor(scattered, world, random, depth-1)
	weight := scatteringPDF / samplePDF
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming).Multiply(weight))
}

// sampleDirection draws the next ray direction from a 50/50 mixture of the
// material's own cosine PDF and, when the world has explicit lights, a PDF
// that samples directions toward them. The material-sampled ray passed in as
// fallback is used verbatim when there are no lights to mix in.
func (p *PathTracer) sampleDirection(hit *core.HitRecord, world *core.World, random *rand.Rand, materialRay core.Ray) (core.Ray, float64) {
	cosine := pdf.NewCosinePDF(hit.Normal)

	if !world.HasLights() {
		// materialRay was already drawn from the cosine distribution by the
		// material's Scatter; its density under that same distribution is
		// the correct weight, not 1.
		return materialRay, cosine.Value(materialRay.Direction.Normalize())
	}

	lights := pdf.NewHittablePDF(hit.Point, core.NewLightSampler(world))
	mixture := pdf.NewMixturePDF(cosine, lights)

	direction := mixture.Generate(random)
	scattered := core.NewRayAt(hit.Point, direction, materialRay.Time)
	return scattered, mixture.Value(direction)
}
