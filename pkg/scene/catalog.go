package scene

import (
	"github.com/pathtracer/engine/pkg/core"
	"github.com/pathtracer/engine/pkg/geometry"
	"github.com/pathtracer/engine/pkg/material"
)

// Default builds a small scene of glass, metal, and diffuse spheres over a
// ground plane lit by a single large area light, adapted from the teacher's
// NewDefaultScene (minus its layered-material coating and the gradient
// infinite light, which this renderer's integrator background handles
// directly rather than through a separate light type).
func Default() SceneConfig {
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, glass)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	sphereRight := geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold)

	hollowGlassOuter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass)
	hollowGlassInner := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, glass)
	hollowGlassCenter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.2, lambertianBlue)

	ground := groundRect(core.NewVec3(0, 0, 0), 10000.0, lambertianGreen)

	light := geometry.NewSphere(core.NewVec3(30, 30.5, 15), 10, material.NewDiffuseLight(core.NewVec3(15.0, 14.0, 13.0)))

	return SceneConfig{
		LookFrom:        core.NewVec3(0, 0.75, 2),
		LookAt:          core.NewVec3(0, 0.5, -1),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            40.0,
		AspectRatio:     16.0 / 9.0,
		Aperture:        0.05,
		Background:      core.NewVec3(0.6, 0.75, 0.9),
		SamplesPerPixel: 200,
		MaxDepth:        50,
		World: []core.Shape{
			sphereCenter, sphereLeft, sphereRight, ground,
			hollowGlassOuter, hollowGlassInner, hollowGlassCenter, light,
		},
		Lights: []core.Shape{light},
	}
}

// groundRect builds a large horizontal rect centered at center, standing in
// for an infinite ground plane without an unbounded shape the BVH can't box.
func groundRect(center core.Vec3, size float64, mat core.Material) *geometry.Rect {
	half := size / 2
	return geometry.NewXZRect(center.X-half, center.X+half, center.Z-half, center.Z+half, center.Y, mat)
}

// Cornell builds the classic Cornell box: five diffuse walls, a ceiling area
// light, and a metal and a glass sphere, adapted from the teacher's
// NewCornellScene (its parallelogram Quad walls become axis-aligned Rects,
// since every Cornell wall is axis-aligned anyway).
func Cornell() SceneConfig {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	const box = 555.0

	floor := geometry.NewXZRect(0, box, 0, box, 0, white)
	ceiling := geometry.NewXZRect(0, box, 0, box, box, white)
	back := geometry.NewXYRect(0, box, 0, box, box, white)
	left := geometry.NewYZRect(0, box, 0, box, 0, red)
	right := geometry.NewYZRect(0, box, 0, box, box, green)

	const lightSize = 130.0
	lightOffset := (box - lightSize) / 2
	light := geometry.NewFlipFace(geometry.NewXZRect(lightOffset, lightOffset+lightSize, lightOffset, lightOffset+lightSize, box-1,
		material.NewDiffuseLight(core.NewVec3(15, 15, 15))))

	leftSphere := geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0))
	rightSphere := geometry.NewSphere(core.NewVec3(370, 90, 351), 90, material.NewDielectric(1.5))

	return SceneConfig{
		LookFrom:        core.NewVec3(278, 278, -800),
		LookAt:          core.NewVec3(278, 278, 0),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            40.0,
		AspectRatio:     1.0,
		Background:      core.Vec3{},
		SamplesPerPixel: 300,
		MaxDepth:        40,
		World:           []core.Shape{floor, ceiling, back, left, right, light, leftSphere, rightSphere},
		Lights:          []core.Shape{light},
	}
}

// Catalog lists the named scenes this repository ships, keyed the way the
// CLI's -scene flag selects one.
var Catalog = map[string]func() SceneConfig{
	"default": Default,
	"cornell": Cornell,
}
