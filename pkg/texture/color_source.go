// Package texture provides spatially-varying color sources consumed by
// materials: solid colors, procedural checker patterns, and raster images.
package texture

import (
	"math"

	"github.com/pathtracer/engine/pkg/core"
)

// ColorSource provides a color at a given texture coordinate and surface
// point. Procedural textures use point; image textures use uv.
type ColorSource interface {
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor is a ColorSource that ignores its inputs and returns one color.
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a ColorSource with a single uniform color.
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two ColorSources based on the sign of
// sin(scale*x)*sin(scale*y)*sin(scale*z), giving a 3D checkerboard that
// doesn't require UV coordinates.
type CheckerTexture struct {
	Scale float64
	Even  ColorSource
	Odd   ColorSource
}

// NewCheckerTexture creates a 3D checker pattern from two solid colors.
func NewCheckerTexture(scale float64, even, odd core.Vec3) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
