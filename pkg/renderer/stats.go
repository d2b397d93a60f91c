package renderer

import (
	"math"

	"github.com/pathtracer/engine/pkg/core"
)

// RenderStats summarizes a completed render.
type RenderStats struct {
	TotalPixels    int
	TotalSamples   int
	AverageSamples float64
}

// PixelStats accumulates radiance samples for a single pixel. NaN and
// infinite channels are replaced with zero here, at accumulation time, per
// this renderer's NaN-handling policy: a degenerate channel (e.g. from a
// near-zero PDF) counts as zero rather than poisoning the pixel's average.
type PixelStats struct {
	ColorAccum  core.Vec3
	SampleCount int
}

// AddSample adds one radiance sample to the pixel's running average.
func (ps *PixelStats) AddSample(color core.Vec3) {
	if math.IsNaN(color.X) || math.IsInf(color.X, 0) {
		color.X = 0
	}
	if math.IsNaN(color.Y) || math.IsInf(color.Y, 0) {
		color.Y = 0
	}
	if math.IsNaN(color.Z) || math.IsInf(color.Z, 0) {
		color.Z = 0
	}
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the pixel's current average color.
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
