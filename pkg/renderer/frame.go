package renderer

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/pathtracer/engine/pkg/core"
)

// Frame is the shared accumulation buffer written by every tile worker.
// Tiles partition the image into disjoint rectangles, so concurrent sample
// writes never touch the same pixel and only need to share the read side of
// the lock; a full-frame snapshot (ToImage, Stats) takes the write side
// instead, pausing every tile worker just long enough to read a consistent
// image.
type Frame struct {
	Width, Height int

	mu     sync.RWMutex
	pixels [][]PixelStats
}

// NewFrame allocates a zeroed frame of the given dimensions.
func NewFrame(width, height int) *Frame {
	pixels := make([][]PixelStats, height)
	for y := range pixels {
		pixels[y] = make([]PixelStats, width)
	}
	return &Frame{Width: width, Height: height, pixels: pixels}
}

// AddSample records one radiance sample at pixel (x, y). Callers must only
// write to pixels within their own tile's bounds; see the Frame doc comment.
func (f *Frame) AddSample(x, y int, c core.Vec3) {
	f.mu.RLock()
	f.pixels[y][x].AddSample(c)
	f.mu.RUnlock()
}

// Stats computes aggregate statistics over every pixel currently in the
// frame.
func (f *Frame) Stats() RenderStats {
	f.mu.Lock()
	defer f.mu.Unlock()

	stats := RenderStats{TotalPixels: f.Width * f.Height}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			stats.TotalSamples += f.pixels[y][x].SampleCount
		}
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// gammaChannel maps an averaged linear radiance channel to an 8-bit sRGB-ish
// channel via gamma-2.0 (square root) encoding: floor(256*clamp(sqrt(c),0,0.999)).
func gammaChannel(c float64) uint8 {
	if math.IsNaN(c) || c < 0 {
		c = 0
	}
	encoded := math.Sqrt(c)
	if encoded > 0.999 {
		encoded = 0.999
	}
	return uint8(256 * encoded)
}

// ToImage renders the frame's current averaged samples to an RGBA image.
func (f *Frame) ToImage() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			avg := f.pixels[y][x].GetColor()
			img.SetRGBA(x, y, color.RGBA{
				R: gammaChannel(avg.X),
				G: gammaChannel(avg.Y),
				B: gammaChannel(avg.Z),
				A: 255,
			})
		}
	}
	return img
}
