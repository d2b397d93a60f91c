package texture

import (
	"github.com/pathtracer/engine/pkg/core"
)

// ImageTexture samples color from a decoded raster image using
// nearest-neighbor filtering. V=0 is the bottom of the image (image-space
// rows are flipped on lookup, since image decoders store row 0 at the top).
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // row-major: Pixels[y*Width+x]
}

// NewImageTexture wraps a decoded pixel buffer as a ColorSource.
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	u := uv.X - float64(int(uv.X))
	v := uv.Y - float64(int(uv.Y))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.Pixels[y*t.Width+x]
}
