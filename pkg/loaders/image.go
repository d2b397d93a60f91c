package loaders

import (
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/pkg/errors"

	"github.com/pathtracer/engine/pkg/core"
	"github.com/pathtracer/engine/pkg/texture"
)

// ImageData is a decoded raster image as a flat row-major Vec3 color buffer.
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage decodes a PNG or JPEG file (format auto-detected from its
// header) into an ImageData.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open image file %q", filename)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image file %q", filename)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// LoadImageTexture loads filename and wraps it directly as a
// texture.ImageTexture, the common case for a material's albedo map.
func LoadImageTexture(filename string) (*texture.ImageTexture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return texture.NewImageTexture(data.Width, data.Height, data.Pixels), nil
}
