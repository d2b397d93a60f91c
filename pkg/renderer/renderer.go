// Package renderer implements the parallel tile scheduler and frame buffer
// that drive the integrator across an image: each tile is an independent
// unit of work sampled SamplesPerPixel times and accumulated into a shared
// Frame, which is then gamma-encoded to produce the final image.
package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pathtracer/engine/pkg/camera"
	"github.com/pathtracer/engine/pkg/core"
	"github.com/pathtracer/engine/pkg/integrator"
)

// Config describes a render job.
type Config struct {
	Width, Height   int
	SamplesPerPixel int
	TileSize        int // 0 defaults to 16
	NumWorkers      int // 0 defaults to runtime.NumCPU()
}

// Renderer renders a World through a Camera using a PathTracer, distributing
// work across a fixed square tile grid.
type Renderer struct {
	Camera     *camera.Camera
	World      *core.World
	Integrator *integrator.PathTracer
	Config     Config
	Logger     core.Logger
}

// New builds a Renderer, filling in default tile size/worker count.
func New(cam *camera.Camera, world *core.World, tracer *integrator.PathTracer, config Config, logger core.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = 16
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{Camera: cam, World: world, Integrator: tracer, Config: config, Logger: logger}
}

// Render renders the full image into a fresh Frame, returning once every
// tile has completed or the context is cancelled.
func (r *Renderer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	frame := NewFrame(r.Config.Width, r.Config.Height)
	tiles := NewTileGrid(r.Config.Width, r.Config.Height, r.Config.TileSize)

	r.Logger.Printf("rendering %dx%d, %d samples/pixel, %d tiles, %d workers\n",
		r.Config.Width, r.Config.Height, r.Config.SamplesPerPixel, len(tiles), r.Config.NumWorkers)

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(r.Config.NumWorkers)

	for _, tile := range tiles {
		tile := tile
		group.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			r.renderTile(tile, frame)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	return frame, frame.Stats(), nil
}

// renderTile samples every pixel in tile.Bounds SamplesPerPixel times and
// accumulates the results into frame.
func (r *Renderer) renderTile(tile *Tile, frame *Frame) {
	width, height := r.Config.Width, r.Config.Height

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			for s := 0; s < r.Config.SamplesPerPixel; s++ {
				u := (float64(x) + tile.Random.Float64()) / float64(width-1)
				// Image row 0 is the top of the frame; the camera's t=1 edge
				// is also the top, so row and t run in opposite directions.
				v := (float64(height-1-y) + tile.Random.Float64()) / float64(height-1)

				ray := r.Camera.GetRay(u, v, tile.Random)
				color := r.Integrator.RayColor(ray, r.World, tile.Random)
				frame.AddSample(x, y, color)
			}
		}
	}
}
