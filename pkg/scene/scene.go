// Package scene assembles a Camera and World from a SceneConfig, the
// renderer's single entry point for describing what to render.
package scene

import (
	"errors"

	"github.com/pathtracer/engine/pkg/camera"
	"github.com/pathtracer/engine/pkg/core"
)

// minSamplesPerPixel is the floor Build enforces on SamplesPerPixel,
// regardless of what a scene or override file requests.
const minSamplesPerPixel = 100

// SceneConfig aggregates everything needed to render a frame: camera
// placement, sampling parameters, and the scene's geometry. Fields mirror
// spec.md §6's SceneConfig table; yaml tags let a scene catalog entry be
// tuned by an optional override file (see LoadOverride) without recompiling.
type SceneConfig struct {
	LookFrom    core.Vec3 `yaml:"look_from"`
	LookAt      core.Vec3 `yaml:"look_at"`
	Up          core.Vec3 `yaml:"up"`
	VFov        float64   `yaml:"vfov"`
	AspectRatio float64   `yaml:"aspect_ratio"`
	Aperture    float64   `yaml:"aperture"`
	DistToFocus float64   `yaml:"dist_to_focus"`
	Background  core.Vec3 `yaml:"background"`

	SamplesPerPixel int     `yaml:"samples_per_pixel"`
	MaxDepth        int     `yaml:"max_depth"`
	Time0           float64 `yaml:"time0"`
	Time1           float64 `yaml:"time1"`
	NumWorkers      int     `yaml:"num_workers"`
	TileSize        int     `yaml:"tile_size"`

	// World and Lights are the scene's root primitive list and the subset
	// usable as explicit light sources, populated by a catalog entry rather
	// than an override file.
	World  []core.Shape `yaml:"-"`
	Lights []core.Shape `yaml:"-"`
}

// Build validates config and constructs the Camera/World pair the renderer
// needs. It enforces spec.md §6's samples_per_pixel floor (mutating
// c.SamplesPerPixel in place so callers can read the effective value
// afterward) and rejects a scene with no geometry.
func (c *SceneConfig) Build() (*camera.Camera, *core.World, error) {
	if len(c.World) == 0 {
		return nil, nil, newConfigError(errors.New("scene has no shapes"), "build scene")
	}

	if c.SamplesPerPixel < minSamplesPerPixel {
		c.SamplesPerPixel = minSamplesPerPixel
	}

	aspectRatio := c.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 16.0 / 9.0
	}

	cam := camera.New(camera.Config{
		Center:        c.LookFrom,
		LookAt:        c.LookAt,
		Up:            c.Up,
		VFov:          c.VFov,
		AspectRatio:   aspectRatio,
		Aperture:      c.Aperture,
		FocusDistance: c.DistToFocus,
		Time0:         c.Time0,
		Time1:         c.Time1,
	})

	world := core.NewWorld(c.World, c.Lights)
	return cam, world, nil
}

// BackgroundFunc returns the constant-color miss shader spec.md §6's
// "background" field describes: every escaping ray returns the same color
// regardless of direction.
func (c *SceneConfig) BackgroundFunc() func(ray core.Ray) core.Vec3 {
	background := c.Background
	return func(core.Ray) core.Vec3 {
		return background
	}
}
