// Package camera implements a thin-lens perspective camera that generates
// primary rays for each pixel sample, with optional depth of field and
// shutter-interval motion blur.
package camera

import (
	"math"
	"math/rand"

	"github.com/pathtracer/engine/pkg/core"
)

// Config describes a camera's placement and lens parameters, grounded on the
// lookfrom/lookat/vup/vfov/aspect_ratio convention of a standard raytracer
// camera, extended with an aperture/focus distance pair for depth of field
// and a shutter interval for motion blur.
type Config struct {
	Center      core.Vec3 // lookfrom
	LookAt      core.Vec3
	Up          core.Vec3 // vup
	VFov        float64   // vertical field of view, in degrees
	AspectRatio float64
	Width       int

	Aperture      float64 // lens diameter; 0 disables depth of field
	FocusDistance float64 // distance to the focal plane; 0 auto-derives from Center/LookAt

	Time0, Time1 float64 // shutter open/close times for motion blur
}

// Camera generates rays through a virtual sensor positioned by Config.
type Camera struct {
	config Config

	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// New builds a Camera from config.
func New(config Config) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.Center).Length()
		if focusDistance == 0 {
			focusDistance = 1.0
		}
	}

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	halfWidth := config.AspectRatio * halfHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	horizontal := u.Multiply(2 * halfWidth * focusDistance)
	vertical := v.Multiply(2 * halfHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		config:          config,
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2.0,
	}
}

// GetRay generates a ray through screen coordinates (s, t), where 0<=s,t<=1
// map to the left/right and bottom/top edges of the sensor respectively. The
// ray originates from a random point on the lens (for depth of field) and is
// cast at a random time within the shutter interval (for motion blur).
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
		origin = origin.Add(offset)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.config.Time0
	if c.config.Time1 > c.config.Time0 {
		time = core.RandomRange(random, c.config.Time0, c.config.Time1)
	}

	return core.NewRayAt(origin, direction, time)
}

// Forward returns the camera's normalized viewing direction.
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}
