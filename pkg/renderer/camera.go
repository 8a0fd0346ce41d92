package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/glimt/pathtracer/pkg/core"
)

// CameraConfig contains the view specification for a camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Target position
	Up            core.Vec3 // Up direction for the view plane
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 = pinhole camera
	FocusDistance float64   // Distance to the plane of perfect focus
}

// Camera generates rays for rendering. It is immutable after construction
// and safe for concurrent use.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from the view specification. It returns an
// error for non-positive field of view or aspect ratio, and for an up
// vector parallel to the view direction.
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera aspect ratio must be positive, got %g", config.AspectRatio)
	}
	if config.VFov <= 0 {
		return nil, fmt.Errorf("camera vertical fov must be positive, got %g", config.VFov)
	}
	if config.Aperture < 0 {
		return nil, fmt.Errorf("camera aperture must not be negative, got %g", config.Aperture)
	}

	// Pinhole cameras focus everywhere; default the focus plane to unit
	// distance so the viewport math stays uniform
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = 1.0
	}

	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	// Orthonormal basis: w points from the target back toward the eye
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w)
	if u.LengthSquared() == 0 {
		return nil, fmt.Errorf("camera up vector is parallel to the view direction")
	}
	u = u.Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

// GetRay generates a ray for normalized screen coordinates (s, t) where
// 0 <= s,t <= 1. With a non-zero aperture the ray origin is jittered on the
// lens disk, producing depth of field.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	offset := core.NewVec3(0, 0, 0)
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}
