package renderer

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/glimt/pathtracer/pkg/core"
)

// tMinEpsilon is the lower intersection bound that prevents a scattered ray
// from immediately re-hitting the surface it just left (shadow acne)
const tMinEpsilon = 0.001

// Scene is the world the raytracer renders. Declared here to avoid a
// circular import with the scene package.
type Scene interface {
	core.Hittable
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Raytracer computes radiance estimates for individual rays
type Raytracer struct {
	scene Scene
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{scene: scene}
}

// backgroundGradient returns a gradient color based on ray direction.
// This is the only light source in the scene.
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// RayColor returns the radiance estimate for a ray by recursively following
// scattered rays until the bounce budget is exhausted, the ray is absorbed,
// or it escapes to the background
func (rt *Raytracer) RayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.Hit(r, tMinEpsilon, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, random)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth-1, random))
}

// finalizePixel averages accumulated samples, applies gamma correction
// (gamma = 2.0) and converts to an 8-bit RGBA pixel
func finalizePixel(colorAccum core.Vec3, samplesPerPixel int) color.RGBA {
	colorVec := colorAccum.Multiply(1.0 / float64(samplesPerPixel))

	// NaNs from degenerate geometry must never reach the output
	if math.IsNaN(colorVec.X) || math.IsNaN(colorVec.Y) || math.IsNaN(colorVec.Z) {
		colorVec = core.Vec3{}
	}

	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 0.999)

	return color.RGBA{
		R: uint8(256 * colorVec.X),
		G: uint8(256 * colorVec.Y),
		B: uint8(256 * colorVec.Z),
		A: 255,
	}
}
