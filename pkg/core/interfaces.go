package core

import "math/rand"

// Hittable is implemented by anything a ray can intersect
type Hittable interface {
	// Hit tests the ray against the object and returns the nearest
	// intersection with t in the open interval (tMin, tMax), if any
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Material decides how a surface scatters incoming light
type Material interface {
	// Scatter returns the scattered ray and attenuation for an incoming
	// ray, or false if the ray was absorbed
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Per-channel color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The stored normal always opposes the incoming ray direction.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
