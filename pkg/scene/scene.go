package scene

import (
	"github.com/glimt/pathtracer/pkg/core"
	"github.com/glimt/pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It is immutable
// once construction finishes and shared read-only across render workers.
type Scene struct {
	Camera      *renderer.Camera
	Shapes      []core.Hittable // Objects in the scene
	TopColor    core.Vec3       // Background gradient at +y
	BottomColor core.Vec3       // Background gradient at -y
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...core.Hittable) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hit tests the ray against every shape and returns the nearest
// intersection in (tMin, tMax). The upper bound shrinks as closer hits are
// found, so the returned record is the globally nearest one.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors returns the background gradient endpoint colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}
