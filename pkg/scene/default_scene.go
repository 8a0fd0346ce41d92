package scene

import (
	"github.com/glimt/pathtracer/pkg/core"
	"github.com/glimt/pathtracer/pkg/geometry"
	"github.com/glimt/pathtracer/pkg/material"
	"github.com/glimt/pathtracer/pkg/renderer"
)

// skyBlue is the top color of the background gradient
var skyBlue = core.NewVec3(0.5, 0.7, 1.0)

// NewDefaultScene creates a fixed scene with a diffuse ground, three
// feature spheres and a hollow glass sphere, suitable for quick renders
func NewDefaultScene(aspectRatio float64) (*Scene, error) {
	camera, err := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: aspectRatio,
	})
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Camera:      camera,
		TopColor:    skyBlue,
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	centerBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, centerBlue),
		// Hollow glass: a negative-radius inner shell flips the normal
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return s, nil
}
