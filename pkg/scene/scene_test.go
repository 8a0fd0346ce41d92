package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/glimt/pathtracer/pkg/core"
	"github.com/glimt/pathtracer/pkg/geometry"
	"github.com/glimt/pathtracer/pkg/material"
)

func TestScene_HitReturnsClosest(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 0, 1))

	tests := []struct {
		name  string
		order []core.Hittable
	}{
		{
			name: "Near sphere listed first",
			order: []core.Hittable{
				geometry.NewSphere(core.NewVec3(0, 0, -1), 0.25, near),
				geometry.NewSphere(core.NewVec3(0, 0, -3), 0.25, far),
			},
		},
		{
			name: "Near sphere listed last",
			order: []core.Hittable{
				geometry.NewSphere(core.NewVec3(0, 0, -3), 0.25, far),
				geometry.NewSphere(core.NewVec3(0, 0, -1), 0.25, near),
			},
		},
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scene{}
			s.Add(tt.order...)

			hit, isHit := s.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected a hit")
			}
			if math.Abs(hit.T-0.75) > 1e-9 {
				t.Errorf("Expected the closest hit at t=0.75, got %f", hit.T)
			}
			if hit.Material != core.Material(near) {
				t.Error("Expected the near sphere's material regardless of iteration order")
			}
		})
	}
}

func TestScene_HitEmpty(t *testing.T) {
	s := &Scene{}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := s.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("An empty scene should never report a hit")
	}
}

func TestScene_HitRespectsBounds(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s := &Scene{}
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, mat))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := s.Hit(ray, 0.001, 1.0); isHit {
		t.Error("Hit outside (tMin, tMax) should not be reported")
	}
	if _, isHit := s.Hit(ray, 3.0, math.Inf(1)); isHit {
		t.Error("Hit below tMin should not be reported")
	}
}

func TestNewDefaultScene(t *testing.T) {
	s, err := NewDefaultScene(16.0 / 9.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.GetCamera() == nil {
		t.Error("Scene should have a camera")
	}
	if len(s.Shapes) != 5 {
		t.Errorf("Expected 5 shapes, got %d", len(s.Shapes))
	}

	topColor, bottomColor := s.GetBackgroundColors()
	if !topColor.Equals(core.NewVec3(0.5, 0.7, 1.0)) {
		t.Errorf("Expected a sky-blue top color, got %v", topColor)
	}
	if !bottomColor.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Expected a white bottom color, got %v", bottomColor)
	}
}

func TestNewRandomScene(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	s, err := NewRandomScene(16.0/9.0, random)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Ground + three feature spheres + most of the 22x22 grid (cells too
	// close to the metal feature sphere are skipped)
	if len(s.Shapes) < 400 || len(s.Shapes) > 4+22*22 {
		t.Errorf("Unexpected shape count: %d", len(s.Shapes))
	}
}

func TestNewRandomScene_Deterministic(t *testing.T) {
	build := func() int {
		s, err := NewRandomScene(16.0/9.0, rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		return len(s.Shapes)
	}

	if build() != build() {
		t.Error("The random scene should be deterministic for a fixed seed")
	}
}
