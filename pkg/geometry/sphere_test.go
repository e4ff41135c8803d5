package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// constSampler returns the same value for every dimension
type constSampler struct {
	value float64
}

func (s constSampler) Get1D() float64   { return s.value }
func (s constSampler) Get2D() core.Vec2 { return core.NewVec2(s.value, s.value) }
func (s constSampler) Get3D() core.Vec3 { return core.NewVec3(s.value, s.value, s.value) }

func vecAlmostEqual(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

var testMaterial = material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	radius := 1.5
	sphere := NewSphere(core.NewVec3(0, 0, 0), radius, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	tests := []struct {
		name           string
		tMin           float64
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"front face hit", 0.001, 5 - radius, true, core.NewVec3(0, 0, 1)},
		{"back face hit", 5 - radius + 0.001, 5 + radius, false, core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, math.Inf(1), nil)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if !vecAlmostEqual(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != testMaterial {
				t.Error("Expected hit to carry the sphere's material")
			}
		})
	}
}

func TestSphere_Hit_IntervalIsOpen(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	tests := []struct {
		name       string
		tMin, tMax float64
		expectHit  bool
	}{
		{"both roots inside", 0, 10, true},
		{"tMax equals front root", 0, 4, false},
		{"tMin equals back root", 6, 10, false},
		{"interval between roots", 4.5, 5.5, false},
		{"tMin equals front root falls through to back", 4, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, isHit := sphere.Hit(ray, tt.tMin, tt.tMax, nil)
			if isHit != tt.expectHit {
				t.Errorf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
		})
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(1, 0, 5), core.NewVec3(0, 0, -1))

	if _, isHit := sphere.Hit(ray, 0.001, math.Inf(1), nil); isHit {
		t.Error("Expected tangent ray to miss")
	}
}

func TestSphere_NegativeRadiusFlipsNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), nil)
	if !isHit {
		t.Fatal("Expected hit on hollow sphere")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	// The outward normal points inward, so the ray arrives from the back
	if hit.FrontFace {
		t.Error("Expected back face for negative radius")
	}
	if !vecAlmostEqual(hit.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Stored normal should still face the ray, got %v", hit.Normal)
	}

	bbox := sphere.BoundingBox(0, 1)
	if bbox.Min != core.NewVec3(-1, -1, -1) || bbox.Max != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected unit box for negative radius, got %v", bbox)
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		name      string
		p         core.Vec3
		expectedU float64
		expectedV float64
		checkU    bool
	}{
		{"+X", core.NewVec3(1, 0, 0), 0.5, 0.5, true},
		{"+Z", core.NewVec3(0, 0, 1), 0.25, 0.5, true},
		{"-Z", core.NewVec3(0, 0, -1), 0.75, 0.5, true},
		{"north pole", core.NewVec3(0, 1, 0), 0, 1, false},
		{"south pole", core.NewVec3(0, -1, 0), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.p)
			if tt.checkU && math.Abs(u-tt.expectedU) > 1e-9 {
				t.Errorf("Expected u=%f, got %f", tt.expectedU, u)
			}
			if math.Abs(v-tt.expectedV) > 1e-9 {
				t.Errorf("Expected v=%f, got %f", tt.expectedV, v)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, testMaterial)
	bbox := sphere.BoundingBox(0, 1)

	if bbox.Min != core.NewVec3(0.5, 1.5, 2.5) {
		t.Errorf("Expected min (0.5,1.5,2.5), got %v", bbox.Min)
	}
	if bbox.Max != core.NewVec3(1.5, 2.5, 3.5) {
		t.Errorf("Expected max (1.5,2.5,3.5), got %v", bbox.Max)
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0, 1, 0.5, testMaterial)

	if c := sphere.Center(0.5); c != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected center (0,1,0) at t=0.5, got %v", c)
	}

	// At time 0 the ray passes above the sphere, at time 1 it goes through the center
	origin := core.NewVec3(0, 2, 5)
	direction := core.NewVec3(0, 0, -1)

	if _, isHit := sphere.Hit(core.NewRayAtTime(origin, direction, 0), 0.001, math.Inf(1), nil); isHit {
		t.Error("Expected miss at time 0")
	}

	hit, isHit := sphere.Hit(core.NewRayAtTime(origin, direction, 1), 0.001, math.Inf(1), nil)
	if !isHit {
		t.Fatal("Expected hit at time 1")
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got %f", hit.T)
	}

	bbox := sphere.BoundingBox(0, 1)
	if bbox.Min != core.NewVec3(-0.5, -0.5, -0.5) || bbox.Max != core.NewVec3(0.5, 2.5, 0.5) {
		t.Errorf("Expected box to cover the whole motion, got %v", bbox)
	}
}

func TestMovingSphere_StaticInterval(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(1, 0, 0), core.NewVec3(5, 0, 0), 0.5, 0.5, 1, testMaterial)
	if c := sphere.Center(0.9); c != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected first center for empty interval, got %v", c)
	}
}
