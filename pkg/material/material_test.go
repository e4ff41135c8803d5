package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// fixedSampler returns the same values on every call
type fixedSampler struct {
	v1 float64
	v2 core.Vec2
	v3 core.Vec3
}

func (s *fixedSampler) Get1D() float64   { return s.v1 }
func (s *fixedSampler) Get2D() core.Vec2 { return s.v2 }
func (s *fixedSampler) Get3D() core.Vec3 { return s.v3 }

func newTestSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func almostEqual(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

func TestMaterialKinds(t *testing.T) {
	tests := []struct {
		name     string
		material *Material
		expected Kind
	}{
		{"lambertian", NewLambertian(core.NewColor(0.5, 0.5, 0.5)), KindLambertian},
		{"metal", NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.1), KindMetal},
		{"dielectric", NewDielectric(1.5), KindDielectric},
		{"diffuse_light", NewDiffuseLight(core.NewColor(4, 4, 4)), KindDiffuseLight},
		{"isotropic", NewIsotropic(NewSolidRGB(1, 1, 1)), KindIsotropic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.material.Kind() != tt.expected {
				t.Errorf("Expected kind %v, got %v", tt.expected, tt.material.Kind())
			}
			if tt.material.Kind().String() != tt.name {
				t.Errorf("Expected kind name %q, got %q", tt.name, tt.material.Kind().String())
			}
		})
	}
}

func TestEmitted(t *testing.T) {
	emission := core.NewColor(4, 3, 2)
	p := core.NewVec3(1, 2, 3)

	tests := []struct {
		name     string
		material *Material
		expected core.Color
	}{
		{"diffuse light emits its texture", NewDiffuseLight(emission), emission},
		{"lambertian is black", NewLambertian(core.NewColor(0.9, 0.9, 0.9)), core.Color{}},
		{"metal is black", NewMetal(core.NewColor(0.9, 0.9, 0.9), 0), core.Color{}},
		{"dielectric is black", NewDielectric(1.5), core.Color{}},
		{"isotropic is black", NewIsotropic(NewSolidColor(emission)), core.Color{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.material.Emitted(0.5, 0.5, p)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDiffuseLightNeverScatters(t *testing.T) {
	light := NewDiffuseLight(core.NewColor(15, 15, 15))
	hit := &HitRecord{Point: core.Vec3{}, Normal: core.NewVec3(0, 1, 0), FrontFace: true, Material: light}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	sampler := newTestSampler()

	for i := 0; i < 10; i++ {
		if _, scattered := light.Scatter(ray, hit, sampler); scattered {
			t.Fatal("Diffuse light should never scatter")
		}
	}
}

func TestTexturedDiffuseLight(t *testing.T) {
	checker := NewCheckerColors(core.NewColor(1, 1, 1), core.NewColor(0, 0, 0))
	light := NewTexturedDiffuseLight(checker)

	p := core.NewVec3(0.05, 0.05, 0.05)
	if got, want := light.Emitted(0, 0, p), checker.Value(0, 0, p); got != want {
		t.Errorf("Expected emission %v to follow texture %v", got, want)
	}
}

func TestSetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	tests := []struct {
		name           string
		direction      core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"ray from outside", core.NewVec3(0, 0, -1), true, outward},
		{"ray from inside", core.NewVec3(0, 0, 1), false, outward.Negate()},
		{"oblique from outside", core.NewVec3(1, 0, -1), true, outward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit HitRecord
			hit.SetFaceNormal(core.NewRay(core.Vec3{}, tt.direction), outward)
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Normal.Dot(tt.direction) > 0 {
				t.Error("Stored normal must oppose the incoming ray")
			}
		})
	}
}

func TestIsotropicScatter(t *testing.T) {
	albedo := core.NewColor(0.2, 0.4, 0.6)
	iso := NewIsotropic(NewSolidColor(albedo))
	hit := &HitRecord{
		Point:     core.NewVec3(1, 2, 3),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  iso,
	}
	ray := core.NewRayAtTime(core.Vec3{}, core.NewVec3(1, 2, 3), 0.25)
	sampler := newTestSampler()

	// Directions should cover both sides of the arbitrary normal
	var positive, negative int
	for i := 0; i < 1000; i++ {
		result, scattered := iso.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Isotropic should always scatter")
		}
		if result.Attenuation != albedo {
			t.Errorf("Expected attenuation %v, got %v", albedo, result.Attenuation)
		}
		if result.Scattered.Origin != hit.Point {
			t.Errorf("Scattered ray should start at hit point, got %v", result.Scattered.Origin)
		}
		if result.Scattered.Time != 0.25 {
			t.Errorf("Scattered ray should keep time 0.25, got %v", result.Scattered.Time)
		}
		if result.Scattered.Direction.NearZero() {
			t.Fatal("Scattered direction should never be zero")
		}
		if result.Scattered.Direction.X > 0 {
			positive++
		} else {
			negative++
		}
	}

	if positive < 400 || negative < 400 {
		t.Errorf("Expected roughly even split across the normal, got %d/%d", positive, negative)
	}
}
