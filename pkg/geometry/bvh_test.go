package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MockObject for testing
type MockObject struct {
	boundingBox core.AABB
	hitFn       func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	calls       *int
}

func (m *MockObject) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if m.calls != nil {
		*m.calls++
	}
	if m.hitFn == nil {
		return nil, false
	}
	return m.hitFn(ray, tMin, tMax)
}

func (m *MockObject) BoundingBox(time0, time1 float64) core.AABB {
	return m.boundingBox
}

func unitMock(x float64) *MockObject {
	return &MockObject{boundingBox: core.NewAABB(core.NewVec3(x, 0, 0), core.NewVec3(x+1, 1, 1))}
}

func TestBVH_EmptyAndSingleObject(t *testing.T) {
	sampler := core.NewSeededSampler(42)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	empty := NewBVH(nil, 0, 1, sampler)
	if _, isHit := empty.Hit(ray, 0.001, math.Inf(1), sampler); isHit {
		t.Error("Expected no hit for empty BVH")
	}
	if stats := empty.Stats(); stats.Objects != 0 {
		t.Errorf("Expected no objects, got %d", stats.Objects)
	}

	sphere := NewSphere(core.Vec3{}, 1, testMaterial)
	single := NewBVH([]Object{sphere}, 0, 1, sampler)
	if single.Left != Object(sphere) || single.Right != nil {
		t.Error("Expected a leaf holding the sphere")
	}
	if single.Box != sphere.BoundingBox(0, 1) {
		t.Errorf("Expected leaf box %v, got %v", sphere.BoundingBox(0, 1), single.Box)
	}

	hit, isHit := single.Hit(ray, 0.001, math.Inf(1), sampler)
	if !isHit || math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected hit at t=4, got hit=%v", isHit)
	}
}

func TestBVH_TwoObjectsOrdered(t *testing.T) {
	// Lower on every axis, so it sorts first whatever axis is chosen
	low := &MockObject{boundingBox: core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))}
	high := &MockObject{boundingBox: core.NewAABB(core.NewVec3(2, 2, 2), core.NewVec3(3, 3, 3))}

	for seed := int64(0); seed < 10; seed++ {
		node := NewBVH([]Object{high, low}, 0, 1, core.NewSeededSampler(seed))
		if node.Left != Object(low) || node.Right != Object(high) {
			t.Fatalf("seed %d: expected low object on the left", seed)
		}
		if node.Box.Min != core.NewVec3(0, 0, 0) || node.Box.Max != core.NewVec3(3, 3, 3) {
			t.Errorf("seed %d: unexpected box %v", seed, node.Box)
		}
	}
}

func TestBVH_PreservesCallerOrder(t *testing.T) {
	objects := []Object{unitMock(5), unitMock(3), unitMock(1), unitMock(4), unitMock(2)}
	original := make([]Object, len(objects))
	copy(original, objects)

	NewBVH(objects, 0, 1, core.NewSeededSampler(42))

	for i := range objects {
		if objects[i] != original[i] {
			t.Fatal("NewBVH reordered the caller's slice")
		}
	}
}

func TestBVH_Stats(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"one", 1},
		{"two", 2},
		{"three", 3},
		{"many", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objects := make([]Object, tt.count)
			for i := range objects {
				objects[i] = unitMock(float64(i))
			}

			stats := NewBVH(objects, 0, 1, core.NewSeededSampler(42)).Stats()
			if stats.Objects != tt.count {
				t.Errorf("Expected %d objects, got %d", tt.count, stats.Objects)
			}
			if stats.Leaves < 1 || stats.Nodes < stats.Leaves {
				t.Errorf("Inconsistent stats %+v", stats)
			}
			// Midpoint splits keep the tree balanced
			maxDepth := int(math.Ceil(math.Log2(float64(tt.count)))) + 1
			if stats.MaxDepth > maxDepth {
				t.Errorf("Expected depth at most %d, got %d", maxDepth, stats.MaxDepth)
			}
		})
	}
}

func TestBVH_SkipsChildrenWhenBoxMissed(t *testing.T) {
	calls := 0
	objects := make([]Object, 4)
	for i := range objects {
		mock := unitMock(float64(i))
		mock.calls = &calls
		objects[i] = mock
	}
	bvh := NewBVH(objects, 0, 1, core.NewSeededSampler(42))

	ray := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(1, 0, 0))
	if _, isHit := bvh.Hit(ray, 0.001, math.Inf(1), nil); isHit {
		t.Error("Expected miss")
	}
	if calls != 0 {
		t.Errorf("Expected no child tests when the root box is missed, got %d", calls)
	}
}

func TestBVH_RightHitMustBeCloser(t *testing.T) {
	box := core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))
	hitAt := func(t float64) func(core.Ray, float64, float64) (*material.HitRecord, bool) {
		return func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
			if t <= tMin || t >= tMax {
				return nil, false
			}
			return &material.HitRecord{T: t, Point: ray.At(t)}, true
		}
	}

	near := &MockObject{boundingBox: box, hitFn: hitAt(2)}
	far := &MockObject{boundingBox: box, hitFn: hitAt(3)}
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	for _, node := range []*BVHNode{
		{Left: near, Right: far, Box: box},
		{Left: far, Right: near, Box: box},
	} {
		hit, isHit := node.Hit(ray, 0.001, math.Inf(1), nil)
		if !isHit || hit.T != 2 {
			t.Errorf("Expected nearest hit at t=2, got %v", hit)
		}
	}
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	sampler := core.NewSeededSampler(42)
	list := NewObjectList()

	for i := 0; i < 200; i++ {
		center := core.RandomVec3(sampler, -20, 20)
		radius := core.RandomRange(sampler, 0.2, 2)
		switch i % 4 {
		case 0:
			list.Add(NewSphere(center, radius, testMaterial))
		case 1:
			list.Add(NewMovingSphere(center, center.Add(core.NewVec3(0, 1, 0)), 0, 1, radius, testMaterial))
		case 2:
			list.Add(NewTranslate(NewRotateY(NewBox(core.Vec3{}, core.NewVec3(radius, radius, radius), testMaterial), 30), center))
		default:
			list.Add(NewXZRect(center.X, center.X+radius, center.Z, center.Z+radius, center.Y, testMaterial))
		}
	}

	bvh := NewBVHFromList(list, 0, 1, sampler)
	if stats := bvh.Stats(); stats.Objects != 200 {
		t.Fatalf("Expected 200 objects in BVH, got %d", stats.Objects)
	}

	hits := 0
	for i := 0; i < 2000; i++ {
		origin := core.RandomVec3(sampler, -30, 30)
		direction := core.RandomUnitVector(sampler)
		ray := core.NewRayAtTime(origin, direction, sampler.Get1D())

		expected, expectHit := list.Hit(ray, 0.001, math.Inf(1), sampler)
		got, gotHit := bvh.Hit(ray, 0.001, math.Inf(1), sampler)

		if expectHit != gotHit {
			t.Fatalf("ray %d: linear scan hit=%v, BVH hit=%v", i, expectHit, gotHit)
		}
		if !expectHit {
			continue
		}
		hits++
		if math.Abs(expected.T-got.T) > 1e-9 {
			t.Errorf("ray %d: expected t=%f, got %f", i, expected.T, got.T)
		}
		if !vecAlmostEqual(expected.Point, got.Point, 1e-9) {
			t.Errorf("ray %d: expected point %v, got %v", i, expected.Point, got.Point)
		}
	}

	if hits == 0 {
		t.Error("Expected some rays to hit the scene")
	}
}
