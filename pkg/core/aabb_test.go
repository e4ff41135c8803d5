package core

import (
	"math"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		tMin     float64
		tMax     float64
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), 0.001, math.Inf(1), true},
		{"misses above", NewRay(NewVec3(0, 2, 5), NewVec3(0, 0, -1)), 0.001, math.Inf(1), false},
		{"misses diagonally", NewRay(NewVec3(3, 3, 5), NewVec3(0.1, 0.1, -1)), 0.001, math.Inf(1), false},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), 0.001, math.Inf(1), false},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 2, 3)), 0.001, math.Inf(1), true},
		{"origin inside unbounded behind", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), math.Inf(-1), math.Inf(1), true},
		{"interval ends before box", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), 0.001, 3.0, false},
		{"parallel inside slab", NewRay(NewVec3(0.5, 0.5, 5), NewVec3(0, 0, -1)), 0.001, math.Inf(1), true},
		{"parallel outside slab", NewRay(NewVec3(1.5, 0.5, 5), NewVec3(0, 0, -1)), 0.001, math.Inf(1), false},
		{"negative direction", NewRay(NewVec3(5, 0, 0), NewVec3(-1, 0, 0)), 0.001, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.tMin, tt.tMax); got != tt.expected {
				t.Errorf("Expected hit=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestAABB_UnionAndEmpty(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-2, 0.5, 0.5), NewVec3(0.5, 3, 0.75))

	u := SurroundingBox(a, b)
	if u.Min != NewVec3(-2, 0, 0) || u.Max != NewVec3(1, 3, 1) {
		t.Errorf("Unexpected union %v", u)
	}

	empty := EmptyAABB()
	if empty.IsValid() {
		t.Error("Empty box must not be valid")
	}
	if empty.Union(a) != a {
		t.Errorf("Empty box must be the identity for Union, got %v", empty.Union(a))
	}
	if empty.Hit(NewRay(NewVec3(0, 0, 0), NewVec3(1, 1, 1)), math.Inf(-1), math.Inf(1)) {
		t.Error("Empty box must never be hit")
	}
}

func TestAABB_Corners(t *testing.T) {
	box := NewAABB(NewVec3(0, 1, 2), NewVec3(3, 4, 5))
	corners := box.Corners()

	rebuilt := NewAABBFromPoints(corners[:]...)
	if rebuilt != box {
		t.Errorf("Corners do not span the box: %v", rebuilt)
	}

	seen := make(map[Vec3]bool)
	for _, c := range corners {
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("Expected 8 distinct corners, got %d", len(seen))
	}
}

func TestAABB_Translate(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1)).Translate(NewVec3(1, 2, 3))
	if box.Min != NewVec3(1, 2, 3) || box.Max != NewVec3(2, 3, 4) {
		t.Errorf("Unexpected translated box %v", box)
	}
}
