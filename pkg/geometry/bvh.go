package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is a node in the Bounding Volume Hierarchy. A leaf holds a single
// object in Left and a nil Right. Interior children are either further nodes
// or, when exactly two objects remain, the objects themselves.
type BVHNode struct {
	Left  Object
	Right Object
	Box   core.AABB
}

// bvhEntry pairs an object with its box so construction computes each box once
type bvhEntry struct {
	object Object
	box    core.AABB
}

// NewBVH builds a hierarchy over objects valid for ray times in [time0, time1].
// The sampler picks the split axis at each level.
func NewBVH(objects []Object, time0, time1 float64, sampler core.Sampler) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{Box: core.EmptyAABB()}
	}

	// Work on a copy so the caller's slice is left in order
	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		entries[i] = bvhEntry{object: object, box: object.BoundingBox(time0, time1)}
	}

	return buildBVH(entries, sampler)
}

// NewBVHFromList builds a hierarchy over the members of a list
func NewBVHFromList(list *ObjectList, time0, time1 float64, sampler core.Sampler) *BVHNode {
	return NewBVH(list.Objects, time0, time1, sampler)
}

func buildBVH(entries []bvhEntry, sampler core.Sampler) *BVHNode {
	axis := core.RandomInt(sampler, 3)
	less := func(a, b bvhEntry) bool {
		return a.box.Min.Axis(axis) < b.box.Min.Axis(axis)
	}

	switch len(entries) {
	case 1:
		return &BVHNode{Left: entries[0].object, Box: entries[0].box}
	case 2:
		left, right := entries[0], entries[1]
		if less(right, left) {
			left, right = right, left
		}
		return &BVHNode{
			Left:  left.object,
			Right: right.object,
			Box:   core.SurroundingBox(left.box, right.box),
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	mid := len(entries) / 2
	left := buildBVH(entries[:mid], sampler)
	right := buildBVH(entries[mid:], sampler)

	return &BVHNode{
		Left:  left,
		Right: right,
		Box:   core.SurroundingBox(left.Box, right.Box),
	}
}

// Hit tests the left subtree first and narrows the interval so the right
// subtree can only report a strictly closer hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if n.Left == nil || !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = leftHit.T
	}

	if n.Right != nil {
		if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler); hitRight {
			return rightHit, true
		}
	}

	return leftHit, hitLeft
}

// BoundingBox returns the cached box of the subtree
func (n *BVHNode) BoundingBox(time0, time1 float64) core.AABB {
	return n.Box
}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	Nodes    int // interior and leaf nodes
	Leaves   int // nodes holding objects directly
	Objects  int // objects reachable through the tree
	MaxDepth int // depth of the deepest node, root is 1
}

// Stats walks the tree and collects its statistics
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(1, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	holdsObjects := false
	for _, child := range []Object{n.Left, n.Right} {
		if child == nil {
			continue
		}
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Objects++
			holdsObjects = true
		}
	}

	if holdsObjects {
		stats.Leaves++
	}
}
