package geometry

import (
	"math/rand"
	"sort"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// BVHNode is a node in a bounding volume hierarchy. Interior nodes hold two
// children; a leaf holds the same primitive in both child slots. The tree is
// immutable after construction and safe for concurrent traversal.
type BVHNode struct {
	notSampled
	Left  core.Hittable
	Right core.Hittable
	Box   core.AABB
}

// NewBVH builds a bounding volume hierarchy over the given hittables. The
// node boxes cover the full [time0, time1] interval so moving primitives stay
// bounded. Panics on an empty list.
func NewBVH(list []core.Hittable, time0, time1 float64, random *rand.Rand) *BVHNode {
	if len(list) == 0 {
		panic("geometry: cannot build a BVH over an empty list")
	}
	// Copy so sorting does not reorder the caller's slice
	objects := make([]core.Hittable, len(list))
	copy(objects, list)
	return buildBVH(objects, time0, time1, random)
}

func buildBVH(objects []core.Hittable, time0, time1 float64, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox(0, 0).Min.Axis(axis) < objects[j].BoundingBox(0, 0).Min.Axis(axis)
	})

	node := &BVHNode{}
	switch len(objects) {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		node.Left = objects[0]
		node.Right = objects[1]
	default:
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid], time0, time1, random)
		node.Right = buildBVH(objects[mid:], time0, time1, random)
	}

	node.Box = node.Left.BoundingBox(time0, time1).Union(node.Right.BoundingBox(time0, time1))
	return node
}

// Hit prunes on the node box then descends, tightening tMax with the left
// child's hit so the right subtree only reports closer intersections
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, leftOK := n.Left.Hit(ray, tMin, tMax, random)
	if leftOK {
		tMax = leftHit.T
	}
	rightHit, rightOK := n.Right.Hit(ray, tMin, tMax, random)
	if rightOK {
		return rightHit, true
	}
	return leftHit, leftOK
}

// BoundingBox returns the precomputed node box
func (n *BVHNode) BoundingBox(time0, time1 float64) core.AABB {
	return n.Box
}
