package scene

import (
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
	"github.com/SimpsonGSD/path-tracer/pkg/geometry"
)

// Builder accumulates hittables and the subset that the integrator should
// importance-sample as lights, then finalizes the world as a BVH or a flat
// list.
type Builder struct {
	objects []core.Hittable
	lights  []core.Hittable
}

// NewBuilder creates an empty scene builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a hittable to the world
func (b *Builder) Add(h core.Hittable) *Builder {
	b.objects = append(b.objects, h)
	return b
}

// AddLight appends a hittable to the world and marks it as a sampling
// target. The sampled shape keeps its unflipped orientation; pass the
// geometry itself, not a FlipNormals wrapper.
func (b *Builder) AddLight(h core.Hittable) *Builder {
	b.objects = append(b.objects, h)
	b.lights = append(b.lights, h)
	return b
}

// MarkLight marks an already-added hittable (or a stand-in shape matching
// its placement) as a sampling target without adding it to the world
func (b *Builder) MarkLight(h core.Hittable) *Builder {
	b.lights = append(b.lights, h)
	return b
}

// AsBVH finalizes the world as a bounding volume hierarchy
func (b *Builder) AsBVH(time0, time1 float64, random *rand.Rand) (world, lights core.Hittable) {
	return geometry.NewBVH(b.objects, time0, time1, random), b.lightList()
}

// AsList finalizes the world as a flat list, useful for small scenes and
// traversal comparisons
func (b *Builder) AsList() (world, lights core.Hittable) {
	return geometry.NewHittableList(b.objects), b.lightList()
}

func (b *Builder) lightList() core.Hittable {
	switch len(b.lights) {
	case 0:
		logger.Warning("scene has no sampled lights, falling back to material sampling only")
		return nil
	case 1:
		return b.lights[0]
	default:
		return geometry.NewHittableList(b.lights)
	}
}
