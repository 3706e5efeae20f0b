package geometry

import (
	"math"
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// ConstantMedium is a volume of constant density bounded by another hittable.
// A ray entering the boundary scatters after an exponentially distributed
// distance; if that distance exceeds the chord through the volume the ray
// passes through unaffected.
type ConstantMedium struct {
	notSampled
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium creates a volume with the given density and phase
// function material inside the boundary
func NewConstantMedium(boundary core.Hittable, density float64, phaseFunction core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phaseFunction,
		negInvDensity: -1.0 / density,
	}
}

// Hit finds the chord the ray cuts through the boundary and scatters inside
// it with probability depending on the density. The boundary must be convex.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	hit1, ok := m.Boundary.Hit(ray, -math.MaxFloat64, math.MaxFloat64, random)
	if !ok {
		return nil, false
	}
	hit2, ok := m.Boundary.Hit(ray, hit1.T+0.0001, math.MaxFloat64, random)
	if !ok {
		return nil, false
	}

	t1 := math.Max(hit1.T, tMin)
	t2 := math.Min(hit2.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(random.Float64())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(1, 0, 0), // arbitrary, the phase function ignores it
		Material: m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) core.AABB {
	return m.Boundary.BoundingBox(time0, time1)
}
