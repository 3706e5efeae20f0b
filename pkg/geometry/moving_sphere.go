package geometry

import (
	"math"
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly between two points
// over [Time0, Time1], sampled at the ray's time for motion blur.
type MovingSphere struct {
	notSampled
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a new moving sphere
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the interpolated center at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(t))
}

// Hit tests if a ray intersects the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(normal)
	return &core.HitRecord{
		T:        root,
		U:        u,
		V:        v,
		Point:    point,
		Normal:   normal,
		Material: s.Material,
	}, true
}

// BoundingBox covers the swept volume between the centers at time0 and time1
func (s *MovingSphere) BoundingBox(time0, time1 float64) core.AABB {
	r := core.NewVec3All(s.Radius)
	box0 := core.NewAABB(s.CenterAt(time0).Subtract(r), s.CenterAt(time0).Add(r))
	box1 := core.NewAABB(s.CenterAt(time1).Subtract(r), s.CenterAt(time1).Add(r))
	return box0.Union(box1)
}
