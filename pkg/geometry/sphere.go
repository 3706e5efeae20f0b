package geometry

import (
	"math"
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// Sphere is a stationary sphere.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// sphereUV maps a point on the unit sphere to (u,v) surface coordinates
func sphereUV(p core.Vec3) (u, v float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(math.Max(-1, math.Min(1, p.Y)))
	u = 1.0 - (phi+math.Pi)/(2.0*math.Pi)
	v = (theta + math.Pi/2.0) / math.Pi
	return u, v
}

// Hit tests if a ray intersects the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
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
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
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

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) core.AABB {
	r := core.NewVec3All(s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// PdfValue converts a direction from origin into the density of sampling it
// uniformly over the solid angle subtended by the sphere's visible cone
func (s *Sphere) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction, 0), 0.001, math.MaxFloat64, random); !ok {
		return 0
	}
	distSquared := s.Center.Subtract(origin).LengthSquared()
	ratio := s.Radius * s.Radius / distSquared
	if ratio >= 1.0 {
		// Origin inside the sphere, the whole sphere of directions hits
		return 1.0 / (4.0 * math.Pi)
	}
	cosThetaMax := math.Sqrt(1.0 - ratio)
	solidAngle := 2.0 * math.Pi * (1.0 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}
	return 1.0 / solidAngle
}

// Random draws a direction from origin towards the sphere, uniform over the
// visible cone. From inside the sphere every direction hits, so the draw is
// uniform over the full sphere to match PdfValue's 1/(4 pi) density.
func (s *Sphere) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	distSquared := toCenter.LengthSquared()
	if distSquared <= s.Radius*s.Radius {
		return core.RandomOnUnitSphere(random)
	}
	onb := core.BuildONBFromW(toCenter)
	return onb.Local(randomToSphere(s.Radius, distSquared, random))
}

// randomToSphere samples a direction inside the cone subtended by a sphere
// of the given radius at the given squared distance, in local +Z space.
// Requires distSquared > radius*radius.
func randomToSphere(radius, distSquared float64, random *rand.Rand) core.Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	ratio := radius * radius / distSquared
	z := 1.0 + r2*(math.Sqrt(1.0-ratio)-1.0)
	phi := 2.0 * math.Pi * r1
	sinTheta := math.Sqrt(math.Max(0, 1.0-z*z))
	return core.Vec3{
		X: math.Cos(phi) * sinTheta,
		Y: math.Sin(phi) * sinTheta,
		Z: z,
	}
}
