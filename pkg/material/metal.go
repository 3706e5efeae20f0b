package material

import (
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// Metal is a specular reflector with an optional fuzz factor that perturbs
// the reflected ray for a brushed look.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64
}

// NewMetal creates a metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// reflect mirrors v around the normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2.0 * v.Dot(n)))
}

// Scatter reflects the ray, perturbed by fuzz. Rays fuzzed below the surface
// are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))
	}
	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}
	return core.ScatterResult{
		SpecularRay: core.NewRay(hit.Point, reflected, rayIn.Time),
		IsSpecular:  true,
		Albedo:      m.Albedo,
	}, true
}

// ScatteringPDF is zero, the reflection is a delta distribution
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns zero, metals do not emit
func (m *Metal) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
