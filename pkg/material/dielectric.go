package material

import (
	"math"
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// Dielectric is a clear refractive material such as glass or water. Each hit
// reflects or refracts stochastically with the Schlick approximation to the
// Fresnel term.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material with the given refractive index
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// refract bends v through a surface with normal n and the given index ratio,
// returning false on total internal reflection
func refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	unit := v.Normalize()
	dt := unit.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := unit.Subtract(n.Multiply(dt)).Multiply(niOverNt).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// schlick approximates the Fresnel reflectance at the given angle
func schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1.0 - refractiveIndex) / (1.0 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1.0-r0)*math.Pow(1.0-cosine, 5)
}

// Scatter reflects or refracts the ray depending on a Bernoulli draw against
// the Schlick reflectance
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	var outwardNormal core.Vec3
	var niOverNt, cosine float64

	dirDotNormal := rayIn.Direction.Dot(hit.Normal)
	if dirDotNormal > 0 {
		// Leaving the medium
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * dirDotNormal / rayIn.Direction.Length()
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dirDotNormal / rayIn.Direction.Length()
	}

	reflectProbability := 1.0
	refracted, canRefract := refract(rayIn.Direction, outwardNormal, niOverNt)
	if canRefract {
		reflectProbability = schlick(cosine, d.RefractiveIndex)
	}

	direction := refracted
	if random.Float64() < reflectProbability {
		direction = reflect(rayIn.Direction.Normalize(), hit.Normal)
	}
	return core.ScatterResult{
		SpecularRay: core.NewRay(hit.Point, direction, rayIn.Time),
		IsSpecular:  true,
		Albedo:      core.NewVec3All(1.0),
	}, true
}

// ScatteringPDF is zero, both branches are delta distributions
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns zero, dielectrics do not emit
func (d *Dielectric) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
