package material

import (
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// Isotropic scatters rays uniformly in all directions, used as the phase
// function of participating media. The scatter is treated as specular so the
// estimator follows the drawn direction without light sampling; a uniform
// sphere direction inside a medium gains nothing from it.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// Scatter redirects the ray to a uniformly random direction
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{
		SpecularRay: core.NewRay(hit.Point, core.RandomOnUnitSphere(random), rayIn.Time),
		IsSpecular:  true,
		Albedo:      i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}

// ScatteringPDF is zero, the scatter is followed directly
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns zero
func (i *Isotropic) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
