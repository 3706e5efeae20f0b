package material

import (
	"math"
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// Lambertian is a perfectly diffuse material, optionally with a uniform
// emissive term on top of the reflected light.
type Lambertian struct {
	Albedo   Texture
	Emissive core.Vec3
}

// NewLambertian creates a diffuse material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a diffuse material with a texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewEmissiveLambertian creates a diffuse material that also emits light
func NewEmissiveLambertian(albedo core.Vec3, emissive core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo), Emissive: emissive}
}

// Scatter returns a cosine-weighted distribution around the surface normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{
		IsSpecular: false,
		Albedo:     l.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:        NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF returns cos(theta)/pi, clamped at zero below the surface
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

// Emitted returns the material's uniform emissive term
func (l *Lambertian) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, point core.Vec3) core.Vec3 {
	return l.Emissive
}
