package material

import (
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// DiffuseLight is an emissive material. It absorbs every incoming ray and
// emits only towards the side its normal faces away from, so the back of an
// area light stays dark.
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a light emitting a solid color
func NewDiffuseLight(emit core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emit)}
}

// NewTexturedDiffuseLight creates a light emitting a textured color
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter absorbs the ray
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// ScatteringPDF is zero, lights do not scatter
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission when the ray faces the lit side
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, point core.Vec3) core.Vec3 {
	if hit.Normal.Dot(rayIn.Direction) < 0 {
		return d.Emit.Value(u, v, point)
	}
	return core.Vec3{}
}
