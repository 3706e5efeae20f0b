package material

import (
	"math"
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// CosinePDF is a cosine-weighted distribution over the hemisphere around a
// surface normal, used by diffuse materials.
type CosinePDF struct {
	onb core.ONB
}

// NewCosinePDF creates a cosine-weighted PDF around the given normal
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{onb: core.BuildONBFromW(normal)}
}

// Value returns cos(theta)/pi for directions above the surface, 0 below
func (p *CosinePDF) Value(direction core.Vec3, random *rand.Rand) float64 {
	cosine := direction.Normalize().Dot(p.onb.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction around the normal
func (p *CosinePDF) Generate(random *rand.Rand) core.Vec3 {
	return p.onb.Local(core.RandomCosineDirection(random))
}

// HittablePDF samples directions towards a hittable, typically the scene's
// light list.
type HittablePDF struct {
	Target core.Hittable
	Origin core.Vec3
}

// NewHittablePDF creates a PDF that samples directions towards a hittable
func NewHittablePDF(target core.Hittable, origin core.Vec3) *HittablePDF {
	return &HittablePDF{Target: target, Origin: origin}
}

// Value returns the solid-angle density the target assigns to the direction
func (p *HittablePDF) Value(direction core.Vec3, random *rand.Rand) float64 {
	return p.Target.PdfValue(p.Origin, direction, random)
}

// Generate draws a direction towards a random point on the target
func (p *HittablePDF) Generate(random *rand.Rand) core.Vec3 {
	return p.Target.Random(p.Origin, random)
}

// MixturePDF combines two distributions with equal weight. Generating picks
// either source with probability one half; the density is the average of
// both, which keeps the estimator unbiased.
type MixturePDF struct {
	A, B core.PDF
}

// NewMixturePDF creates an equal-weight mixture of two PDFs
func NewMixturePDF(a, b core.PDF) *MixturePDF {
	return &MixturePDF{A: a, B: b}
}

// Value averages the densities of both sources
func (p *MixturePDF) Value(direction core.Vec3, random *rand.Rand) float64 {
	return 0.5*p.A.Value(direction, random) + 0.5*p.B.Value(direction, random)
}

// Generate draws from either source with equal probability
func (p *MixturePDF) Generate(random *rand.Rand) core.Vec3 {
	if random.Float64() < 0.5 {
		return p.A.Generate(random)
	}
	return p.B.Generate(random)
}
