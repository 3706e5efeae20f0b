package integrator

import (
	"math"
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
	"github.com/SimpsonGSD/path-tracer/pkg/material"
)

// PathTracer computes radiance along camera rays by recursive Monte Carlo
// path tracing. Diffuse bounces importance-sample a mixture of the material
// distribution and the scene's light list; specular bounces follow the
// material's ray directly. The tracer itself is stateless and safe for
// concurrent use, all per-sample state lives in the caller's *rand.Rand.
type PathTracer struct {
	World  core.Hittable
	Lights core.Hittable // nil when the scene has no sampled lights

	// SkyBrightness scales the miss gradient. Zero makes misses black,
	// which enclosed scenes rely on.
	SkyBrightness float64

	// DisableEmissive suppresses all emitted radiance, leaving only the
	// sky to light the scene.
	DisableEmissive bool

	MaxDepth int
}

// NewPathTracer creates a path tracer over the given world
func NewPathTracer(world, lights core.Hittable, skyBrightness float64, maxDepth int) *PathTracer {
	return &PathTracer{
		World:         world,
		Lights:        lights,
		SkyBrightness: skyBrightness,
		MaxDepth:      maxDepth,
	}
}

// RayColor returns the radiance arriving along the ray. Depth counts the
// bounces taken so far; at MaxDepth the path contributes only its emission.
func (pt *PathTracer) RayColor(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	hit, ok := pt.World.Hit(ray, 0.001, math.MaxFloat64, random)
	if !ok {
		return pt.skyColor(ray)
	}

	emitted := pt.emittedLight(ray, hit)
	if depth >= pt.MaxDepth {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return emitted
	}

	if scatter.IsSpecular {
		return scatter.Albedo.MultiplyVec(pt.RayColor(scatter.SpecularRay, depth+1, random))
	}

	// Sample the bounce direction from the material PDF mixed with the
	// light list when one exists
	samplePDF := scatter.PDF
	if pt.Lights != nil {
		samplePDF = material.NewMixturePDF(material.NewHittablePDF(pt.Lights, hit.Point), scatter.PDF)
	}

	scattered := core.NewRay(hit.Point, samplePDF.Generate(random), ray.Time)
	pdfValue := samplePDF.Value(scattered.Direction, random)
	if pdfValue <= 0 {
		return emitted
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	incoming := pt.RayColor(scattered, depth+1, random)
	return emitted.Add(scatter.Albedo.Multiply(scatteringPDF / pdfValue).MultiplyVec(incoming))
}

// emittedLight returns the hit material's emission unless emissive surfaces
// are disabled
func (pt *PathTracer) emittedLight(ray core.Ray, hit *core.HitRecord) core.Vec3 {
	if pt.DisableEmissive {
		return core.Vec3{}
	}
	return hit.Material.Emitted(ray, hit, hit.U, hit.V, hit.Point)
}

// skyColor returns the miss radiance, a vertical white-to-blue gradient
// scaled by the scene's sky brightness
func (pt *PathTracer) skyColor(ray core.Ray) core.Vec3 {
	if pt.SkyBrightness <= 0 {
		return core.Vec3{}
	}
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	sky := core.Lerp(core.NewVec3All(1.0), core.NewVec3(0.5, 0.7, 1.0), t)
	return sky.Multiply(pt.SkyBrightness)
}
