package core

import "math/rand"

// HitRecord contains information about a ray-object intersection. It is
// produced fresh on every successful intersection and read-only afterwards.
type HitRecord struct {
	T        float64 // Parameter t along the ray
	U, V     float64 // Surface parametrization
	Point    Vec3    // World-space intersection point
	Normal   Vec3    // Surface normal at the intersection
	Material Material
}

// Hittable is the capability of testing ray intersection, providing a
// bounding box and, for shapes used as importance-sampling targets,
// converting directions to and from solid-angle densities.
type Hittable interface {
	// Hit returns the closest intersection within [tMin, tMax], if any.
	Hit(ray Ray, tMin, tMax float64, random *rand.Rand) (*HitRecord, bool)

	// BoundingBox returns a box covering the shape over [time0, time1].
	BoundingBox(time0, time1 float64) AABB

	// PdfValue returns the solid-angle density of sampling the given
	// direction from origin towards this shape. Shapes that are never
	// importance-sampled return 0.
	PdfValue(origin, direction Vec3, random *rand.Rand) float64

	// Random returns a direction from origin towards a random point on
	// this shape.
	Random(origin Vec3, random *rand.Rand) Vec3
}

// PDF represents a samplable distribution over directions. PDFs are
// request-scoped: built per shading event and never persisted.
type PDF interface {
	// Value returns the probability density of the given direction.
	Value(direction Vec3, random *rand.Rand) float64

	// Generate draws a direction from the distribution.
	Generate(random *rand.Rand) Vec3
}

// ScatterResult describes how a material redirected a ray: either a specular
// ray to follow directly, or a sampling distribution for the estimator.
type ScatterResult struct {
	SpecularRay Ray
	IsSpecular  bool
	Albedo      Vec3
	PDF         PDF
}

// Material is the closed set of scattering models. All materials are
// immutable and shared by reference across the primitives using them.
type Material interface {
	// Scatter returns how the incoming ray continues, or false if the
	// material absorbs it.
	Scatter(rayIn Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)

	// ScatteringPDF evaluates the BRDF sampling density for a scattered
	// direction. Only meaningful for non-specular materials; others return 0.
	ScatteringPDF(rayIn Ray, hit *HitRecord, scattered Ray) float64

	// Emitted returns the radiance emitted towards the incoming ray.
	// Non-emissive materials return zero.
	Emitted(rayIn Ray, hit *HitRecord, u, v float64, point Vec3) Vec3
}
