package geometry

import (
	"math"
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// FlipNormals wraps a hittable and negates its surface normal, used to point
// a face towards the inside of an enclosing volume.
type FlipNormals struct {
	Inner core.Hittable
}

// NewFlipNormals wraps a hittable with flipped normals
func NewFlipNormals(inner core.Hittable) *FlipNormals {
	return &FlipNormals{Inner: inner}
}

// Hit delegates to the wrapped hittable and negates the hit normal
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	hit, ok := f.Inner.Hit(ray, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

// BoundingBox is unchanged by flipping normals
func (f *FlipNormals) BoundingBox(time0, time1 float64) core.AABB {
	return f.Inner.BoundingBox(time0, time1)
}

// PdfValue delegates to the wrapped hittable, the density does not depend on
// normal orientation
func (f *FlipNormals) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return f.Inner.PdfValue(origin, direction, random)
}

// Random delegates to the wrapped hittable
func (f *FlipNormals) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return f.Inner.Random(origin, random)
}

// Translate wraps a hittable and offsets it by a fixed displacement. The ray
// is shifted into the wrapped hittable's space instead of moving geometry.
type Translate struct {
	Inner  core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps a hittable with a translation
func NewTranslate(inner core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit offsets the ray into local space and the hit point back out
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	moved := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, ok := t.Inner.Hit(moved, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the wrapped box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) core.AABB {
	box := t.Inner.BoundingBox(time0, time1)
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset))
}

// PdfValue evaluates the wrapped density from the untranslated origin
func (t *Translate) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return t.Inner.PdfValue(origin.Subtract(t.Offset), direction, random)
}

// Random draws a direction towards the translated hittable
func (t *Translate) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return t.Inner.Random(origin.Subtract(t.Offset), random)
}

// RotateY wraps a hittable and rotates it around the Y axis. The bounding box
// is recomputed from the rotated corners of the wrapped box.
type RotateY struct {
	notSampled
	Inner    core.Hittable
	sinTheta float64
	cosTheta float64
}

// NewRotateY wraps a hittable with a rotation of the given angle in degrees
func NewRotateY(inner core.Hittable, degrees float64) *RotateY {
	radians := degrees * math.Pi / 180.0
	return &RotateY{
		Inner:    inner,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// toLocal rotates a vector by -theta into the wrapped hittable's space
func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	return core.Vec3{
		X: r.cosTheta*v.X - r.sinTheta*v.Z,
		Y: v.Y,
		Z: r.sinTheta*v.X + r.cosTheta*v.Z,
	}
}

// toWorld rotates a vector by +theta back into world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.Vec3{
		X: r.cosTheta*v.X + r.sinTheta*v.Z,
		Y: v.Y,
		Z: -r.sinTheta*v.X + r.cosTheta*v.Z,
	}
}

// Hit rotates the ray into local space and the hit point and normal back out
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	rotated := core.NewRay(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)
	hit, ok := r.Inner.Hit(rotated, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox bounds the eight rotated corners of the wrapped box
func (r *RotateY) BoundingBox(time0, time1 float64) core.AABB {
	box := r.Inner.BoundingBox(time0, time1)
	lo := core.NewVec3All(math.MaxFloat64)
	hi := core.NewVec3All(-math.MaxFloat64)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.Vec3{
					X: float64(i)*box.Max.X + float64(1-i)*box.Min.X,
					Y: float64(j)*box.Max.Y + float64(1-j)*box.Min.Y,
					Z: float64(k)*box.Max.Z + float64(1-k)*box.Min.Z,
				}
				rotated := r.toWorld(corner)
				lo = core.MinVec3(lo, rotated)
				hi = core.MaxVec3(hi, rotated)
			}
		}
	}
	return core.NewAABB(lo, hi)
}
