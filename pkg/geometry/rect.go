package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// RectPlane selects the pair of axes an axis-aligned rect spans.
type RectPlane int

const (
	// PlaneXY spans X and Y at a constant Z.
	PlaneXY RectPlane = iota
	// PlaneXZ spans X and Z at a constant Y.
	PlaneXZ
	// PlaneYZ spans Y and Z at a constant X.
	PlaneYZ
)

// rectBoxPadding keeps the bounding box of a flat rect from collapsing to a
// zero-thickness slab, which would defeat the slab intersection test.
const rectBoxPadding = 0.0001

// Rect is an axis-aligned rectangle spanning [A0,A1]x[B0,B1] on the given
// plane at constant offset K along the remaining axis.
type Rect struct {
	Plane    RectPlane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material core.Material
}

// NewRect creates an axis-aligned rect from its extents. It panics when the
// extents are inverted or describe a degenerate (zero-area) rect.
func NewRect(plane RectPlane, a0, a1, b0, b1, k float64, material core.Material) *Rect {
	if a1 <= a0 || b1 <= b0 {
		panic(fmt.Sprintf("geometry: degenerate rect extents [%g,%g]x[%g,%g]", a0, a1, b0, b1))
	}
	return &Rect{Plane: plane, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: material}
}

// NewRectFromCorners creates an axis-aligned rect from two opposite corners.
// Exactly one axis must be constant across the corners; anything else panics.
func NewRectFromCorners(p0, p1 core.Vec3, material core.Material) *Rect {
	lo := core.MinVec3(p0, p1)
	hi := core.MaxVec3(p0, p1)
	switch {
	case lo.Z == hi.Z && lo.X < hi.X && lo.Y < hi.Y:
		return NewRect(PlaneXY, lo.X, hi.X, lo.Y, hi.Y, lo.Z, material)
	case lo.Y == hi.Y && lo.X < hi.X && lo.Z < hi.Z:
		return NewRect(PlaneXZ, lo.X, hi.X, lo.Z, hi.Z, lo.Y, material)
	case lo.X == hi.X && lo.Y < hi.Y && lo.Z < hi.Z:
		return NewRect(PlaneYZ, lo.Y, hi.Y, lo.Z, hi.Z, lo.X, material)
	default:
		panic(fmt.Sprintf("geometry: corners %v and %v do not span an axis-aligned rect", p0, p1))
	}
}

// axes returns the two spanned axis indices and the constant axis index
func (r *Rect) axes() (a, b, c int) {
	switch r.Plane {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// normal returns the rect's unflipped unit normal, pointing along +c
func (r *Rect) normal() core.Vec3 {
	switch r.Plane {
	case PlaneXY:
		return core.NewVec3(0, 0, 1)
	case PlaneXZ:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(1, 0, 0)
	}
}

// Hit tests if a ray intersects the rect
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	aAxis, bAxis, cAxis := r.axes()
	dirC := ray.Direction.Axis(cAxis)
	if dirC == 0 {
		return nil, false
	}
	t := (r.K - ray.Origin.Axis(cAxis)) / dirC
	if t <= tMin || t >= tMax {
		return nil, false
	}
	a := ray.Origin.Axis(aAxis) + t*ray.Direction.Axis(aAxis)
	b := ray.Origin.Axis(bAxis) + t*ray.Direction.Axis(bAxis)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}
	return &core.HitRecord{
		T:        t,
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
		Point:    ray.At(t),
		Normal:   r.normal(),
		Material: r.Material,
	}, true
}

// BoundingBox returns a slightly padded box so the constant axis has
// non-zero extent
func (r *Rect) BoundingBox(time0, time1 float64) core.AABB {
	aAxis, bAxis, cAxis := r.axes()
	var lo, hi [3]float64
	lo[aAxis], hi[aAxis] = r.A0, r.A1
	lo[bAxis], hi[bAxis] = r.B0, r.B1
	lo[cAxis], hi[cAxis] = r.K-rectBoxPadding, r.K+rectBoxPadding
	return core.NewAABB(
		core.NewVec3(lo[0], lo[1], lo[2]),
		core.NewVec3(hi[0], hi[1], hi[2]),
	)
}

// PdfValue converts the uniform area density of Random into a solid-angle
// density for the given direction
func (r *Rect) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction, 0), 0.001, math.MaxFloat64, random)
	if !ok {
		return 0
	}
	area := (r.A1 - r.A0) * (r.B1 - r.B0)
	distSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	if cosine == 0 {
		return 0
	}
	return distSquared / (cosine * area)
}

// Random draws a direction from origin towards a uniform point on the rect
func (r *Rect) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	aAxis, bAxis, cAxis := r.axes()
	var p [3]float64
	p[aAxis] = r.A0 + random.Float64()*(r.A1-r.A0)
	p[bAxis] = r.B0 + random.Float64()*(r.B1-r.B0)
	p[cAxis] = r.K
	return core.NewVec3(p[0], p[1], p[2]).Subtract(origin)
}
