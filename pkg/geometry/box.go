package geometry

import (
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// Box is an axis-aligned box assembled from six rects with outward normals.
type Box struct {
	notSampled
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates an axis-aligned box between two opposite corners
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	sides := []core.Hittable{
		NewRect(PlaneXY, p0.X, p1.X, p0.Y, p1.Y, p1.Z, material),
		NewFlipNormals(NewRect(PlaneXY, p0.X, p1.X, p0.Y, p1.Y, p0.Z, material)),
		NewRect(PlaneXZ, p0.X, p1.X, p0.Z, p1.Z, p1.Y, material),
		NewFlipNormals(NewRect(PlaneXZ, p0.X, p1.X, p0.Z, p1.Z, p0.Y, material)),
		NewRect(PlaneYZ, p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material),
		NewFlipNormals(NewRect(PlaneYZ, p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material)),
	}
	return &Box{Min: p0, Max: p1, sides: NewHittableList(sides)}
}

// Hit tests if a ray intersects any of the box faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, random)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox(time0, time1 float64) core.AABB {
	return core.NewAABB(b.Min, b.Max)
}
