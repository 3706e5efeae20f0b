package geometry

import (
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// HittableList is a flat collection of hittables tested linearly.
type HittableList struct {
	List []core.Hittable
}

// NewHittableList creates a hittable list from a slice of hittables
func NewHittableList(list []core.Hittable) *HittableList {
	return &HittableList{List: list}
}

// Hit returns the closest intersection across all members
func (hl *HittableList) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax
	for _, object := range hl.List {
		if hit, ok := object.Hit(ray, tMin, closestSoFar, random); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes
func (hl *HittableList) BoundingBox(time0, time1 float64) core.AABB {
	if len(hl.List) == 0 {
		return core.AABB{}
	}
	box := hl.List[0].BoundingBox(time0, time1)
	for _, object := range hl.List[1:] {
		box = box.Union(object.BoundingBox(time0, time1))
	}
	return box
}

// PdfValue averages the densities of all members, required for unbiased
// sampling when Random picks a member uniformly
func (hl *HittableList) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	if len(hl.List) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(hl.List))
	sum := 0.0
	for _, object := range hl.List {
		sum += weight * object.PdfValue(origin, direction, random)
	}
	return sum
}

// Random draws a direction towards a uniformly chosen member
func (hl *HittableList) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if len(hl.List) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	return hl.List[random.Intn(len(hl.List))].Random(origin, random)
}
