package scene

import (
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
	"github.com/SimpsonGSD/path-tracer/pkg/geometry"
	"github.com/SimpsonGSD/path-tracer/pkg/material"
)

// NewCornellBox builds the Cornell box: an enclosed room lit by a single
// ceiling light, with a rotated tall box and a glass sphere. Both the light
// and the sphere are importance-sampled. The sky contributes nothing.
func NewCornellBox(aspect float64) *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	glass := material.NewDielectric(1.5)

	lightRect := geometry.NewRect(geometry.PlaneXZ, 213, 343, 227, 332, 554, light)
	glassSphere := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, glass)

	builder := NewBuilder().
		Add(geometry.NewFlipNormals(geometry.NewRect(geometry.PlaneYZ, 0, 555, 0, 555, 555, green))).
		Add(geometry.NewRect(geometry.PlaneYZ, 0, 555, 0, 555, 0, red)).
		Add(geometry.NewFlipNormals(lightRect)).
		MarkLight(lightRect).
		Add(geometry.NewRect(geometry.PlaneXZ, 0, 555, 0, 555, 0, white)).
		Add(geometry.NewFlipNormals(geometry.NewRect(geometry.PlaneXZ, 0, 555, 0, 555, 555, white))).
		Add(geometry.NewFlipNormals(geometry.NewRect(geometry.PlaneXY, 0, 555, 0, 555, 555, white))).
		Add(geometry.NewTranslate(
			geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
			core.NewVec3(265, 0, 295))).
		AddLight(glassSphere)

	world, lights := builder.AsBVH(0, 1, rand.New(rand.NewSource(0)))

	camera := NewCamera(
		core.NewVec3(278, 278, -800),
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
		40, aspect, 0, 10, 0, 1,
	)

	return &Scene{
		Name:          "cornell",
		World:         world,
		Lights:        lights,
		Camera:        camera,
		SkyBrightness: 0,
		Time0:         0,
		Time1:         1,
	}
}
