package scene

import (
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
	"github.com/SimpsonGSD/path-tracer/pkg/geometry"
	"github.com/SimpsonGSD/path-tracer/pkg/material"
)

// NewCornellSmoke builds the Cornell box variant where both boxes are volumes:
// the tall one filled with white smoke, the short one with black smoke. A
// faintly glowing ember sphere sits between them. The ceiling light is larger
// and dimmer than the classic box so the smoke stays readable.
func NewCornellSmoke(aspect float64) *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	ember := material.NewEmissiveLambertian(core.NewVec3(0.8, 0.4, 0.2), core.NewVec3(2, 0.8, 0.2))

	lightRect := geometry.NewRect(geometry.PlaneXZ, 113, 443, 127, 432, 554, light)
	emberSphere := geometry.NewSphere(core.NewVec3(400, 40, 100), 40, ember)

	tallBox := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295))
	shortBox := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65))

	builder := NewBuilder().
		Add(geometry.NewFlipNormals(geometry.NewRect(geometry.PlaneYZ, 0, 555, 0, 555, 555, green))).
		Add(geometry.NewRect(geometry.PlaneYZ, 0, 555, 0, 555, 0, red)).
		Add(geometry.NewFlipNormals(lightRect)).
		MarkLight(lightRect).
		Add(geometry.NewRect(geometry.PlaneXZ, 0, 555, 0, 555, 0, white)).
		Add(geometry.NewFlipNormals(geometry.NewRect(geometry.PlaneXZ, 0, 555, 0, 555, 555, white))).
		Add(geometry.NewFlipNormals(geometry.NewRect(geometry.PlaneXY, 0, 555, 0, 555, 555, white))).
		Add(geometry.NewConstantMedium(tallBox, 0.01, material.NewIsotropic(core.NewVec3(1, 1, 1)))).
		Add(geometry.NewConstantMedium(shortBox, 0.01, material.NewIsotropic(core.NewVec3(0, 0, 0)))).
		AddLight(emberSphere)

	world, lights := builder.AsBVH(0, 1, rand.New(rand.NewSource(0)))

	camera := NewCamera(
		core.NewVec3(278, 278, -800),
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
		40, aspect, 0, 10, 0, 1,
	)

	return &Scene{
		Name:          "cornell-smoke",
		World:         world,
		Lights:        lights,
		Camera:        camera,
		SkyBrightness: 0,
		Time0:         0,
		Time1:         1,
	}
}
