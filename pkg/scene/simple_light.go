package scene

import (
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
	"github.com/SimpsonGSD/path-tracer/pkg/geometry"
	"github.com/SimpsonGSD/path-tracer/pkg/material"
)

// NewSimpleLight builds a dark scene with a diffuse sphere lit by a rect
// light and an emissive sphere, both importance-sampled.
func NewSimpleLight(aspect float64) *Scene {
	ground := material.NewTexturedLambertian(
		material.NewChecker(core.NewVec3(0.3, 0.3, 0.3), core.NewVec3(0.7, 0.7, 0.7), 4))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	builder := NewBuilder().
		Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground)).
		Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewLambertian(core.NewVec3(0.6, 0.5, 0.4)))).
		AddLight(geometry.NewRect(geometry.PlaneXY, 3, 5, 1, 3, -2, light)).
		AddLight(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))

	world, lights := builder.AsBVH(0, 1, rand.New(rand.NewSource(0)))

	camera := NewCamera(
		core.NewVec3(26, 3, 6),
		core.NewVec3(0, 2, 0),
		core.NewVec3(0, 1, 0),
		20, aspect, 0, 26, 0, 1,
	)

	return &Scene{
		Name:          "simple-light",
		World:         world,
		Lights:        lights,
		Camera:        camera,
		SkyBrightness: 0,
		Time0:         0,
		Time1:         1,
	}
}
