package scene

import (
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
	"github.com/SimpsonGSD/path-tracer/pkg/geometry"
	"github.com/SimpsonGSD/path-tracer/pkg/material"
)

// NewRandomSpheres builds a field of small random spheres around three large
// ones over a checkered ground, lit entirely by the sky. Some diffuse
// spheres move during the shutter interval to exercise motion blur. The
// layout is seeded so every run produces the same scene.
func NewRandomSpheres(aspect float64) *Scene {
	random := rand.New(rand.NewSource(42))
	builder := NewBuilder()

	ground := material.NewTexturedLambertian(
		material.NewChecker(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9), 10))
	builder.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMat := random.Float64()
			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				diffuse := material.NewLambertian(albedo)
				if random.Float64() < 0.33 {
					center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
					builder.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, diffuse))
				} else {
					builder.Add(geometry.NewSphere(center, 0.2, diffuse))
				}
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				)
				builder.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.5*random.Float64())))
			default:
				builder.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	builder.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	builder.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	builder.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	world, lights := builder.AsBVH(0, 1, random)

	camera := NewCamera(
		core.NewVec3(13, 2, 3),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		20, aspect, 0.1, 10, 0, 1,
	)

	return &Scene{
		Name:          "spheres",
		World:         world,
		Lights:        lights,
		Camera:        camera,
		SkyBrightness: 1,
		Time0:         0,
		Time1:         1,
	}
}
