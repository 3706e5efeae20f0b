package core

import (
	"math"
	"math/rand"
)

// RandomCosineDirection generates a cosine-weighted direction in the local
// hemisphere around +Z. Transform with an ONB to orient it around a normal.
func RandomCosineDirection(random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	z := math.Sqrt(1.0 - r2)
	phi := 2.0 * math.Pi * r1
	r2Sqrt := math.Sqrt(r2)
	return Vec3{
		X: math.Cos(phi) * r2Sqrt,
		Y: math.Sin(phi) * r2Sqrt,
		Z: z,
	}
}

// RandomInUnitSphere generates a random point inside the unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomOnUnitSphere generates a random direction on the unit sphere
func RandomOnUnitSphere(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInUnitDisk generates a random point in the unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
		}
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}
