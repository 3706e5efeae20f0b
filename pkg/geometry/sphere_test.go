package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, &testMaterial{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0), 0)

	random := rand.New(rand.NewSource(1))
	if hit, ok := sphere.Hit(ray, 0.001, 1000.0, random); ok {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBack(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, &testMaterial{})
	random := rand.New(rand.NewSource(1))

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "hit from outside",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection, 0)
			hit, ok := sphere.Hit(ray, 0.001, 1000.0, random)
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_PdfValue_MatchesSolidAngle(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -10), 2.0, &testMaterial{})
	random := rand.New(rand.NewSource(2))

	origin := core.NewVec3(0, 0, 0)
	direction := core.NewVec3(0, 0, -1)

	cosThetaMax := math.Sqrt(1.0 - (2.0*2.0)/(10.0*10.0))
	expected := 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))

	got := sphere.PdfValue(origin, direction, random)
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected pdf %f, got %f", expected, got)
	}
}

func TestSphere_PdfValue_MissIsZero(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -10), 2.0, &testMaterial{})
	random := rand.New(rand.NewSource(3))

	if pdf := sphere.PdfValue(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), random); pdf != 0 {
		t.Errorf("Expected zero pdf for a direction missing the sphere, got %f", pdf)
	}
}

func TestSphere_Random_HitsSphere(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -10), 2.0, &testMaterial{})
	random := rand.New(rand.NewSource(4))
	origin := core.NewVec3(0, 0, 0)

	for i := 0; i < 1000; i++ {
		direction := sphere.Random(origin, random)
		ray := core.NewRay(origin, direction, 0)
		if _, ok := sphere.Hit(ray, 0.001, math.MaxFloat64, random); !ok {
			t.Fatalf("Sampled direction %v misses the sphere", direction)
		}
	}
}

func TestSphere_Random_InsideCoversBothHemispheres(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, &testMaterial{})
	random := rand.New(rand.NewSource(7))
	origin := core.NewVec3(0, 0, 0)

	if pdf := sphere.PdfValue(origin, core.NewVec3(0, 0, 1), random); math.Abs(pdf-1.0/(4.0*math.Pi)) > 1e-9 {
		t.Fatalf("Expected pdf 1/(4 pi) from inside the sphere, got %f", pdf)
	}

	// A uniform spherical draw puts about half the directions below the
	// equator; a cone draw clamped to one hemisphere puts none there
	const draws = 20000
	negative := 0
	for i := 0; i < draws; i++ {
		if sphere.Random(origin, random).Z < 0 {
			negative++
		}
	}
	fraction := float64(negative) / draws
	if fraction < 0.45 || fraction > 0.55 {
		t.Errorf("Expected about half the draws in -Z, got fraction %f", fraction)
	}
}

func TestSphere_Hit_UVRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, &testMaterial{})
	random := rand.New(rand.NewSource(5))

	for i := 0; i < 200; i++ {
		direction := core.RandomOnUnitSphere(random)
		ray := core.NewRay(direction.Multiply(5), direction.Negate(), 0)
		hit, ok := sphere.Hit(ray, 0.001, 1000.0, random)
		if !ok {
			t.Fatal("Expected hit through the center")
		}
		if hit.U < 0 || hit.U > 1 || hit.V < 0 || hit.V > 1 {
			t.Fatalf("UV out of range: u=%f v=%f", hit.U, hit.V)
		}
	}
}

func TestMovingSphere_Hit_FollowsCenter(t *testing.T) {
	moving := NewMovingSphere(
		core.NewVec3(0, 0, -5), core.NewVec3(10, 0, -5),
		0, 1, 1, &testMaterial{},
	)
	random := rand.New(rand.NewSource(6))

	// At time 0 the sphere sits at the origin side
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	if _, ok := moving.Hit(ray, 0.001, 1000.0, random); !ok {
		t.Error("Expected hit at time 0")
	}

	// The same ray at time 1 misses, the sphere has moved away
	ray = core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 1)
	if _, ok := moving.Hit(ray, 0.001, 1000.0, random); ok {
		t.Error("Expected miss at time 1")
	}

	// And hits at its destination
	ray = core.NewRay(core.NewVec3(10, 0, 0), core.NewVec3(0, 0, -1), 1)
	if _, ok := moving.Hit(ray, 0.001, 1000.0, random); !ok {
		t.Error("Expected hit at the time-1 center")
	}
}
