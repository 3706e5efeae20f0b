package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

func TestCosinePDF_IntegratesToOne(t *testing.T) {
	pdf := NewCosinePDF(core.NewVec3(0, 0, 1))
	random := rand.New(rand.NewSource(1))

	// Monte Carlo estimate of the pdf integral over the sphere of
	// directions: average pdf over uniform directions times 4*pi
	const samples = 200000
	sum := 0.0
	for i := 0; i < samples; i++ {
		direction := core.RandomOnUnitSphere(random)
		sum += pdf.Value(direction, random)
	}
	integral := sum / samples * 4.0 * math.Pi

	if math.Abs(integral-1.0) > 0.02 {
		t.Errorf("Expected pdf to integrate to 1, got %f", integral)
	}
}

func TestCosinePDF_GenerateMatchesValue(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	pdf := NewCosinePDF(normal)
	random := rand.New(rand.NewSource(2))

	for i := 0; i < 1000; i++ {
		direction := pdf.Generate(random)
		cosine := direction.Normalize().Dot(normal)
		if cosine < 0 {
			t.Fatalf("Generated direction %v below the surface", direction)
		}
		expected := cosine / math.Pi
		if math.Abs(pdf.Value(direction, random)-expected) > 1e-9 {
			t.Fatalf("Value disagrees with cos/pi for %v", direction)
		}
	}
}

func TestCosinePDF_ZeroBelowSurface(t *testing.T) {
	pdf := NewCosinePDF(core.NewVec3(0, 0, 1))
	random := rand.New(rand.NewSource(3))

	if v := pdf.Value(core.NewVec3(0, 0, -1), random); v != 0 {
		t.Errorf("Expected zero density below the surface, got %f", v)
	}
}

// fixedPDF returns constant densities and a fixed direction, for exercising
// the mixture arithmetic
type fixedPDF struct {
	value     float64
	direction core.Vec3
}

func (p *fixedPDF) Value(direction core.Vec3, random *rand.Rand) float64 { return p.value }
func (p *fixedPDF) Generate(random *rand.Rand) core.Vec3                 { return p.direction }

func TestMixturePDF_AveragesValues(t *testing.T) {
	a := &fixedPDF{value: 0.8, direction: core.NewVec3(1, 0, 0)}
	b := &fixedPDF{value: 0.2, direction: core.NewVec3(0, 1, 0)}
	mixture := NewMixturePDF(a, b)
	random := rand.New(rand.NewSource(4))

	if v := mixture.Value(core.NewVec3(0, 0, 1), random); math.Abs(v-0.5) > 1e-9 {
		t.Errorf("Expected averaged density 0.5, got %f", v)
	}
}

func TestMixturePDF_GeneratesFromBothSources(t *testing.T) {
	a := &fixedPDF{value: 1, direction: core.NewVec3(1, 0, 0)}
	b := &fixedPDF{value: 1, direction: core.NewVec3(0, 1, 0)}
	mixture := NewMixturePDF(a, b)
	random := rand.New(rand.NewSource(5))

	const samples = 10000
	fromA := 0
	for i := 0; i < samples; i++ {
		if mixture.Generate(random).X == 1 {
			fromA++
		}
	}
	ratio := float64(fromA) / samples
	if math.Abs(ratio-0.5) > 0.02 {
		t.Errorf("Expected a 50/50 source split, got %f", ratio)
	}
}
