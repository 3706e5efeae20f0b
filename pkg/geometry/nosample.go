package geometry

import (
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// notSampled provides the light-sampling half of the Hittable capability for
// shapes that are never used as importance-sampling targets.
type notSampled struct{}

func (notSampled) PdfValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return 0
}

func (notSampled) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}
