package renderer

import (
	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// Reinhard compresses linear radiance into [0,1) using the luminance-scaled
// Reinhard operator, then applies gamma correction for display.
func Reinhard(c core.Vec3, gamma float64) core.Vec3 {
	luminance := 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
	if luminance > 0 {
		c = c.Multiply((luminance / (1.0 + luminance)) / luminance)
	}
	return c.Clamp(0, 1).GammaCorrect(gamma)
}
