package scene

import (
	"fmt"

	"github.com/SimpsonGSD/path-tracer/log"
	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

var logger = log.New("scene")

// Scene bundles everything the renderer needs: the world to intersect, the
// curated light list for importance sampling, the camera and the sky
// brightness. Lights is nil when no surface is worth sampling directly.
type Scene struct {
	Name          string
	World         core.Hittable
	Lights        core.Hittable
	Camera        *Camera
	SkyBrightness float64
	Time0, Time1  float64
}

// A Factory builds a scene for the given output aspect ratio.
type Factory func(aspect float64) *Scene

var factories = map[string]Factory{
	"cornell":       NewCornellBox,
	"cornell-smoke": NewCornellSmoke,
	"spheres":       NewRandomSpheres,
	"simple-light":  NewSimpleLight,
}

// Names returns the registered scene names
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// Create builds the named scene, or errors when the name is unknown
func Create(name string, aspect float64) (*Scene, error) {
	factory, exists := factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown scene %q, known scenes: %v", name, Names())
	}
	return factory(aspect), nil
}
