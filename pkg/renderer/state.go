package renderer

import (
	"sync"

	"github.com/SimpsonGSD/path-tracer/pkg/scene"
)

// SceneState holds the mutable view of a scene shared between the render
// loop and interactive controls. Control callbacks mutate it under the lock
// and mark it dirty; the render loop snapshots it once per pass and clears
// the accumulation when it changed.
type SceneState struct {
	mutex sync.RWMutex

	scene           *scene.Scene
	skyBrightness   float64
	disableEmissive bool
	dirty           bool
}

// NewSceneState wraps a scene for shared mutation
func NewSceneState(sc *scene.Scene) *SceneState {
	return &SceneState{
		scene:         sc,
		skyBrightness: sc.SkyBrightness,
	}
}

// Scene returns the wrapped scene. The world and light list are immutable;
// only the camera and the toggles below change after construction.
func (s *SceneState) Scene() *scene.Scene {
	return s.scene
}

// WithCamera runs fn with exclusive access to the camera and marks the
// state dirty
func (s *SceneState) WithCamera(fn func(*scene.Camera)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	fn(s.scene.Camera)
	s.dirty = true
}

// AdjustSkyBrightness raises or lowers the sky contribution, floored at zero
func (s *SceneState) AdjustSkyBrightness(delta float64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.skyBrightness += delta
	if s.skyBrightness < 0 {
		s.skyBrightness = 0
	}
	s.dirty = true
}

// ToggleEmissive flips emissive surfaces on or off
func (s *SceneState) ToggleEmissive() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.disableEmissive = !s.disableEmissive
	s.dirty = true
}

// Snapshot returns the current sky brightness and emissive toggle
func (s *SceneState) Snapshot() (skyBrightness float64, disableEmissive bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.skyBrightness, s.disableEmissive
}

// ConsumeDirty reports whether the state changed since the last call and
// resets the flag
func (s *SceneState) ConsumeDirty() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	dirty := s.dirty
	s.dirty = false
	return dirty
}
