package renderer

import "time"

// fpsSmoothing weights the running estimate over the latest frame, keeping
// the displayed rate stable under per-frame jitter
const fpsSmoothing = 0.9

// fpsEstimator tracks an exponentially smoothed frames-per-second estimate
type fpsEstimator struct {
	smoothed float64
}

// Update folds one frame duration into the estimate and returns the new
// smoothed rate. The first frame seeds the estimate directly.
func (e *fpsEstimator) Update(frameTime time.Duration) float64 {
	if frameTime <= 0 {
		return e.smoothed
	}
	instant := float64(time.Second) / float64(frameTime)
	if e.smoothed == 0 {
		e.smoothed = instant
	} else {
		e.smoothed = e.smoothed*fpsSmoothing + instant*(1.0-fpsSmoothing)
	}
	return e.smoothed
}

// FPS returns the current smoothed estimate
func (e *fpsEstimator) FPS() float64 {
	return e.smoothed
}
