package renderer

import (
	"math"
	"testing"
	"time"
)

func TestFPSEstimator_FirstFrameSeedsEstimate(t *testing.T) {
	var e fpsEstimator
	got := e.Update(time.Second / 60)
	if math.Abs(got-60) > 1e-9 {
		t.Errorf("Expected the first frame to seed 60 fps, got %f", got)
	}
}

func TestFPSEstimator_SmoothsTowardSteadyRate(t *testing.T) {
	var e fpsEstimator
	e.Update(time.Second / 60)

	// A single slow frame moves the estimate only a tenth of the way
	got := e.Update(time.Second / 30)
	expected := 60*fpsSmoothing + 30*(1.0-fpsSmoothing)
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected %f after one slow frame, got %f", expected, got)
	}

	// A sustained rate converges on it
	for i := 0; i < 200; i++ {
		e.Update(time.Second / 30)
	}
	if math.Abs(e.FPS()-30) > 0.01 {
		t.Errorf("Expected convergence on 30 fps, got %f", e.FPS())
	}
}

func TestFPSEstimator_IgnoresZeroFrameTime(t *testing.T) {
	var e fpsEstimator
	e.Update(time.Second / 60)
	if got := e.Update(0); math.Abs(got-60) > 1e-9 {
		t.Errorf("Zero frame time should leave the estimate alone, got %f", got)
	}
}
