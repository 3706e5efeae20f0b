package scene

import (
	"math"
	"math/rand"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// Camera generates primary rays for a thin-lens pinhole camera. The source
// parameters are kept alongside the derived frame so interactive controls
// can adjust the camera and call Update to rebuild it.
type Camera struct {
	LookFrom  core.Vec3
	LookAt    core.Vec3
	VUp       core.Vec3
	VFov      float64 // Vertical field of view in degrees
	Aspect    float64
	Aperture  float64
	FocusDist float64
	Time0     float64
	Time1     float64

	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera and derives its viewing frame
func NewCamera(lookFrom, lookAt, vup core.Vec3, vfov, aspect, aperture, focusDist, time0, time1 float64) *Camera {
	c := &Camera{
		LookFrom:  lookFrom,
		LookAt:    lookAt,
		VUp:       vup,
		VFov:      vfov,
		Aspect:    aspect,
		Aperture:  aperture,
		FocusDist: focusDist,
		Time0:     time0,
		Time1:     time1,
	}
	c.Update()
	return c
}

// Update rebuilds the derived frame after any source parameter changed
func (c *Camera) Update() {
	theta := c.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	halfWidth := c.Aspect * halfHeight

	c.lensRadius = c.Aperture / 2.0
	c.origin = c.LookFrom
	c.w = c.LookFrom.Subtract(c.LookAt).Normalize()
	c.u = c.VUp.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	c.lowerLeftCorner = c.origin.
		Subtract(c.u.Multiply(halfWidth * c.FocusDist)).
		Subtract(c.v.Multiply(halfHeight * c.FocusDist)).
		Subtract(c.w.Multiply(c.FocusDist))
	c.horizontal = c.u.Multiply(2.0 * halfWidth * c.FocusDist)
	c.vertical = c.v.Multiply(2.0 * halfHeight * c.FocusDist)
}

// GetRay returns the ray through viewport coordinates (s, t) in [0,1), with
// the origin jittered over the lens and the time drawn from [Time0, Time1]
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}
	time := c.Time0 + random.Float64()*(c.Time1-c.Time0)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)
	return core.NewRay(c.origin.Add(offset), direction, time)
}

// Move shifts the camera along its own basis vectors, keeping the view
// direction, and rebuilds the frame
func (c *Camera) Move(forward, right, up float64) {
	delta := c.w.Multiply(-forward).
		Add(c.u.Multiply(right)).
		Add(c.v.Multiply(up))
	c.LookFrom = c.LookFrom.Add(delta)
	c.LookAt = c.LookAt.Add(delta)
	c.Update()
}

// Rotate yaws and pitches the view direction around the camera position, in
// degrees, and rebuilds the frame
func (c *Camera) Rotate(yaw, pitch float64) {
	dir := c.LookAt.Subtract(c.LookFrom)
	dist := dir.Length()
	dir = dir.Normalize()

	yawRad := yaw * math.Pi / 180.0
	pitchRad := pitch * math.Pi / 180.0

	// Yaw around the world up axis
	cosY, sinY := math.Cos(yawRad), math.Sin(yawRad)
	dir = core.Vec3{
		X: cosY*dir.X + sinY*dir.Z,
		Y: dir.Y,
		Z: -sinY*dir.X + cosY*dir.Z,
	}

	// Pitch around the camera's right axis, clamped short of the poles
	newY := math.Sin(math.Asin(math.Max(-1, math.Min(1, dir.Y))) + pitchRad)
	newY = math.Max(-0.99, math.Min(0.99, newY))
	horizontal := math.Sqrt(1.0 - newY*newY)
	flat := core.Vec3{X: dir.X, Y: 0, Z: dir.Z}.Normalize()
	dir = core.Vec3{X: flat.X * horizontal, Y: newY, Z: flat.Z * horizontal}

	c.LookAt = c.LookFrom.Add(dir.Multiply(dist))
	c.Update()
}
