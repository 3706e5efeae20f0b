package material

import (
	"math"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at the given UV coordinates and 3D point
	Value(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor is a uniform color texture
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures in a 3D checkerboard pattern
type Checker struct {
	Odd, Even core.Vec3
	Scale     float64
}

// NewChecker creates a checker texture with the given cell scale
func NewChecker(even, odd core.Vec3, scale float64) *Checker {
	return &Checker{Even: even, Odd: odd, Scale: scale}
}

// Value picks a color based on the sign of a product of sines of the point
func (c *Checker) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd
	}
	return c.Even
}
