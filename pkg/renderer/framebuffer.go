package renderer

import (
	"golang.org/x/image/math/f32"

	"github.com/SimpsonGSD/path-tracer/pkg/core"
)

// Framebuffer accumulates radiance progressively. Each pixel stores linear
// RGB in the first three components and the number of accumulated frames in
// the fourth, so the blend weight of the next sample is derived per pixel.
//
// Pixels are stored row-major with row 0 at the bottom of the image.
type Framebuffer struct {
	Width, Height int
	pixels        []f32.Vec4
}

// NewFramebuffer creates a cleared framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]f32.Vec4, width*height),
	}
}

// Accumulate blends a new radiance sample into the pixel with weight
// 1/frames, converging on the running mean
func (fb *Framebuffer) Accumulate(x, y int, sample core.Vec3) {
	p := &fb.pixels[y*fb.Width+x]
	frames := p[3] + 1
	w := float32(1.0) / frames
	p[0] = float32(sample.X)*w + p[0]*(1-w)
	p[1] = float32(sample.Y)*w + p[1]*(1-w)
	p[2] = float32(sample.Z)*w + p[2]*(1-w)
	p[3] = frames
}

// At returns the accumulated mean radiance of a pixel
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	p := fb.pixels[y*fb.Width+x]
	return core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2]))
}

// Frames returns how many samples the pixel has accumulated
func (fb *Framebuffer) Frames(x, y int) int {
	return int(fb.pixels[y*fb.Width+x][3])
}

// Clear resets all accumulation, called when the camera or scene changes
func (fb *Framebuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = f32.Vec4{}
	}
}
