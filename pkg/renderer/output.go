package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

const displayGamma = 2.0

// WriteImage saves the tonemapped framebuffer to a PNG or PPM file, chosen
// by the file extension.
func (fb *Framebuffer) WriteImage(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return fb.writePNG(path)
	case ".ppm":
		return fb.writePPM(path)
	default:
		return fmt.Errorf("unsupported image format %q, use .png or .ppm", filepath.Ext(path))
	}
}

func (fb *Framebuffer) writePNG(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := Reinhard(fb.At(x, y), displayGamma)
			// Row 0 is the bottom of the image, PNG rows grow downward
			img.SetRGBA(x, fb.Height-1-y, color.RGBA{
				R: uint8(255.99 * c.X),
				G: uint8(255.99 * c.Y),
				B: uint8(255.99 * c.Z),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file: %v", err)
	}
	defer f.Close()
	return png.Encode(f, img)
}

func (fb *Framebuffer) writePPM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintf(w, "P3\n%d %d\n255\n", fb.Width, fb.Height)
	for y := fb.Height - 1; y >= 0; y-- {
		for x := 0; x < fb.Width; x++ {
			c := Reinhard(fb.At(x, y), displayGamma)
			fmt.Fprintf(w, "%d %d %d\n",
				int(255.99*c.X), int(255.99*c.Y), int(255.99*c.Z))
		}
	}
	return nil
}
