package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/SimpsonGSD/path-tracer/pkg/scene"
)

const (
	// Interactive passes are paced to this frame budget
	targetFrameTime = time.Second / 60

	cameraMoveSpeed   = 10.0
	skyBrightnessStep = 0.05

	// Degrees of camera rotation per pixel of cursor travel
	mouseSensitivity = 0.2
)

// InteractiveRenderer displays the progressive accumulation in an OpenGL
// window while rendering continues. Camera movement and lighting toggles
// reset the accumulation; leaving the camera alone lets the image converge.
type InteractiveRenderer struct {
	*Renderer

	window    *glfw.Window
	texFbo    uint32
	fbTexture uint32
	rgba      []uint8
	moveScale float64

	fps fpsEstimator

	mouseDown   bool
	lastCursorX float64
	lastCursorY float64
}

// NewInteractive wraps a renderer with an OpenGL window. Must be called
// from the main goroutine, the OS thread is locked for the GL context.
func NewInteractive(r *Renderer, moveScale float64) (*InteractiveRenderer, error) {
	runtime.LockOSThread()

	ir := &InteractiveRenderer{
		Renderer:  r,
		rgba:      make([]uint8, r.options.Width*r.options.Height*4),
		moveScale: moveScale,
	}
	if err := ir.initGL(); err != nil {
		ir.Close()
		return nil, err
	}
	return ir, nil
}

func (ir *InteractiveRenderer) initGL() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	var err error
	ir.window, err = glfw.CreateWindow(ir.options.Width, ir.options.Height, "path-tracer", nil, nil)
	if err != nil {
		return fmt.Errorf("could not create opengl window: %v", err)
	}
	ir.window.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		return fmt.Errorf("could not init opengl: %v", err)
	}

	// Framebuffer texture attached to a read FBO, blitted to the window
	// each frame
	gl.GenTextures(1, &ir.fbTexture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, ir.fbTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(ir.options.Width), int32(ir.options.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.GenFramebuffers(1, &ir.texFbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, ir.texFbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, ir.fbTexture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	ir.window.SetKeyCallback(ir.onKeyEvent)
	ir.window.SetMouseButtonCallback(ir.onMouseButton)
	ir.window.SetCursorPosCallback(ir.onCursorMove)
	return nil
}

// Render runs interactive passes until the window closes
func (ir *InteractiveRenderer) Render() {
	for !ir.window.ShouldClose() {
		frameStart := time.Now()

		glfw.PollEvents()
		ir.ClearIfDirty()
		ir.RenderPass(true)
		ir.blit()
		ir.window.SwapBuffers()

		if remaining := targetFrameTime - time.Since(frameStart); remaining > 0 {
			time.Sleep(remaining)
		}

		fps := ir.fps.Update(time.Since(frameStart))
		ir.window.SetTitle(fmt.Sprintf("path-tracer [%.1f fps]", fps))
	}
}

// blit tonemaps the accumulation into the texture and copies it to the
// window framebuffer
func (ir *InteractiveRenderer) blit() {
	fb := ir.Framebuffer()
	i := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := Reinhard(fb.At(x, y), displayGamma)
			ir.rgba[i+0] = uint8(255.99 * c.X)
			ir.rgba[i+1] = uint8(255.99 * c.Y)
			ir.rgba[i+2] = uint8(255.99 * c.Z)
			ir.rgba[i+3] = 255
			i += 4
		}
	}

	w, h := int32(fb.Width), int32(fb.Height)
	gl.BindTexture(gl.TEXTURE_2D, ir.fbTexture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(ir.rgba))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, ir.texFbo)
	gl.BlitFramebuffer(0, 0, w, h, 0, 0, w, h, gl.COLOR_BUFFER_BIT, gl.LINEAR)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}

func (ir *InteractiveRenderer) onKeyEvent(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	speed := cameraMoveSpeed * ir.moveScale
	if mods&glfw.ModShift == glfw.ModShift {
		speed *= 2
	}

	state := ir.State()
	switch key {
	case glfw.KeyEscape:
		ir.window.SetShouldClose(true)
	case glfw.KeyO:
		state.AdjustSkyBrightness(-skyBrightnessStep)
	case glfw.KeyP:
		state.AdjustSkyBrightness(skyBrightnessStep)
	case glfw.KeyB:
		state.ToggleEmissive()
	case glfw.KeyUp, glfw.KeyW:
		state.WithCamera(func(c *scene.Camera) { c.Move(speed, 0, 0) })
	case glfw.KeyDown, glfw.KeyS:
		state.WithCamera(func(c *scene.Camera) { c.Move(-speed, 0, 0) })
	case glfw.KeyLeft, glfw.KeyA:
		state.WithCamera(func(c *scene.Camera) { c.Move(0, -speed, 0) })
	case glfw.KeyRight, glfw.KeyD:
		state.WithCamera(func(c *scene.Camera) { c.Move(0, speed, 0) })
	case glfw.KeyPageUp:
		state.WithCamera(func(c *scene.Camera) { c.Move(0, 0, speed) })
	case glfw.KeyPageDown:
		state.WithCamera(func(c *scene.Camera) { c.Move(0, 0, -speed) })
	}
}

func (ir *InteractiveRenderer) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		ir.mouseDown = true
		ir.lastCursorX, ir.lastCursorY = w.GetCursorPos()
	case glfw.Release:
		ir.mouseDown = false
	}
}

// onCursorMove drags the view direction while the left button is held
func (ir *InteractiveRenderer) onCursorMove(w *glfw.Window, x, y float64) {
	if !ir.mouseDown {
		return
	}
	yaw := (x - ir.lastCursorX) * mouseSensitivity
	pitch := (ir.lastCursorY - y) * mouseSensitivity
	ir.lastCursorX, ir.lastCursorY = x, y
	if yaw == 0 && pitch == 0 {
		return
	}
	ir.State().WithCamera(func(c *scene.Camera) { c.Rotate(yaw, pitch) })
}

// Close tears down the window and the underlying renderer
func (ir *InteractiveRenderer) Close() {
	if ir.window != nil {
		ir.window.SetShouldClose(true)
	}
	ir.Renderer.Close()
	glfw.Terminate()
}
