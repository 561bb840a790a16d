// Package viewer shows prepared render batches in an interactive SDL2
// window: drag with the left mouse button to orbit, scroll to zoom, Escape
// to quit.
package viewer

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/objmesh/internal/config"
	"github.com/Faultbox/objmesh/internal/logger"
	"github.com/Faultbox/objmesh/internal/render"
	"github.com/Faultbox/objmesh/internal/render/gpu"
	"github.com/Faultbox/objmesh/internal/texture"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

var (
	clearColor = mgl32.Vec3{0.15, 0.15, 0.18}
	lightDir   = mgl32.Vec3{-0.4, -1, -0.6}
)

// Run opens a window, uploads batches and draws them until the window is
// closed. model places the meshes in world space, usually render.FitMeshes.
//
// Texture pixels are released from loader once they are on the GPU.
func Run(title string, cfg config.GraphicsConfig, batches []render.Batch, loader *texture.Loader, model mgl32.Mat4) error {
	log := logger.Named("viewer")

	if len(batches) == 0 {
		return fmt.Errorf("nothing to draw")
	}

	win, err := openWindow(title, cfg, log)
	if err != nil {
		return err
	}
	defer win.close()

	prog, err := newProgram()
	if err != nil {
		return fmt.Errorf("shader: %w", err)
	}
	defer prog.delete()

	meshes, err := gpu.UploadAll(batches, loader)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	defer gpu.DeleteAll(meshes)

	log.Info("meshes uploaded", zap.Int("meshes", len(meshes)), zap.Int("textures", loader.Len()))
	loader.Clear()

	state := newInputState()
	width, height := win.drawableSize()
	gl.Viewport(0, 0, width, height)
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(clearColor.X(), clearColor.Y(), clearColor.Z(), 1)

	for state.running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			state.handle(event)
		}
		if state.resized {
			width, height = win.drawableSize()
			gl.Viewport(0, 0, width, height)
			state.resized = false
		}

		drawFrame(prog, meshes, state.orbit, width, height, model)
		win.swap()
	}

	return nil
}

func drawFrame(prog *program, meshes []*gpu.Mesh, orbit render.Orbit, width, height int32, model mgl32.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	mvp := modelViewProjection(orbit, width, height, model)
	gl.UseProgram(prog.id)
	gl.UniformMatrix4fv(prog.mvp, 1, false, &mvp[0])
	gl.UniformMatrix4fv(prog.model, 1, false, &model[0])
	gl.Uniform1i(prog.texture, 0)
	gl.Uniform3f(prog.lightDir, lightDir.X(), lightDir.Y(), lightDir.Z())

	for _, m := range meshes {
		if m.UseTexture {
			gl.Uniform1i(prog.useTexture, 1)
		} else {
			gl.Uniform1i(prog.useTexture, 0)
			gl.Uniform3f(prog.color, m.Color[0], m.Color[1], m.Color[2])
		}
		m.Draw()
	}
	gl.UseProgram(0)
}

func modelViewProjection(orbit render.Orbit, width, height int32, model mgl32.Mat4) mgl32.Mat4 {
	return render.Projection(width, height).Mul4(orbit.View()).Mul4(model)
}

// inputState turns window events into camera movement.
type inputState struct {
	orbit    render.Orbit
	running  bool
	resized  bool
	dragging bool
}

func newInputState() *inputState {
	return &inputState{orbit: render.NewOrbit(), running: true}
}

func (s *inputState) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.running = false

	case *sdl.KeyboardEvent:
		if e.State == sdl.PRESSED && e.Keysym.Sym == sdl.K_ESCAPE {
			s.running = false
		}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			s.resized = true
		}

	case *sdl.MouseButtonEvent:
		if e.Button == sdl.BUTTON_LEFT {
			s.dragging = e.State == sdl.PRESSED
		}

	case *sdl.MouseMotionEvent:
		if s.dragging {
			s.orbit.Rotate(float32(e.XRel), float32(e.YRel))
		}

	case *sdl.MouseWheelEvent:
		s.orbit.Zoom(float32(e.Y))
	}
}
