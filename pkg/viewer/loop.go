package viewer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"globeview/internal/openglhelper"
	"globeview/pkg/input"
	"globeview/pkg/render"
)

var backgroundColor = mgl32.Vec4{0.3, 0.3, 0.3, 1.0}

// Loop owns one window's frame loop: it collects input events from the GLFW
// callbacks, applies them in arrival order, and invokes the renderer once per
// frame with the resulting parameters.
type Loop struct {
	window   *openglhelper.Window
	state    *State
	router   *input.Router
	renderer render.Renderer
	log      *slog.Logger

	// Events queued by callbacks since the last frame
	pending []input.Event

	// FPS accounting
	frames    int
	fpsMarker float64
	fps       int
}

// NewLoop wires the window callbacks to the router and returns the loop.
func NewLoop(window *openglhelper.Window, state *State, router *input.Router, renderer render.Renderer, log *slog.Logger) *Loop {
	l := &Loop{
		window:   window,
		state:    state,
		router:   router,
		renderer: renderer,
		log:      log,
	}

	win := window.GLFWWindow()
	win.SetKeyCallback(l.keyCallback)
	win.SetCursorPosCallback(l.cursorPosCallback)
	win.SetMouseButtonCallback(l.mouseButtonCallback)
	win.SetScrollCallback(l.scrollCallback)
	win.SetFramebufferSizeCallback(l.framebufferSizeCallback)

	return l
}

// Run drives the frame loop until the window closes. Each iteration drains
// the pending events, derives the camera values once, and hands the frame to
// the renderer; the state is not mutated again until Render returns.
func (l *Loop) Run() error {
	baseTitle := l.window.Title()
	l.fpsMarker = glfw.GetTime()
	l.log.Debug("frame loop started")

	for !l.window.ShouldClose() {
		l.window.PollEvents()

		for _, e := range l.pending {
			l.router.Route(e)
		}
		l.pending = l.pending[:0]

		cam := l.state.Camera
		frame := render.Frame{
			MVP:     cam.ProjectionMatrix().Mul4(cam.ViewMatrix()),
			LookDir: cam.LookDir(),
			Height:  cam.Height(),
		}

		l.window.Clear(backgroundColor)
		if err := l.renderer.Render(frame, l.state); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		l.window.SwapBuffers()

		if l.tickFPS() {
			l.window.SetTitle(baseTitle + " - " + l.Overlay())
		}
	}

	return nil
}

// tickFPS counts the frame and reports whether the per-second FPS value was
// just refreshed.
func (l *Loop) tickFPS() bool {
	l.frames++
	now := glfw.GetTime()
	if now-l.fpsMarker < 1.0 {
		return false
	}
	l.fps = l.frames
	l.frames = 0
	l.fpsMarker = now
	return true
}

// Overlay returns the diagnostic line shown alongside the rendered frame.
func (l *Loop) Overlay() string {
	return fmt.Sprintf("FPS: %d - camera height: %.3f", l.fps, l.state.Camera.Height())
}

func (l *Loop) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		l.window.RequestClose()
		return
	}
	l.pending = append(l.pending, input.Event{Kind: input.KeyEvent, Key: key, Action: action})
}

func (l *Loop) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	l.pending = append(l.pending, input.Event{Kind: input.CursorEvent, X: xpos, Y: ypos})
}

func (l *Loop) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	l.pending = append(l.pending, input.Event{Kind: input.ButtonEvent, Button: button, Action: action})
}

func (l *Loop) scrollCallback(_ *glfw.Window, xoffset, yoffset float64) {
	l.pending = append(l.pending, input.Event{Kind: input.ScrollEvent, X: xoffset, Y: yoffset})
}

func (l *Loop) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	l.window.OnResize(width, height)
	l.state.Camera.UpdateProjectionMatrix(width, height)
}
