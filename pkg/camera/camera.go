// Package camera implements the orbit camera that owns the viewer's
// navigation state. The camera circles a unit sphere centered at the origin;
// its height above the surface is the single scalar every zoom-dependent
// decision in the viewer keys off.
package camera

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"globeview/pkg/input"
)

// Camera orbits the globe. All state is mutated through Event; the matrix and
// height accessors are pure reads.
type Camera struct {
	// Orbit state, degrees
	lon    float32
	lat    float32
	height float32

	// Tuning
	rotateSpeed float32
	zoomStep    float32
	minHeight   float32
	maxHeight   float32

	// Drag state
	dragging    bool
	firstCursor bool
	lastX       float64
	lastY       float64

	// Projection
	projection mgl32.Mat4
	winWidth   int
	winHeight  int
}

// Options tune the camera's input response and height clamp.
type Options struct {
	RotateSpeed float32
	ZoomStep    float32
	StartHeight float32
	MinHeight   float32
	MaxHeight   float32
}

// DefaultOptions returns the tuning the viewer ships with.
func DefaultOptions() Options {
	return Options{
		RotateSpeed: DefaultRotateSpeed,
		ZoomStep:    DefaultZoomStep,
		StartHeight: DefaultHeight,
		MinHeight:   MinHeight,
		MaxHeight:   MaxHeight,
	}
}

// New creates a camera looking at the globe from opts.StartHeight above the
// surface. Zero or negative option fields fall back to the defaults, so the
// height clamp can never be degenerate.
func New(opts Options) *Camera {
	def := DefaultOptions()
	if opts.RotateSpeed <= 0 {
		opts.RotateSpeed = def.RotateSpeed
	}
	if opts.ZoomStep <= 1 {
		opts.ZoomStep = def.ZoomStep
	}
	if opts.MinHeight <= 0 {
		opts.MinHeight = def.MinHeight
	}
	if opts.MaxHeight <= opts.MinHeight {
		opts.MaxHeight = def.MaxHeight
	}
	if opts.StartHeight <= 0 {
		opts.StartHeight = def.StartHeight
	}

	c := &Camera{
		rotateSpeed: opts.RotateSpeed,
		zoomStep:    opts.ZoomStep,
		minHeight:   opts.MinHeight,
		maxHeight:   opts.MaxHeight,
		firstCursor: true,
		winWidth:    800,
		winHeight:   600,
	}
	c.height = c.clampHeight(opts.StartHeight)
	c.updateProjectionMatrix()

	return c
}

// Event consumes one input event. Unrecognized events are no-ops; Event never
// panics on malformed input.
func (c *Camera) Event(e input.Event) {
	switch e.Kind {
	case input.ButtonEvent:
		c.handleButton(e)
	case input.CursorEvent:
		c.handleCursor(e.X, e.Y)
	case input.ScrollEvent:
		c.zoom(e.Y)
	case input.KeyEvent:
		c.handleKey(e)
	}
}

func (c *Camera) handleButton(e input.Event) {
	if e.Button != glfw.MouseButtonLeft {
		return
	}
	switch e.Action {
	case input.Press:
		c.dragging = true
		c.firstCursor = true
	case input.Release:
		c.dragging = false
	}
}

func (c *Camera) handleCursor(xpos, ypos float64) {
	if !c.dragging {
		return
	}
	if c.firstCursor {
		c.lastX = xpos
		c.lastY = ypos
		c.firstCursor = false
		return
	}

	xoffset := float32(xpos - c.lastX)
	yoffset := float32(ypos - c.lastY)
	c.lastX = xpos
	c.lastY = ypos

	// Scale rotation by height so a drag covers roughly the same ground
	// distance at any zoom level.
	step := c.rotateSpeed * c.height
	c.rotate(-xoffset*step, yoffset*step)
}

func (c *Camera) handleKey(e input.Event) {
	if e.Action != input.Press && e.Action != input.Repeat {
		return
	}
	step := float32(KeyRotateStep) * c.height
	switch e.Key {
	case glfw.KeyLeft:
		c.rotate(step, 0)
	case glfw.KeyRight:
		c.rotate(-step, 0)
	case glfw.KeyUp:
		c.rotate(0, step)
	case glfw.KeyDown:
		c.rotate(0, -step)
	}
}

func (c *Camera) rotate(dlon, dlat float32) {
	c.lon += dlon
	if c.lon >= 360 {
		c.lon -= 360
	}
	if c.lon < 0 {
		c.lon += 360
	}

	c.lat += dlat
	if c.lat > MaxLatitude {
		c.lat = MaxLatitude
	}
	if c.lat < MinLatitude {
		c.lat = MinLatitude
	}
}

// zoom applies one scroll tick. Zoom is exponential in the tick count, so the
// perceived speed is uniform across heights.
func (c *Camera) zoom(yoffset float64) {
	factor := float32(math.Pow(float64(c.zoomStep), -yoffset))
	c.height = c.clampHeight(c.height * factor)
}

func (c *Camera) clampHeight(h float32) float32 {
	if h < c.minHeight {
		return c.minHeight
	}
	if h > c.maxHeight {
		return c.maxHeight
	}
	return h
}

// position is the camera's location in world space.
func (c *Camera) position() mgl32.Vec3 {
	lat := float64(mgl32.DegToRad(c.lat))
	lon := float64(mgl32.DegToRad(c.lon))
	r := float32(GlobeRadius) + c.height

	return mgl32.Vec3{
		r * float32(math.Cos(lat)*math.Cos(lon)),
		r * float32(math.Sin(lat)),
		r * float32(math.Cos(lat)*math.Sin(lon)),
	}
}

// ViewMatrix returns the view transform for the current frame.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// LookDir returns the camera's normalized look direction, pointing at the
// orbit center.
func (c *Camera) LookDir() mgl32.Vec3 {
	return c.position().Mul(-1).Normalize()
}

// Height returns the camera's height above the globe surface. It is always
// strictly positive.
func (c *Camera) Height() float32 {
	return c.height
}

// Orientation returns the current orbit angles in degrees.
func (c *Camera) Orientation() (lon, lat float32) {
	return c.lon, c.lat
}

func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.winWidth) / float32(c.winHeight)
	c.projection = mgl32.Perspective(mgl32.DegToRad(DefaultFOV), aspect, NearPlane, FarPlane)
}

// UpdateProjectionMatrix updates the projection matrix with new framebuffer
// dimensions.
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.winWidth = width
	c.winHeight = height
	c.updateProjectionMatrix()
}

// ProjectionMatrix returns the current projection matrix.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}
