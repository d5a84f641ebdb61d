package camera

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globeview/pkg/input"
)

func scroll(ticks float64) input.Event {
	return input.Event{Kind: input.ScrollEvent, Y: ticks}
}

func leftButton(action glfw.Action) input.Event {
	return input.Event{Kind: input.ButtonEvent, Button: glfw.MouseButtonLeft, Action: action}
}

func cursor(x, y float64) input.Event {
	return input.Event{Kind: input.CursorEvent, X: x, Y: y}
}

func TestNewDefaults(t *testing.T) {
	c := New(DefaultOptions())

	assert.InDelta(t, DefaultHeight, c.Height(), 1e-6)
	lon, lat := c.Orientation()
	assert.Zero(t, lon)
	assert.Zero(t, lat)
}

func TestHeightStaysPositive(t *testing.T) {
	c := New(DefaultOptions())

	// Zoom in far past the clamp
	for i := 0; i < 500; i++ {
		c.Event(scroll(1))
	}
	assert.InDelta(t, MinHeight, c.Height(), 1e-6)
	assert.Greater(t, c.Height(), float32(0))

	// And back out past the other clamp
	for i := 0; i < 500; i++ {
		c.Event(scroll(-1))
	}
	assert.InDelta(t, MaxHeight, c.Height(), 1e-4)
}

func TestZoomIsMonotonicInScrollDirection(t *testing.T) {
	c := New(DefaultOptions())

	before := c.Height()
	c.Event(scroll(1))
	assert.Less(t, c.Height(), before, "scrolling up zooms in")

	before = c.Height()
	c.Event(scroll(-1))
	assert.Greater(t, c.Height(), before, "scrolling down zooms out")
}

func TestDragRotates(t *testing.T) {
	c := New(DefaultOptions())

	// Motion without the button held does nothing.
	c.Event(cursor(100, 100))
	c.Event(cursor(200, 150))
	lon, lat := c.Orientation()
	assert.Zero(t, lon)
	assert.Zero(t, lat)

	// Press, then move: the first sample only anchors the drag.
	c.Event(leftButton(glfw.Press))
	c.Event(cursor(100, 100))
	lon, lat = c.Orientation()
	assert.Zero(t, lon)
	assert.Zero(t, lat)

	c.Event(cursor(120, 90))
	lon, lat = c.Orientation()
	assert.NotZero(t, lon)
	assert.NotZero(t, lat)

	// Release stops the drag.
	c.Event(leftButton(glfw.Release))
	lonAfter, latAfter := c.Orientation()
	c.Event(cursor(500, 500))
	lon, lat = c.Orientation()
	assert.Equal(t, lonAfter, lon)
	assert.Equal(t, latAfter, lat)
}

func TestLatitudeClampsAtPoles(t *testing.T) {
	c := New(DefaultOptions())

	c.Event(leftButton(glfw.Press))
	c.Event(cursor(0, 0))
	for i := 1; i <= 100; i++ {
		c.Event(cursor(0, float64(i)*100))
	}
	_, lat := c.Orientation()
	assert.InDelta(t, MaxLatitude, lat, 1e-3)

	for i := 1; i <= 200; i++ {
		c.Event(cursor(0, -float64(i)*100))
	}
	_, lat = c.Orientation()
	assert.InDelta(t, MinLatitude, lat, 1e-3)
}

func TestArrowKeysRotate(t *testing.T) {
	c := New(DefaultOptions())

	c.Event(input.Event{Kind: input.KeyEvent, Key: glfw.KeyLeft, Action: glfw.Press})
	lon, _ := c.Orientation()
	assert.NotZero(t, lon)

	c.Event(input.Event{Kind: input.KeyEvent, Key: glfw.KeyUp, Action: glfw.Press})
	_, lat := c.Orientation()
	assert.NotZero(t, lat)

	// Releases are ignored.
	before, _ := c.Orientation()
	c.Event(input.Event{Kind: input.KeyEvent, Key: glfw.KeyLeft, Action: glfw.Release})
	lon, _ = c.Orientation()
	assert.Equal(t, before, lon)
}

func TestUnrecognizedEventsAreNoOps(t *testing.T) {
	c := New(DefaultOptions())
	before := *c

	assert.NotPanics(t, func() {
		c.Event(input.Event{Kind: input.Kind(99), X: 1e9, Y: -1e9})
		c.Event(input.Event{Kind: input.KeyEvent, Key: glfw.KeyF12, Action: glfw.Press})
		c.Event(input.Event{Kind: input.ButtonEvent, Button: glfw.MouseButtonRight, Action: glfw.Press})
	})

	assert.Equal(t, before.height, c.height)
	assert.Equal(t, before.lon, c.lon)
	assert.Equal(t, before.lat, c.lat)
}

func TestViewMatrixLooksAtOrigin(t *testing.T) {
	c := New(DefaultOptions())

	// At lon 0, lat 0 the camera sits on the +X axis at distance 1+height;
	// the view transform must place the origin straight ahead.
	dist := float32(GlobeRadius) + c.Height()
	origin := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	require.InDelta(t, 0, origin.X(), 1e-5)
	require.InDelta(t, 0, origin.Y(), 1e-5)
	require.InDelta(t, -dist, origin.Z(), 1e-5)

	look := c.LookDir()
	assert.InDelta(t, -1, look.X(), 1e-6)
	assert.InDelta(t, 0, look.Y(), 1e-6)
	assert.InDelta(t, 0, look.Z(), 1e-6)
	assert.InDelta(t, 1, look.Len(), 1e-6)
}

func TestOptionFallbacks(t *testing.T) {
	c := New(Options{RotateSpeed: -1, ZoomStep: 0.5, StartHeight: -3, MinHeight: -1, MaxHeight: -1})

	def := DefaultOptions()
	assert.InDelta(t, def.StartHeight, c.Height(), 1e-6)
	assert.Equal(t, def.RotateSpeed, c.rotateSpeed)
	assert.Equal(t, def.ZoomStep, c.zoomStep)
	assert.Equal(t, float32(def.MinHeight), c.minHeight)
	assert.Equal(t, float32(def.MaxHeight), c.maxHeight)
}
