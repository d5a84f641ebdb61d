// Package input defines the viewer's input events and routes them to the
// camera and display-state commands.
package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Kind discriminates the event variants.
type Kind uint8

const (
	KeyEvent Kind = iota
	CursorEvent
	ButtonEvent
	ScrollEvent
)

// Event is one discrete input event as delivered by the windowing layer.
// Cursor events carry a position in X/Y; scroll events carry wheel offsets.
type Event struct {
	Kind   Kind
	Key    glfw.Key
	Button glfw.MouseButton
	Action glfw.Action
	X, Y   float64
}

// Key constants for the viewer's command keys
const (
	KeyModeTerrain     = glfw.Key1
	KeyModeAll         = glfw.Key2
	KeyModeOecd        = glfw.Key3
	KeyModeIncome      = glfw.Key4
	KeyModeExceptional = glfw.Key5
	KeyToggleLabels    = glfw.Key0
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)
