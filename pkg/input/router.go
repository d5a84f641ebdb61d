package input

import (
	"globeview/pkg/mapmode"
)

// CameraSink consumes raw input events; the camera controller implements it.
type CameraSink interface {
	Event(Event)
}

// DisplayState receives the discrete display commands: mode selection and the
// label toggle.
type DisplayState interface {
	SetMode(mapmode.Mode)
	ToggleLabels()
}

// Router dispatches input events. Every event is forwarded to the camera,
// since pointing devices report motion and button state together; key presses
// are additionally interpreted as display commands.
type Router struct {
	camera  CameraSink
	display DisplayState
}

func NewRouter(camera CameraSink, display DisplayState) *Router {
	return &Router{camera: camera, display: display}
}

// Route applies one event. Events it does not recognize are no-ops beyond the
// camera forward.
func (r *Router) Route(e Event) {
	r.camera.Event(e)

	if e.Kind != KeyEvent || e.Action != Press {
		return
	}

	switch e.Key {
	case KeyModeTerrain:
		r.display.SetMode(mapmode.Terrain)
	case KeyModeAll:
		r.display.SetMode(mapmode.All)
	case KeyModeOecd:
		r.display.SetMode(mapmode.Oecd)
	case KeyModeIncome:
		r.display.SetMode(mapmode.Income)
	case KeyModeExceptional:
		r.display.SetMode(mapmode.Exceptional)
	case KeyToggleLabels:
		r.display.ToggleLabels()
	}
}
