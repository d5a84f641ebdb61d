// Package viewer composes the camera, the map mode, and the label toggle into
// the per-frame render parameters, and owns the frame loop that feeds them to
// a renderer.
package viewer

import (
	"time"

	"globeview/pkg/camera"
	"globeview/pkg/feature"
	"globeview/pkg/mapmode"
	"globeview/pkg/render"
)

// Label styling constants
var (
	capitalTextColor = [4]float32{1, 1, 0, 1}
	normalTextColor  = [4]float32{1, 1, 1, 1}
	labelBorderColor = [4]float32{0, 0, 0, 1}
)

const (
	capitalLabelScale = 30.0
	normalLabelScale  = 20.0
	labelBorderWidth  = 1.0

	// A label shows once camera height times the feature's min_zoom drops to
	// this threshold.
	labelZoomThreshold = 1.5
)

// State is the viewer's per-frame decision state. It implements
// render.ParamSource; the renderer reads it during a single synchronous
// Render call while no input is being applied.
type State struct {
	Camera *camera.Camera

	mode          mapmode.Mode
	labelsEnabled bool

	// now is the clock Exceptional mode cycles its hue with; tests stub it.
	now func() time.Time
}

// NewState creates the initial viewer state: Terrain mode, labels off.
func NewState(cam *camera.Camera) *State {
	return &State{
		Camera: cam,
		mode:   mapmode.Terrain,
		now:    time.Now,
	}
}

// SetMode switches the active map mode unconditionally.
func (s *State) SetMode(m mapmode.Mode) {
	s.mode = m
}

// Mode returns the active map mode.
func (s *State) Mode() mapmode.Mode {
	return s.mode
}

// ToggleLabels flips the global label toggle.
func (s *State) ToggleLabels() {
	s.labelsEnabled = !s.labelsEnabled
}

// LabelsEnabled reports the global label toggle.
func (s *State) LabelsEnabled() bool {
	return s.labelsEnabled
}

// PolygonColor returns a feature's fill color, or false when the feature is
// not drawn in the active mode.
func (s *State) PolygonColor(attrs feature.Attributes) (mapmode.RGBA, bool) {
	if !s.mode.ShouldShow(attrs) {
		return mapmode.RGBA{}, false
	}
	return s.mode.Color(attrs, s.now()), true
}

// LabelStyle returns a feature's label styling, or false when the feature is
// not labeled: labels globally off, or the camera is still too high for this
// feature's min_zoom.
func (s *State) LabelStyle(attrs feature.Attributes) (render.LabelStyle, bool) {
	if !s.labelsEnabled {
		return render.LabelStyle{}, false
	}

	if float64(s.Camera.Height())*attrs.MinZoom > labelZoomThreshold {
		return render.LabelStyle{}, false
	}

	scale := float32(normalLabelScale)
	textColor := normalTextColor
	if attrs.Capital {
		scale = capitalLabelScale
		textColor = capitalTextColor
	}

	return render.LabelStyle{
		Text:        attrs.Name,
		Scale:       scale,
		TextColor:   textColor,
		BorderColor: labelBorderColor,
		BorderWidth: labelBorderWidth,
	}, true
}

// LodLevel maps the camera height to the detail level requested from the
// asset system, finest at the lowest height.
func (s *State) LodLevel(height float32) uint8 {
	switch {
	case height < 0.1:
		return 5
	case height < 0.2:
		return 4
	case height < 0.5:
		return 3
	case height < 0.7:
		return 2
	default:
		return 1
	}
}
