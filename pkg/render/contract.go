// Package render defines the per-frame contract between the viewer's decision
// logic and a renderer, plus the debug wireframe renderer the viewer ships
// with. A renderer receives one Frame and one ParamSource per frame and asks
// the source for drawing parameters once per feature; the source must stay
// valid only for the duration of the Render call.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"globeview/pkg/feature"
	"globeview/pkg/mapmode"
)

// LabelStyle describes how one feature's label is drawn. Colors are RGBA in
// 0-1 floats.
type LabelStyle struct {
	Text        string
	Scale       float32
	TextColor   [4]float32
	BorderColor [4]float32
	BorderWidth float32
}

// Frame carries the camera-derived values for one frame.
type Frame struct {
	MVP     mgl32.Mat4
	LookDir mgl32.Vec3
	Height  float32
}

// ParamSource supplies the renderer's per-feature drawing decisions. The
// boolean results signal "skip": a false PolygonColor means the feature's
// fill is not drawn, a false LabelStyle means it gets no label.
type ParamSource interface {
	PolygonColor(attrs feature.Attributes) (mapmode.RGBA, bool)
	LabelStyle(attrs feature.Attributes) (LabelStyle, bool)
	LodLevel(height float32) uint8
}

// Renderer draws one frame from the supplied parameters. Implementations must
// not retain the ParamSource across calls.
type Renderer interface {
	Render(frame Frame, params ParamSource) error
	Close()
}
