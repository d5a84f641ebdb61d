package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"globeview/internal/openglhelper"
	"globeview/pkg/feature"
)

const vertexShaderSource = `#version 460 core
layout (location = 0) in vec3 aPos;

uniform mat4 mvp;
uniform float pointSize;

void main() {
	gl_Position = mvp * vec4(aPos, 1.0);
	gl_PointSize = pointSize;
}
`

const fragmentShaderSource = `#version 460 core
uniform vec4 color;

out vec4 fragColor;

void main() {
	fragColor = color;
}
`

// Wireframe is the debug renderer the viewer ships with: feature boundaries
// as line loops on the globe surface and label anchors as points. A
// tessellating renderer plugs in behind the same Renderer interface.
type Wireframe struct {
	shader *openglhelper.Shader

	boundaryVAO *openglhelper.VertexArrayObject
	boundaryVBO *openglhelper.BufferObject
	anchorVAO   *openglhelper.VertexArrayObject
	anchorVBO   *openglhelper.BufferObject

	meshes []featureMesh
}

// NewWireframe uploads the collection's boundary and anchor geometry and
// compiles the line shader. Must be called with a current OpenGL context.
func NewWireframe(coll *feature.Collection) (*Wireframe, error) {
	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to build wireframe shader: %w", err)
	}

	verts, anchors, meshes := buildMeshes(coll)
	if len(verts) == 0 {
		shader.Delete()
		return nil, fmt.Errorf("no drawable geometry in feature collection")
	}

	w := &Wireframe{shader: shader, meshes: meshes}

	w.boundaryVAO = openglhelper.NewVAO()
	w.boundaryVAO.Bind()
	w.boundaryVBO = openglhelper.NewVBO(verts)
	w.boundaryVAO.SetVertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, 0)
	w.boundaryVAO.Unbind()

	w.anchorVAO = openglhelper.NewVAO()
	w.anchorVAO.Bind()
	w.anchorVBO = openglhelper.NewVBO(anchors)
	w.anchorVAO.SetVertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, 0)
	w.anchorVAO.Unbind()

	// The fill colors carry meaningful alpha; label points set their own size.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return w, nil
}

// Render draws one frame. The ParamSource is queried once per feature and not
// retained.
func (w *Wireframe) Render(frame Frame, params ParamSource) error {
	lod := params.LodLevel(frame.Height)
	if lod < MinLodLevel {
		lod = MinLodLevel
	}
	if lod > MaxLodLevel {
		lod = MaxLodLevel
	}

	w.shader.Use()
	w.shader.SetMat4("mvp", frame.MVP)

	w.boundaryVAO.Bind()
	for i := range w.meshes {
		mesh := &w.meshes[i]
		rgba, ok := params.PolygonColor(mesh.attrs)
		if !ok {
			continue
		}
		w.shader.SetVec4("color", colorToVec4(rgba))
		for _, s := range mesh.levels[lod] {
			gl.DrawArrays(gl.LINE_LOOP, s.first, s.count)
		}
	}
	w.boundaryVAO.Unbind()

	w.anchorVAO.Bind()
	for i := range w.meshes {
		mesh := &w.meshes[i]
		style, ok := params.LabelStyle(mesh.attrs)
		if !ok {
			continue
		}
		w.shader.SetVec4("color", mgl32.Vec4(style.TextColor))
		w.shader.SetFloat("pointSize", style.Scale)
		gl.DrawArrays(gl.POINTS, mesh.anchor, 1)
	}
	w.anchorVAO.Unbind()

	return nil
}

// Close releases the GL resources.
func (w *Wireframe) Close() {
	w.boundaryVBO.Delete()
	w.boundaryVAO.Delete()
	w.anchorVBO.Delete()
	w.anchorVAO.Delete()
	w.shader.Delete()
}

func colorToVec4(c [4]uint8) mgl32.Vec4 {
	return mgl32.Vec4{
		float32(c[0]) / 255,
		float32(c[1]) / 255,
		float32(c[2]) / 255,
		float32(c[3]) / 255,
	}
}
