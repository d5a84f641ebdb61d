package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/paulmach/orb"

	"globeview/pkg/camera"
	"globeview/pkg/feature"
)

// LOD levels requested from the renderer, finest detail at the highest level.
const (
	MinLodLevel = 1
	MaxLodLevel = 5
)

// span addresses one ring's vertices inside the shared vertex buffer.
type span struct {
	first int32
	count int32
}

// featureMesh is one feature's boundary geometry, pre-decimated per LOD
// level, plus the index of its label anchor in the anchor buffer.
type featureMesh struct {
	attrs  feature.Attributes
	levels [MaxLodLevel + 1][]span
	anchor int32
}

// lodStride maps a LOD level to the vertex decimation stride: every level
// down from the finest doubles the stride.
func lodStride(level uint8) int {
	if level < MinLodLevel {
		level = MinLodLevel
	}
	if level > MaxLodLevel {
		level = MaxLodLevel
	}
	return 1 << (MaxLodLevel - level)
}

// sphereVertex projects a lon/lat point onto the globe surface, using the
// same spherical frame as the camera.
func sphereVertex(p orb.Point) mgl32.Vec3 {
	lon := float64(mgl32.DegToRad(float32(p[0])))
	lat := float64(mgl32.DegToRad(float32(p[1])))

	return mgl32.Vec3{
		camera.GlobeRadius * float32(math.Cos(lat)*math.Cos(lon)),
		camera.GlobeRadius * float32(math.Sin(lat)),
		camera.GlobeRadius * float32(math.Cos(lat)*math.Sin(lon)),
	}
}

// rings flattens a feature geometry into its boundary rings. Non-areal
// geometries yield nothing.
func rings(g orb.Geometry) []orb.Ring {
	switch geom := g.(type) {
	case orb.Polygon:
		return geom
	case orb.MultiPolygon:
		var out []orb.Ring
		for _, poly := range geom {
			out = append(out, poly...)
		}
		return out
	default:
		return nil
	}
}

// buildMeshes lays every feature's rings out in one shared vertex buffer,
// once per LOD level, and collects label anchors in a second buffer. Rings
// that decimate below a drawable triangle are dropped at that level.
func buildMeshes(coll *feature.Collection) (verts, anchors []float32, meshes []featureMesh) {
	for _, f := range coll.Features {
		mesh := featureMesh{attrs: f.Attrs, anchor: int32(len(anchors) / 3)}

		av := sphereVertex(f.Anchor)
		anchors = append(anchors, av.X(), av.Y(), av.Z())

		for level := uint8(MinLodLevel); level <= MaxLodLevel; level++ {
			stride := lodStride(level)
			for _, ring := range rings(f.Geometry) {
				// Rings close themselves by repeating the first point;
				// GL_LINE_LOOP closes implicitly, so drop the duplicate.
				n := len(ring)
				if n > 1 && ring[0] == ring[n-1] {
					n--
				}

				first := int32(len(verts) / 3)
				count := int32(0)
				for i := 0; i < n; i += stride {
					v := sphereVertex(ring[i])
					verts = append(verts, v.X(), v.Y(), v.Z())
					count++
				}
				if count < 3 {
					verts = verts[:first*3]
					continue
				}
				mesh.levels[level] = append(mesh.levels[level], span{first: first, count: count})
			}
		}

		meshes = append(meshes, mesh)
	}

	return verts, anchors, meshes
}
