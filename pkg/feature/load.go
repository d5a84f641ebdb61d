package feature

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// Feature pairs a validated attribute record with its boundary geometry and a
// label anchor point.
type Feature struct {
	Attrs    Attributes
	Geometry orb.Geometry
	Anchor   orb.Point // centroid in lon/lat, where the label is placed
}

// Collection is the validated feature set the renderer draws from.
type Collection struct {
	Features []Feature
}

// LoadCollection reads a GeoJSON feature collection and validates every record
// against the attribute schema. Records that violate the schema are logged and
// skipped rather than failing the load; a file that yields no valid feature at
// all is an error.
func LoadCollection(path string, log *slog.Logger) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature data: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feature data %s: %w", path, err)
	}

	coll := &Collection{Features: make([]Feature, 0, len(fc.Features))}
	skipped := 0
	for _, f := range fc.Features {
		attrs, err := FromProperties(f.Properties)
		if err != nil {
			log.Warn("skipping feature with invalid attributes", "error", err)
			skipped++
			continue
		}

		anchor, _ := planar.CentroidArea(f.Geometry)
		coll.Features = append(coll.Features, Feature{
			Attrs:    attrs,
			Geometry: f.Geometry,
			Anchor:   anchor,
		})
	}

	if len(coll.Features) == 0 {
		return nil, fmt.Errorf("no valid features in %s (%d skipped)", path, skipped)
	}
	if skipped > 0 {
		log.Warn("feature data partially loaded", "loaded", len(coll.Features), "skipped", skipped)
	}

	return coll, nil
}
