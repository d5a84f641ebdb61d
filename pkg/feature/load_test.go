package feature

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLog = slog.New(slog.NewTextHandler(io.Discard, nil))

const testGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0, 0], [2, 0], [2, 2], [0, 2], [0, 0]]]
      },
      "properties": {
        "NAME": "Squareland",
        "ADMIN": "Squareland",
        "INCOME_GRP": "5. Low income",
        "MAPCOLOR13": 3,
        "ADM0CAP": 0,
        "min_zoom": 1.5
      }
    },
    {
      "type": "Feature",
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[10, 10], [11, 10], [11, 11], [10, 10]]]
      },
      "properties": {
        "NAME": "Brokenia",
        "ADMIN": "Brokenia",
        "MAPCOLOR13": 1,
        "ADM0CAP": 0,
        "min_zoom": 1.0
      }
    }
  ]
}`

func writeTempGeoJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "features.geojson")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCollectionSkipsInvalidFeatures(t *testing.T) {
	path := writeTempGeoJSON(t, testGeoJSON)

	coll, err := LoadCollection(path, discardLog)
	require.NoError(t, err)

	// Brokenia is missing INCOME_GRP and must be skipped, not fatal.
	require.Len(t, coll.Features, 1)
	f := coll.Features[0]
	assert.Equal(t, "Squareland", f.Attrs.Name)
	assert.Equal(t, LowIncome, f.Attrs.Income)

	// Centroid of the unit-ish square
	assert.InDelta(t, 1.0, f.Anchor[0], 1e-9)
	assert.InDelta(t, 1.0, f.Anchor[1], 1e-9)
}

func TestLoadCollectionMissingFile(t *testing.T) {
	_, err := LoadCollection(filepath.Join(t.TempDir(), "nope.geojson"), discardLog)
	assert.Error(t, err)
}

func TestLoadCollectionBadJSON(t *testing.T) {
	path := writeTempGeoJSON(t, "{not json")
	_, err := LoadCollection(path, discardLog)
	assert.Error(t, err)
}

func TestLoadCollectionAllInvalid(t *testing.T) {
	path := writeTempGeoJSON(t, `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]},
      "properties": {"NAME": "Nowhere"}
    }
  ]
}`)

	_, err := LoadCollection(path, discardLog)
	assert.Error(t, err)
}
