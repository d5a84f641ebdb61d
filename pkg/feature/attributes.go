// Package feature holds the per-country attribute records the viewer styles
// its map with. Records arrive as loosely-typed GeoJSON properties (Natural
// Earth admin-0 columns) and are validated once, at load time, into a typed
// Attributes value. Everything downstream works with the typed record only.
package feature

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
)

// IncomeGroup is the Natural Earth INCOME_GRP classification, ordered from
// highest to lowest income.
type IncomeGroup uint8

const (
	IncomeUnknown IncomeGroup = iota
	HighIncomeOECD
	HighIncomeNonOECD
	UpperMiddleIncome
	LowerMiddleIncome
	LowIncome
)

var incomeGroupNames = map[string]IncomeGroup{
	"1. High income: OECD":    HighIncomeOECD,
	"2. High income: nonOECD": HighIncomeNonOECD,
	"3. Upper middle income":  UpperMiddleIncome,
	"4. Lower middle income":  LowerMiddleIncome,
	"5. Low income":           LowIncome,
}

// ParseIncomeGroup maps the raw INCOME_GRP string to its enum value.
func ParseIncomeGroup(s string) (IncomeGroup, bool) {
	g, ok := incomeGroupNames[s]
	return g, ok
}

func (g IncomeGroup) String() string {
	for name, v := range incomeGroupNames {
		if v == g {
			return name
		}
	}
	return "unknown"
}

// MapColorBuckets is the number of distinct map-coloring buckets in the
// MAPCOLOR13 column.
const MapColorBuckets = 13

// Attributes is one feature's validated attribute record.
type Attributes struct {
	Name     string      // NAME: the feature's display name
	Admin    string      // ADMIN: name of the administrating country
	Income   IncomeGroup // INCOME_GRP
	MapColor int         // MAPCOLOR13: coloring bucket, 0-13
	Capital  bool        // ADM0CAP: feature is a capital
	MinZoom  float64     // min_zoom: camera-relative label threshold, > 0
}

// SchemaError reports a feature record that does not satisfy the attribute
// schema. It names the offending feature and field so a bad record can be
// logged and skipped without taking the whole dataset down.
type SchemaError struct {
	Feature string
	Field   string
	Reason  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("feature %q: field %q: %s", e.Feature, e.Field, e.Reason)
}

func schemaErr(feature, field, format string, args ...any) *SchemaError {
	return &SchemaError{Feature: feature, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// FromProperties validates one raw GeoJSON property map against the attribute
// schema and builds the typed record. The returned error is always a
// *SchemaError.
func FromProperties(props geojson.Properties) (Attributes, error) {
	// Resolve an identity for error messages before anything else can fail.
	id := "<unnamed>"
	if s, ok := props["NAME"].(string); ok && s != "" {
		id = s
	} else if s, ok := props["ADMIN"].(string); ok && s != "" {
		id = s
	}

	var attrs Attributes
	var err error

	if attrs.Name, err = stringProp(props, id, "NAME"); err != nil {
		return Attributes{}, err
	}
	if attrs.Admin, err = stringProp(props, id, "ADMIN"); err != nil {
		return Attributes{}, err
	}

	incomeRaw, err := stringProp(props, id, "INCOME_GRP")
	if err != nil {
		return Attributes{}, err
	}
	income, ok := ParseIncomeGroup(incomeRaw)
	if !ok {
		return Attributes{}, schemaErr(id, "INCOME_GRP", "unknown income group %q", incomeRaw)
	}
	attrs.Income = income

	mapColor, err := floatProp(props, id, "MAPCOLOR13")
	if err != nil {
		return Attributes{}, err
	}
	attrs.MapColor = int(mapColor)
	if attrs.MapColor < 0 || attrs.MapColor > MapColorBuckets {
		return Attributes{}, schemaErr(id, "MAPCOLOR13", "bucket %d out of range 0-%d", attrs.MapColor, MapColorBuckets)
	}

	capital, err := floatProp(props, id, "ADM0CAP")
	if err != nil {
		return Attributes{}, err
	}
	attrs.Capital = capital == 1

	if attrs.MinZoom, err = floatProp(props, id, "min_zoom"); err != nil {
		return Attributes{}, err
	}
	if attrs.MinZoom <= 0 {
		return Attributes{}, schemaErr(id, "min_zoom", "must be positive, got %v", attrs.MinZoom)
	}

	return attrs, nil
}

func stringProp(props geojson.Properties, feature, key string) (string, error) {
	v, present := props[key]
	if !present {
		return "", schemaErr(feature, key, "missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", schemaErr(feature, key, "expected string, got %T", v)
	}
	return s, nil
}

// floatProp accepts any numeric JSON representation; encoding/json decodes
// numbers as float64 but shapefile conversions sometimes emit ints.
func floatProp(props geojson.Properties, feature, key string) (float64, error) {
	v, present := props[key]
	if !present {
		return 0, schemaErr(feature, key, "missing")
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, schemaErr(feature, key, "expected number, got %T", v)
	}
}
