// Command ne2features converts a Natural Earth admin-0 countries shapefile
// into the GeoJSON feature file the viewer reads, keeping only the attribute
// columns the viewer's schema needs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// Columns carried over from the shapefile. min_zoom is synthesized from the
// feature's area when the source has no such column.
var keepColumns = []string{"NAME", "ADMIN", "INCOME_GRP", "MAPCOLOR13", "ADM0CAP"}

func main() {
	inputPath := flag.String("input", "", "Path to input .shp file")
	outputPath := flag.String("output", "", "Path to output .geojson file")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		flag.Usage()
		log.Fatal("Input and output paths are required")
	}

	if err := run(*inputPath, *outputPath); err != nil {
		log.Fatal(err)
	}
}

func run(inputPath, outputPath string) error {
	shape, err := shp.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open shapefile: %w", err)
	}
	defer shape.Close()

	// Map wanted columns to their field indices
	fields := shape.Fields()
	columns := make(map[string]int)
	minZoomField := -1
	for i, f := range fields {
		name := f.String()
		for _, want := range keepColumns {
			if strings.EqualFold(name, want) {
				columns[want] = i
			}
		}
		if strings.EqualFold(name, "MIN_ZOOM") {
			minZoomField = i
		}
	}
	for _, want := range keepColumns {
		if _, ok := columns[want]; !ok {
			return fmt.Errorf("shapefile is missing column %s", want)
		}
	}

	fc := geojson.NewFeatureCollection()

	for shape.Next() {
		n, p := shape.Shape()

		poly, ok := p.(*shp.Polygon)
		if !ok {
			log.Printf("Skipping non-polygon shape: %T", p)
			continue
		}
		geometry := convertPolygon(poly)

		f := geojson.NewFeature(geometry)
		f.Properties["NAME"] = shape.ReadAttribute(n, columns["NAME"])
		f.Properties["ADMIN"] = shape.ReadAttribute(n, columns["ADMIN"])
		f.Properties["INCOME_GRP"] = shape.ReadAttribute(n, columns["INCOME_GRP"])

		mapColor, err := strconv.ParseFloat(strings.TrimSpace(shape.ReadAttribute(n, columns["MAPCOLOR13"])), 64)
		if err != nil {
			log.Printf("Skipping %s: bad MAPCOLOR13: %v", f.Properties["NAME"], err)
			continue
		}
		f.Properties["MAPCOLOR13"] = mapColor

		capital, err := strconv.ParseFloat(strings.TrimSpace(shape.ReadAttribute(n, columns["ADM0CAP"])), 64)
		if err != nil {
			capital = 0
		}
		f.Properties["ADM0CAP"] = capital

		f.Properties["min_zoom"] = minZoom(shape, n, minZoomField, geometry)

		fc.Append(f)
	}

	if err := shape.Err(); err != nil {
		return fmt.Errorf("error iterating shapes: %w", err)
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal GeoJSON: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Converted %d features to %s\n", len(fc.Features), outputPath)
	return nil
}

// minZoom reads the source MIN_ZOOM column when present, otherwise derives a
// threshold from the feature's area: large countries earn their label at a
// higher camera, small ones only when zoomed well in.
func minZoom(shape *shp.Reader, n, field int, geometry orb.Geometry) float64 {
	if field >= 0 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(shape.ReadAttribute(n, field)), 64); err == nil && v > 0 {
			return v
		}
	}

	area := math.Abs(planar.Area(geometry))
	if area <= 0 {
		return 10
	}
	z := 1 / math.Sqrt(area)
	return math.Min(math.Max(z, 0.1), 10)
}

func convertPolygon(s *shp.Polygon) orb.Polygon {
	// Simple conversion treating all parts as rings of a single polygon
	var poly orb.Polygon

	for i := 0; i < int(s.NumParts); i++ {
		start := s.Parts[i]
		end := s.NumPoints
		if i < int(s.NumParts)-1 {
			end = s.Parts[i+1]
		}

		var ring orb.Ring
		for j := start; j < end; j++ {
			ring = append(ring, orb.Point{s.Points[j].X, s.Points[j].Y})
		}
		poly = append(poly, ring)
	}
	return poly
}
