// Package mapmode implements the viewer's display modes: which features are
// drawn and what color they get.
package mapmode

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"globeview/pkg/feature"
)

// Mode selects the active display style. Exactly one mode is active at a
// time; Terrain is the initial mode.
type Mode uint8

const (
	// Terrain shows the bare globe with no feature overlay.
	Terrain Mode = iota
	// All overlays every feature, colored by map-coloring bucket.
	All
	// Oecd overlays only high-income OECD countries.
	Oecd
	// Income colors every feature by its income group.
	Income
	// Exceptional highlights a single country in a time-cycling color.
	Exceptional
)

func (m Mode) String() string {
	switch m {
	case Terrain:
		return "terrain"
	case All:
		return "all"
	case Oecd:
		return "oecd"
	case Income:
		return "income"
	case Exceptional:
		return "exceptional"
	default:
		return "unknown"
	}
}

// RGBA is a packed 8-bit-per-channel color.
type RGBA [4]uint8

const exceptionalAdmin = "United States of America"

// ShouldShow reports whether a feature's overlay is drawn in this mode.
func (m Mode) ShouldShow(attrs feature.Attributes) bool {
	switch m {
	case Terrain:
		return false
	case All, Income:
		return true
	case Oecd:
		return attrs.Income == feature.HighIncomeOECD
	case Exceptional:
		return attrs.Admin == exceptionalAdmin
	default:
		return false
	}
}

// Fixed palette for Income mode, keyed by income group from highest to
// lowest.
var incomePalette = map[feature.IncomeGroup]RGBA{
	feature.HighIncomeOECD:    {0, 255, 0, 100},
	feature.HighIncomeNonOECD: {50, 200, 0, 100},
	feature.UpperMiddleIncome: {100, 150, 0, 100},
	feature.LowerMiddleIncome: {150, 200, 0, 100},
	feature.LowIncome:         {255, 0, 0, 100},
}

// Color returns the fill color for a feature in this mode. The clock is only
// consulted by Exceptional mode, whose hue cycles with wall time; every other
// mode is a pure function of the attributes.
func (m Mode) Color(attrs feature.Attributes, now time.Time) RGBA {
	switch m {
	case Terrain, All, Oecd:
		bucket := attrs.MapColor % feature.MapColorBuckets
		hue := 360.0 * float64(bucket) / float64(feature.MapColorBuckets)
		return hslColor(hue, 1.0, 0.3, 64)
	case Income:
		// Income groups outside the palette are rejected at the schema
		// boundary, so the lookup always hits.
		return incomePalette[attrs.Income]
	case Exceptional:
		hue := math.Mod(float64(now.Unix())*100, 360)
		return hslColor(hue, 1.0, 0.5, 100)
	default:
		return RGBA{}
	}
}

func hslColor(h, s, l float64, alpha uint8) RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return RGBA{r, g, b, alpha}
}
