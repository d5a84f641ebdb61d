package mapmode

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globeview/pkg/feature"
)

func sampleAttrs() feature.Attributes {
	return feature.Attributes{
		Name:     "Austria",
		Admin:    "Austria",
		Income:   feature.HighIncomeOECD,
		MapColor: 4,
		MinZoom:  1.0,
	}
}

func TestTerrainNeverShows(t *testing.T) {
	attrs := []feature.Attributes{
		{},
		sampleAttrs(),
		{Admin: "United States of America", Income: feature.LowIncome, MapColor: 12},
	}
	for _, a := range attrs {
		assert.False(t, Terrain.ShouldShow(a))
	}
}

func TestAllAndIncomeAlwaysShow(t *testing.T) {
	for _, m := range []Mode{All, Income} {
		assert.True(t, m.ShouldShow(feature.Attributes{}), "mode %s", m)
		assert.True(t, m.ShouldShow(sampleAttrs()), "mode %s", m)
	}
}

func TestOecdFiltersByIncomeGroup(t *testing.T) {
	a := sampleAttrs()
	assert.True(t, Oecd.ShouldShow(a))

	for _, g := range []feature.IncomeGroup{
		feature.HighIncomeNonOECD,
		feature.UpperMiddleIncome,
		feature.LowerMiddleIncome,
		feature.LowIncome,
	} {
		a.Income = g
		assert.False(t, Oecd.ShouldShow(a), "income group %s", g)
	}
}

func TestExceptionalShowsOnlyTheDesignatedAdmin(t *testing.T) {
	a := sampleAttrs()
	a.Admin = "United States of America"
	assert.True(t, Exceptional.ShouldShow(a))

	for _, admin := range []string{"", "Austria", "united states of america", "Canada"} {
		a.Admin = admin
		assert.False(t, Exceptional.ShouldShow(a), "admin %q", admin)
	}
}

func TestBucketColor(t *testing.T) {
	now := time.Now()
	a := sampleAttrs()

	for _, m := range []Mode{Terrain, All, Oecd} {
		got := m.Color(a, now)

		r, g, b := colorful.Hsl(360.0*4.0/13.0, 1.0, 0.3).Clamped().RGB255()
		assert.Equal(t, RGBA{r, g, b, 64}, got, "mode %s", m)
	}
}

func TestBucketHueWrapsAtThirteen(t *testing.T) {
	now := time.Now()
	a := sampleAttrs()

	a.MapColor = 0
	zero := All.Color(a, now)
	a.MapColor = 13
	thirteen := All.Color(a, now)

	assert.Equal(t, zero, thirteen)
}

func TestBucketHueMonotonic(t *testing.T) {
	now := time.Now()
	a := sampleAttrs()

	prev := -1.0
	for bucket := 0; bucket <= 12; bucket++ {
		a.MapColor = bucket
		c := All.Color(a, now)

		h, _, _ := colorful.Color{
			R: float64(c[0]) / 255,
			G: float64(c[1]) / 255,
			B: float64(c[2]) / 255,
		}.Hsl()
		require.Greater(t, h, prev, "bucket %d", bucket)
		prev = h
	}
}

func TestIncomeColorsAreFixedPalette(t *testing.T) {
	now := time.Now()
	a := sampleAttrs()

	want := map[feature.IncomeGroup]RGBA{
		feature.HighIncomeOECD:    {0, 255, 0, 100},
		feature.HighIncomeNonOECD: {50, 200, 0, 100},
		feature.UpperMiddleIncome: {100, 150, 0, 100},
		feature.LowerMiddleIncome: {150, 200, 0, 100},
		feature.LowIncome:         {255, 0, 0, 100},
	}
	for group, expected := range want {
		a.Income = group
		assert.Equal(t, expected, Income.Color(a, now), "income group %s", group)
		// Pure in the attributes: a second call is identical.
		assert.Equal(t, expected, Income.Color(a, now.Add(time.Hour)), "income group %s", group)
	}
}

func TestExceptionalColorCyclesWithClock(t *testing.T) {
	a := sampleAttrs()
	a.Admin = "United States of America"

	at := time.Unix(1_000_000, 0)
	got := Exceptional.Color(a, at)

	r, g, b := colorful.Hsl(float64(1_000_000*100%360), 1.0, 0.5).Clamped().RGB255()
	assert.Equal(t, RGBA{r, g, b, 100}, got)

	// Same clock, any feature: the color ignores the attributes.
	assert.Equal(t, got, Exceptional.Color(sampleAttrs(), at))

	// A different second yields a different hue.
	assert.NotEqual(t, got, Exceptional.Color(a, at.Add(time.Second)))
}
