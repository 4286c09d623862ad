package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/chartwheel-backend-go/internal/chartindex"
	"github.com/jengzang/chartwheel-backend-go/internal/models"
	"github.com/jengzang/chartwheel-backend-go/internal/theme"
)

func newTestDriver() *Driver {
	return NewDriver(theme.MergeVisualConfig(nil, nil), theme.MergeGlyphConfig(nil))
}

func computeLayout(t *testing.T, snapshot *models.ChartSnapshot, opts models.LayoutOptions) *models.ChartLayout {
	t.Helper()
	idx, err := chartindex.BuildIndexes(snapshot)
	require.NoError(t, err)
	return newTestDriver().ComputeLayout(snapshot, idx, opts)
}

func TestComputeLayout_SignAnchor(t *testing.T) {
	snapshot := &models.ChartSnapshot{
		Wheel: models.Wheel{
			ID: "wheel",
			Rings: []models.Ring{
				{
					ID: "signs", Type: models.RingTypeSigns,
					InnerRadius: 0.8, OuterRadius: 1.0,
					Items: []models.RingItem{
						{ID: "sign-aries", Kind: models.ItemKindSign, StartLon: 0, EndLon: 30, Index: 0},
					},
				},
			},
		},
	}

	lay := computeLayout(t, snapshot, models.LayoutOptions{Size: 600})
	require.Len(t, lay.Items, 1)

	item := lay.Items[0]
	assert.Equal(t, "signs", item.RingID)
	assert.Equal(t, "sign-aries", item.ItemID)

	// 15 degrees astronomical midpoint maps to a 75 degree screen angle
	assert.InDelta(t, 75, item.ScreenAngle, 1e-9)

	// Anchor sits at the ring's radial middle, offset from the center
	maxRadius := 300 * 0.95
	anchorRadius := 0.9 * maxRadius
	assert.InDelta(t, 300+anchorRadius*math.Cos(15*math.Pi/180), item.X, 1e-9)
	assert.InDelta(t, 300+anchorRadius*math.Sin(15*math.Pi/180), item.Y, 1e-9)

	// Segment resolved with label, glyph and sign color
	assert.Equal(t, "Aries", item.Label)
	assert.Equal(t, "♈", item.Glyph)
	assert.NotEmpty(t, item.Color)
	assert.InDelta(t, 30, item.ArcEnd-item.ArcStart, 1e-9)
}

func TestComputeLayout_DefaultSize(t *testing.T) {
	snapshot := &models.ChartSnapshot{
		Wheel: models.Wheel{ID: "wheel", Rings: []models.Ring{}},
	}
	lay := computeLayout(t, snapshot, models.LayoutOptions{})
	assert.Equal(t, DefaultSize, lay.Width)
	assert.Equal(t, DefaultSize/2, lay.CenterX)
}

func TestComputeLayout_UnknownPlanetFallsBackToLabel(t *testing.T) {
	snapshot := &models.ChartSnapshot{
		Wheel: models.Wheel{
			ID: "wheel",
			Rings: []models.Ring{
				{
					ID: "planets", Type: models.RingTypePlanets, LayerID: "natal",
					InnerRadius: 0.4, OuterRadius: 0.6,
					Items: []models.RingItem{
						{ID: "p-x", Kind: models.ItemKindPlanet, PlanetID: "vulcan", Lon: 200},
					},
				},
			},
		},
	}

	lay := computeLayout(t, snapshot, models.LayoutOptions{Size: 600})
	require.Len(t, lay.Items, 1)

	item := lay.Items[0]
	assert.Equal(t, "vulcan", item.Label)
	assert.Empty(t, item.Glyph)

	visual := theme.MergeVisualConfig(nil, nil)
	assert.Equal(t, visual.FallbackColor, item.Color)
}

func TestComputeLayout_RetrogradePlanet(t *testing.T) {
	snapshot := &models.ChartSnapshot{
		Wheel: models.Wheel{
			ID: "wheel",
			Rings: []models.Ring{
				{
					ID: "planets", Type: models.RingTypePlanets, LayerID: "natal",
					InnerRadius: 0.4, OuterRadius: 0.6,
					Items: []models.RingItem{
						{ID: "p-merc", Kind: models.ItemKindPlanet, PlanetID: "mercury", Lon: 100, Retrograde: true},
					},
				},
			},
		},
	}

	lay := computeLayout(t, snapshot, models.LayoutOptions{Size: 600})
	require.Len(t, lay.Items, 1)
	assert.Equal(t, "Mercury R", lay.Items[0].Label)
	assert.Equal(t, "☿", lay.Items[0].Glyph)
}

func TestComputeLayout_RotationOffset(t *testing.T) {
	snapshot := &models.ChartSnapshot{
		Wheel: models.Wheel{
			ID: "wheel",
			Rings: []models.Ring{
				{
					ID: "planets", Type: models.RingTypePlanets, LayerID: "natal",
					InnerRadius: 0.4, OuterRadius: 0.6,
					Items: []models.RingItem{
						{ID: "p-sun", Kind: models.ItemKindPlanet, PlanetID: "sun", Lon: 0},
					},
				},
			},
		},
	}

	plain := computeLayout(t, snapshot, models.LayoutOptions{Size: 600})
	rotated := computeLayout(t, snapshot, models.LayoutOptions{Size: 600, RotationOffset: 30})

	assert.InDelta(t, 90, plain.Items[0].ScreenAngle, 1e-9)
	assert.InDelta(t, 60, rotated.Items[0].ScreenAngle, 1e-9)
}

func TestComputeLayout_AspectLines(t *testing.T) {
	snapshot := &models.ChartSnapshot{
		Wheel: models.Wheel{
			ID: "wheel", InnerRadius: 0.3, OuterRadius: 1.0,
			Rings: []models.Ring{
				{
					ID: "planets", Type: models.RingTypePlanets, LayerID: "natal",
					InnerRadius: 0.4, OuterRadius: 0.6,
					Items: []models.RingItem{
						{ID: "p-sun", Kind: models.ItemKindPlanet, PlanetID: "sun", Lon: 0},
						{ID: "p-moon", Kind: models.ItemKindPlanet, PlanetID: "moon", Lon: 180},
					},
				},
			},
		},
		Aspects: models.AspectCollection{
			Sets: []models.AspectSet{
				{
					ID: "s1", LayerIDs: []string{"natal"},
					Pairs: []models.AspectPair{
						{
							ID:   "a1",
							From: models.ObjectRef{LayerID: "natal", ObjectType: "planet", ObjectID: "sun"},
							To:   models.ObjectRef{LayerID: "natal", ObjectType: "planet", ObjectID: "moon"},
							Type: "opposition",
						},
						{
							ID:   "a2",
							From: models.ObjectRef{LayerID: "natal", ObjectType: "planet", ObjectID: "sun"},
							To:   models.ObjectRef{LayerID: "natal", ObjectType: "planet", ObjectID: "pluto"},
							Type: "trine",
						},
					},
				},
			},
		},
	}

	lay := computeLayout(t, snapshot, models.LayoutOptions{Size: 600})

	// a2's endpoint is not drawn anywhere, so only a1 resolves
	require.Len(t, lay.Aspects, 1)
	line := lay.Aspects[0]
	assert.Equal(t, "a1", line.AspectID)

	// An opposition's chord passes through the wheel center
	assert.InDelta(t, 300, (line.X1+line.X2)/2, 1e-6)
	assert.InDelta(t, 300, (line.Y1+line.Y2)/2, 1e-6)

	visual := theme.MergeVisualConfig(nil, nil)
	assert.Equal(t, visual.AspectColors["opposition"], line.Color)
}

func TestComputeLayout_UnknownKindKeptIdentifiable(t *testing.T) {
	snapshot := &models.ChartSnapshot{
		Wheel: models.Wheel{
			ID: "wheel",
			Rings: []models.Ring{
				{
					ID: "extras", Type: "other",
					InnerRadius: 0.1, OuterRadius: 0.2,
					Items: []models.RingItem{
						{ID: "node", Kind: "lunarNode", Lon: 42},
					},
				},
			},
		},
	}

	lay := computeLayout(t, snapshot, models.LayoutOptions{Size: 600})
	require.Len(t, lay.Items, 1)
	assert.Equal(t, "node", lay.Items[0].ItemID)
	assert.Equal(t, "node", lay.Items[0].Label)
	assert.InDelta(t, 48, lay.Items[0].ScreenAngle, 1e-9)
}
