package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/chartwheel-backend-go/internal/chartindex"
	"github.com/jengzang/chartwheel-backend-go/internal/models"
)

func statsSnapshot() *models.ChartSnapshot {
	return &models.ChartSnapshot{
		Wheel: models.Wheel{
			ID: "wheel",
			Rings: []models.Ring{
				{
					ID: "planets", Type: models.RingTypePlanets, LayerID: "natal",
					Items: []models.RingItem{
						{ID: "p-sun", Kind: models.ItemKindPlanet, PlanetID: "sun", Lon: 10, SignIndex: 0},
						{ID: "p-moon", Kind: models.ItemKindPlanet, PlanetID: "moon", Lon: 20, SignIndex: 0},
						{ID: "p-merc", Kind: models.ItemKindPlanet, PlanetID: "mercury", Lon: 190, SignIndex: 6},
					},
				},
				{
					ID: "signs", Type: models.RingTypeSigns,
					Items: []models.RingItem{
						{ID: "sign-aries", Kind: models.ItemKindSign, StartLon: 0, EndLon: 30, Index: 0},
					},
				},
			},
		},
		Aspects: models.AspectCollection{
			Sets: []models.AspectSet{
				{
					ID: "s1",
					Pairs: []models.AspectPair{
						{
							ID:   "a1",
							From: models.ObjectRef{LayerID: "natal", ObjectType: "planet", ObjectID: "sun"},
							To:   models.ObjectRef{LayerID: "natal", ObjectType: "planet", ObjectID: "mercury"},
							Type: "opposition",
						},
					},
				},
			},
		},
	}
}

func TestCompute(t *testing.T) {
	snapshot := statsSnapshot()
	idx, err := chartindex.BuildIndexes(snapshot)
	require.NoError(t, err)

	st := Compute(snapshot, idx)

	assert.Equal(t, 3, st.PlanetCount)
	assert.Equal(t, 2, st.BySign["Aries"])
	assert.Equal(t, 1, st.BySign["Libra"])

	// Aries is fire, Libra is air; both are cardinal
	assert.Equal(t, 2, st.ByElement["fire"])
	assert.Equal(t, 1, st.ByElement["air"])
	assert.Equal(t, 3, st.ByModality["cardinal"])

	// Two longitudes cancel around the circle, the third sets the mean
	assert.InDelta(t, 20, st.MeanLongitude, 1e-6)
	assert.InDelta(t, 1.0/3.0, st.Concentration, 1e-6)

	assert.Equal(t, 1, st.AspectCountsByType["opposition"])
	assert.Equal(t, 1, st.AspectCountByObject["natal:planet:sun"])
	assert.Equal(t, 1, st.AspectCountByObject["natal:planet:mercury"])
}

func TestCompute_SignDerivedFromLongitude(t *testing.T) {
	snapshot := &models.ChartSnapshot{
		Wheel: models.Wheel{
			ID: "wheel",
			Rings: []models.Ring{
				{
					ID: "planets", Type: models.RingTypePlanets, LayerID: "natal",
					Items: []models.RingItem{
						// Out-of-range ordinal: sign falls back to lon/30
						{ID: "p-x", Kind: models.ItemKindPlanet, PlanetID: "mars", Lon: 100, SignIndex: 33},
					},
				},
			},
		},
	}
	idx, err := chartindex.BuildIndexes(snapshot)
	require.NoError(t, err)

	st := Compute(snapshot, idx)
	assert.Equal(t, 1, st.BySign["Cancer"])
}

func TestCompute_EmptyChart(t *testing.T) {
	snapshot := &models.ChartSnapshot{Wheel: models.Wheel{ID: "w", Rings: []models.Ring{}}}
	idx, err := chartindex.BuildIndexes(snapshot)
	require.NoError(t, err)

	st := Compute(snapshot, idx)
	assert.Zero(t, st.PlanetCount)
	assert.Zero(t, st.SignEntropy)
	assert.Empty(t, st.AspectCountsByType)
}

func TestShannonEntropy(t *testing.T) {
	assert.Equal(t, 0.0, ShannonEntropy(nil))
	assert.Equal(t, 0.0, ShannonEntropy([]float64{5}))
	assert.InDelta(t, 1.0, ShannonEntropy([]float64{1, 1}), 1e-9)
	assert.InDelta(t, 2.0, ShannonEntropy([]float64{1, 1, 1, 1}), 1e-9)
}

func TestNormalizedEntropy(t *testing.T) {
	assert.Equal(t, 0.0, NormalizedEntropy([]float64{7}))
	assert.InDelta(t, 1.0, NormalizedEntropy([]float64{1, 1, 1, 1}), 1e-9)
	assert.InDelta(t, 0.0, NormalizedEntropy([]float64{4, 0, 0, 0}), 1e-9)
}
