package stats

import (
	"github.com/jengzang/chartwheel-backend-go/internal/geometry"
	"github.com/jengzang/chartwheel-backend-go/internal/models"
	"github.com/jengzang/chartwheel-backend-go/internal/theme"
)

// Zodiac element and modality cycles by sign ordinal
var (
	elements   = []string{"fire", "earth", "air", "water"}
	modalities = []string{"cardinal", "fixed", "mutable"}
)

// ChartStatistics summarizes the distribution of one chart's objects
type ChartStatistics struct {
	PlanetCount         int            `json:"planetCount"`
	BySign              map[string]int `json:"bySign"`
	ByElement           map[string]int `json:"byElement"`
	ByModality          map[string]int `json:"byModality"`
	SignEntropy         float64        `json:"signEntropy"`   // normalized, 0 = all in one sign
	MeanLongitude       float64        `json:"meanLongitude"` // circular mean of planet longitudes
	Concentration       float64        `json:"concentration"` // mean resultant length, 0-1
	AspectCountsByType  map[string]int `json:"aspectCountsByType"`
	AspectCountByObject map[string]int `json:"aspectCountByObject"` // by logical id
}

// Compute derives chart statistics from a snapshot and its indexes.
// Planet items are gathered from every ring; a planet drawn in two rings is
// counted per drawn instance, mirroring what the wheel actually shows.
func Compute(snapshot *models.ChartSnapshot, idx *models.Indexes) *ChartStatistics {
	st := &ChartStatistics{
		BySign:              make(map[string]int),
		ByElement:           make(map[string]int),
		ByModality:          make(map[string]int),
		AspectCountsByType:  make(map[string]int),
		AspectCountByObject: make(map[string]int),
	}

	var lons []float64
	signCounts := make([]float64, len(theme.SignNames))

	for i := range snapshot.Wheel.Rings {
		ring := &snapshot.Wheel.Rings[i]
		for j := range ring.Items {
			item := &ring.Items[j]
			if item.Kind != models.ItemKindPlanet {
				continue
			}

			st.PlanetCount++
			lons = append(lons, geometry.NormalizeDegrees(item.Lon))

			signIndex := item.SignIndex
			name, ok := theme.GetSignName(signIndex)
			if !ok {
				// Derive from longitude when the sign ordinal is absent or bad
				signIndex = int(geometry.NormalizeDegrees(item.Lon) / 30)
				name, _ = theme.GetSignName(signIndex)
			}
			st.BySign[name]++
			signCounts[signIndex]++
			st.ByElement[elements[signIndex%4]]++
			st.ByModality[modalities[signIndex%3]]++
		}
	}

	st.SignEntropy = NormalizedEntropy(signCounts)
	st.MeanLongitude = geometry.MeanLongitude(lons, nil)
	st.Concentration = geometry.MeanResultantLength(lons)

	for _, pair := range idx.AspectByID {
		st.AspectCountsByType[pair.Type]++
	}
	for logicalID, aspectIDs := range idx.AspectsByObjectLogicalID {
		st.AspectCountByObject[logicalID] = len(aspectIDs)
	}

	return st
}
