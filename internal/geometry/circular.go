package geometry

import (
	"math"
)

// MeanLongitude calculates the circular mean of a set of longitudes (degrees)
// weights: optional weights for each longitude (can be nil for equal weights)
// Returns the mean in [0, 360)
func MeanLongitude(lons []float64, weights []float64) float64 {
	if len(lons) == 0 {
		return 0
	}

	var sumSin, sumCos float64
	if weights == nil {
		// Equal weights
		for _, lon := range lons {
			rad := lon * math.Pi / 180
			sumSin += math.Sin(rad)
			sumCos += math.Cos(rad)
		}
	} else {
		// Weighted
		for i, lon := range lons {
			w := 1.0
			if i < len(weights) {
				w = weights[i]
			}
			rad := lon * math.Pi / 180
			sumSin += w * math.Sin(rad)
			sumCos += w * math.Cos(rad)
		}
	}

	meanDeg := math.Atan2(sumSin, sumCos) * 180 / math.Pi
	return NormalizeDegrees(meanDeg)
}

// MeanResultantLength calculates the mean resultant length (R) of a set of
// longitudes in degrees. R ranges from 0 (uniform spread around the circle)
// to 1 (all longitudes identical); it measures how clustered the chart's
// objects are.
func MeanResultantLength(lons []float64) float64 {
	if len(lons) == 0 {
		return 0
	}

	var sumSin, sumCos float64
	for _, lon := range lons {
		rad := lon * math.Pi / 180
		sumSin += math.Sin(rad)
		sumCos += math.Cos(rad)
	}

	return math.Sqrt(sumSin*sumSin+sumCos*sumCos) / float64(len(lons))
}
