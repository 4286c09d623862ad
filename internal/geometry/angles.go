package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// NormalizeDegrees normalizes an angle into [0, 360)
// Uses repeated addition/subtraction so large negative inputs land in range
func NormalizeDegrees(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

// AstroToScreenAngle converts an astronomical longitude to a screen angle
// Astronomical longitudes run counterclockwise from the zodiacal zero point;
// screen angles run clockwise from the top of the canvas. rotationOffset
// rotates the whole wheel without touching the underlying data.
func AstroToScreenAngle(astroDeg, rotationOffsetDeg float64) float64 {
	return NormalizeDegrees(90 - (astroDeg + rotationOffsetDeg))
}

// PolarToCartesian converts a screen angle and radius to planar coordinates
// The result is an offset from the wheel center, y increasing downward.
func PolarToCartesian(screenDeg, radius float64) r2.Point {
	mathRad := (90 - screenDeg) * math.Pi / 180
	return r2.Point{
		X: radius * math.Cos(mathRad),
		Y: radius * math.Sin(mathRad),
	}
}

// AngularDifferenceDegrees calculates the smallest difference between two angles (degrees)
// Result is in range [-180, 180]
func AngularDifferenceDegrees(angle1, angle2 float64) float64 {
	diff := angle2 - angle1
	// Normalize to [-180, 180]
	for diff > 180 {
		diff -= 360
	}
	for diff < -180 {
		diff += 360
	}
	return diff
}
