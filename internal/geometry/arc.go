package geometry

// ArcSpan is one circular segment resolved to screen angles. The span runs
// in the direction of increasing screen angle; End may exceed 360 after seam
// correction, Start and Mid are always in [0, 360).
type ArcSpan struct {
	Start float64
	End   float64
	Mid   float64 // label/glyph anchor angle
}

// SegmentArc computes the screen-space arc for a segment spanning
// [startLon, endLon] in astronomical longitude.
//
// The astro-to-screen transform mirrors direction (longitude increases where
// screen angle decreases), so the segment's end longitude becomes the span's
// start angle and vice versa. When the segment crosses the screen's 0/360
// seam the raw end angle numerically precedes the start angle; 360 is added
// so the arc is always drawn the short way around. The mid anchor is
// averaged in astronomical space before conversion, which sidesteps the
// seam entirely.
func SegmentArc(startLon, endLon, rotationOffsetDeg float64) ArcSpan {
	// Normalize in astro space first so a segment recorded as 330..0 keeps
	// its true 345 midpoint instead of averaging to 165
	startLon = NormalizeDegrees(startLon)
	endLon = NormalizeDegrees(endLon)
	if endLon <= startLon {
		endLon += 360
	}

	start := AstroToScreenAngle(endLon, rotationOffsetDeg)
	end := AstroToScreenAngle(startLon, rotationOffsetDeg)
	if end < start {
		end += 360
	}

	return ArcSpan{
		Start: start,
		End:   end,
		Mid:   AstroToScreenAngle((startLon+endLon)/2, rotationOffsetDeg),
	}
}

// Width returns the angular width of the span in degrees
func (a ArcSpan) Width() float64 {
	return a.End - a.Start
}
