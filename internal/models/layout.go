package models

// LayoutOptions controls one layout computation
type LayoutOptions struct {
	Size           float64 `form:"size" json:"size"`                     // canvas edge in px, square
	RotationOffset float64 `form:"rotationOffset" json:"rotationOffset"` // degrees, rotates the whole wheel
	Theme          string  `form:"theme" json:"theme"`
}

// DrawDescriptor is one ring item resolved to screen space, ready to hand to
// a drawing backend. RingID/ItemID identify the source item so an external
// event layer can route clicks back to it.
type DrawDescriptor struct {
	RingID      string  `json:"ringId"`
	ItemID      string  `json:"itemId"`
	Kind        string  `json:"kind"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	ScreenAngle float64 `json:"screenAngle"`
	Radius      float64 `json:"radius"` // anchor radius in px
	Color       string  `json:"color"`
	Label       string  `json:"label"`
	Glyph       string  `json:"glyph,omitempty"` // empty when no glyph is known

	// Sign segments only: corrected arc span in screen degrees.
	// ArcEnd may exceed 360 after seam correction.
	ArcStart    float64 `json:"arcStart,omitempty"`
	ArcEnd      float64 `json:"arcEnd,omitempty"`
	InnerRadius float64 `json:"innerRadius,omitempty"` // px
	OuterRadius float64 `json:"outerRadius,omitempty"` // px
}

// AspectLine is one aspect resolved to a chord between two drawn objects
type AspectLine struct {
	AspectID string  `json:"aspectId"`
	Type     string  `json:"type"`
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	Color    string  `json:"color"`
}

// ChartLayout is the full output of one layout pass
type ChartLayout struct {
	Width   float64          `json:"width"`
	Height  float64          `json:"height"`
	CenterX float64          `json:"centerX"`
	CenterY float64          `json:"centerY"`
	Items   []DrawDescriptor `json:"items"`
	Aspects []AspectLine     `json:"aspects"`
}

// ChartListEntry is one stored chart in a list response
type ChartListEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}
