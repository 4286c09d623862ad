package models

// ChartSnapshot represents one complete chart render response
type ChartSnapshot struct {
	ID          string            `json:"id"`
	Name        string            `json:"name,omitempty"`
	Settings    map[string]string `json:"settings,omitempty"`
	Coordinates CoordinateSystem  `json:"coordinates"`
	Layers      map[string]Layer  `json:"layers,omitempty"`  // keyed by layer id, e.g. "natal"
	Aspects     AspectCollection  `json:"aspects"`
	Wheel       Wheel             `json:"wheel"`
}

// CoordinateSystem describes the angular convention the snapshot uses
type CoordinateSystem struct {
	Unit      string  `json:"unit"`      // "degrees"
	Range     float64 `json:"range"`     // full circle, 360
	Direction string  `json:"direction"` // "clockwise" or "counterclockwise"
	ZeroPoint string  `json:"zeroPoint"` // e.g. "aries"
}

// Layer holds the computed positions for one subject/time
type Layer struct {
	ID      string           `json:"id"`
	Label   string           `json:"label,omitempty"`
	Objects []ObjectPosition `json:"objects,omitempty"`
	Cusps   []float64        `json:"cusps,omitempty"` // 12 house cusp longitudes
}

// ObjectPosition is one celestial object's position within a layer
type ObjectPosition struct {
	ObjectType string  `json:"objectType"` // "planet", "point", ...
	ObjectID   string  `json:"objectId"`   // "sun", "moon", ...
	Lon        float64 `json:"lon"`        // Ecliptic longitude in degrees
	Lat        float64 `json:"lat"`
	SpeedLon   float64 `json:"speedLon"`
	Retrograde bool    `json:"retrograde"`
}

// Wheel is the drawable polar layout: an ordered stack of rings.
// Ring order is significant - drawing order equals list order.
type Wheel struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	InnerRadius float64 `json:"innerRadius"` // normalized 0-1
	OuterRadius float64 `json:"outerRadius"` // normalized 0-1
	Rings       []Ring  `json:"rings"`
}

// Ring type tags
const (
	RingTypeSigns   = "signs"
	RingTypeHouses  = "houses"
	RingTypePlanets = "planets"
)

// Ring is one annular band of the wheel
type Ring struct {
	ID          string     `json:"id"` // unique within the wheel
	Type        string     `json:"type"`
	LayerID     string     `json:"layerId,omitempty"` // layer the items belong to
	InnerRadius float64    `json:"innerRadius"`
	OuterRadius float64    `json:"outerRadius"`
	Items       []RingItem `json:"items,omitempty"` // nil means never provided; empty means explicitly empty
}

// RingItem kinds
const (
	ItemKindSign      = "sign"
	ItemKindHouseCusp = "houseCusp"
	ItemKindPlanet    = "planet"
)

// RingItem is one drawable entity within a ring. Kind selects which of the
// kind-specific fields are meaningful; unknown kinds are carried through
// untouched so the schema stays open for extension.
type RingItem struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`

	// sign segment
	StartLon float64 `json:"startLon,omitempty"`
	EndLon   float64 `json:"endLon,omitempty"`
	Index    int     `json:"index,omitempty"` // zodiac ordinal, 0 = Aries

	// house cusp
	HouseIndex int `json:"houseIndex,omitempty"` // 1-12

	// planet marker
	PlanetID   string  `json:"planetId,omitempty"`
	Lon        float64 `json:"lon,omitempty"`
	Lat        float64 `json:"lat,omitempty"`
	SpeedLon   float64 `json:"speedLon,omitempty"`
	Retrograde bool    `json:"retrograde,omitempty"`
	SignIndex  int     `json:"signIndex,omitempty"`
}
