package theme

// Static object and sign catalogs. Like the color tables these are
// process-wide constant data, never mutated.

// SignNames by zodiac ordinal
var SignNames = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// ObjectInfo describes a known celestial object
type ObjectInfo struct {
	Ordinal int    // index into the planet color array
	Label   string // display name
}

var objects = map[string]ObjectInfo{
	"sun":     {Ordinal: 0, Label: "Sun"},
	"moon":    {Ordinal: 1, Label: "Moon"},
	"mercury": {Ordinal: 2, Label: "Mercury"},
	"venus":   {Ordinal: 3, Label: "Venus"},
	"mars":    {Ordinal: 4, Label: "Mars"},
	"jupiter": {Ordinal: 5, Label: "Jupiter"},
	"saturn":  {Ordinal: 6, Label: "Saturn"},
	"uranus":  {Ordinal: 7, Label: "Uranus"},
	"neptune": {Ordinal: 8, Label: "Neptune"},
	"pluto":   {Ordinal: 9, Label: "Pluto"},
}

// GetObjectInfo looks up a celestial object by id. The second return reports
// whether the object is known; callers must branch on it before indexing
// into color or glyph tables.
func GetObjectInfo(objectID string) (ObjectInfo, bool) {
	info, ok := objects[objectID]
	return info, ok
}

// GetSignName returns the sign name for a zodiac ordinal, with presence flag
func GetSignName(index int) (string, bool) {
	if index < 0 || index >= len(SignNames) {
		return "", false
	}
	return SignNames[index], true
}
