package theme

// Built-in defaults. These tables are complete: every scalar, every zodiac
// ordinal, every known aspect type and glyph is covered, so a merge can
// never leave a field unset. Read-only after init, never mutated.

var defaultVisual = VisualConfig{
	BgColor:       "#ffffff",
	WheelStroke:   "#333333",
	HouseLine:     "#999999",
	TextColor:     "#333333",
	FallbackColor: "#808080",
	StrokeWidth:   1,
	RingSpacing:   4,

	// By zodiac ordinal: fire/earth/air/water triplicities
	SignColors: []string{
		"#cc3333", // Aries
		"#338033", // Taurus
		"#cc9933", // Gemini
		"#3366cc", // Cancer
		"#cc3333", // Leo
		"#338033", // Virgo
		"#cc9933", // Libra
		"#3366cc", // Scorpio
		"#cc3333", // Sagittarius
		"#338033", // Capricorn
		"#cc9933", // Aquarius
		"#3366cc", // Pisces
	},

	PlanetColors: []string{
		"#e6a817", // Sun
		"#8899aa", // Moon
		"#b36b00", // Mercury
		"#2e8b57", // Venus
		"#c0392b", // Mars
		"#7d3c98", // Jupiter
		"#5d6d7e", // Saturn
		"#16a085", // Uranus
		"#2471a3", // Neptune
		"#6e2c00", // Pluto
	},

	AspectColors: map[string]string{
		"conjunction": "#c0392b",
		"opposition":  "#2471a3",
		"trine":       "#1e8449",
		"square":      "#b9770e",
		"sextile":     "#7d3c98",
		"quincunx":    "#839192",
	},
}

var defaultGlyphs = GlyphConfig{
	FontFamily: "serif",
	FontSize:   14,

	SignGlyphs: map[int]string{
		0:  "♈", // Aries
		1:  "♉", // Taurus
		2:  "♊", // Gemini
		3:  "♋", // Cancer
		4:  "♌", // Leo
		5:  "♍", // Virgo
		6:  "♎", // Libra
		7:  "♏", // Scorpio
		8:  "♐", // Sagittarius
		9:  "♑", // Capricorn
		10: "♒", // Aquarius
		11: "♓", // Pisces
	},

	PlanetGlyphs: map[string]string{
		"sun":     "☉",
		"moon":    "☽",
		"mercury": "☿",
		"venus":   "♀",
		"mars":    "♂",
		"jupiter": "♃",
		"saturn":  "♄",
		"uranus":  "♅",
		"neptune": "♆",
		"pluto":   "♇",
	},
}

// themes holds the named presets. A preset only lists what it changes; the
// merge falls through to the defaults for everything else.
var themes = map[string]*VisualConfig{
	"light": {}, // defaults are the light theme
	"dark": {
		BgColor:     "#14141e",
		WheelStroke: "#d0d0dc",
		HouseLine:   "#55555f",
		TextColor:   "#e8e8f0",
		AspectColors: map[string]string{
			"conjunction": "#e74c3c",
			"opposition":  "#5dade2",
			"trine":       "#58d68d",
			"square":      "#f5b041",
			"sextile":     "#bb8fce",
		},
	},
	"mono": {
		SignColors: []string{
			"#222222", "#444444", "#666666", "#888888",
			"#222222", "#444444", "#666666", "#888888",
			"#222222", "#444444", "#666666", "#888888",
		},
		PlanetColors: []string{
			"#111111", "#333333", "#555555", "#777777", "#999999",
			"#111111", "#333333", "#555555", "#777777", "#999999",
		},
		AspectColors: map[string]string{
			"conjunction": "#000000",
			"opposition":  "#333333",
			"trine":       "#555555",
			"square":      "#777777",
			"sextile":     "#999999",
			"quincunx":    "#bbbbbb",
		},
	},
}

// Preset returns the named theme preset, or nil when the name is unknown or
// empty. An unknown theme is soft-missing-data: merging a nil preset simply
// falls through to the defaults.
func Preset(name string) *VisualConfig {
	return themes[name]
}

// Names lists the available theme presets
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}
