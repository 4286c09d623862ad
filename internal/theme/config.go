package theme

// VisualConfig holds the visual parameters of a wheel rendering. A partial
// config leaves fields at their zero value (empty string, 0, nil); merging
// fills every field from the first source that defines it.
type VisualConfig struct {
	BgColor       string  `json:"bgColor,omitempty"`
	WheelStroke   string  `json:"wheelStroke,omitempty"`
	HouseLine     string  `json:"houseLine,omitempty"`
	TextColor     string  `json:"textColor,omitempty"`
	FallbackColor string  `json:"fallbackColor,omitempty"` // used for unrecognized objects/signs
	StrokeWidth   float64 `json:"strokeWidth,omitempty"`
	RingSpacing   float64 `json:"ringSpacing,omitempty"`

	// Indexed color arrays: replaced as a unit, never merged element-wise
	SignColors   []string `json:"signColors,omitempty"`   // by zodiac ordinal, 0 = Aries
	PlanetColors []string `json:"planetColors,omitempty"` // by planet ordinal

	// Named maps: merged key-by-key across precedence levels
	AspectColors map[string]string `json:"aspectColors,omitempty"` // by aspect type
}

// GlyphConfig holds glyph and font parameters. Same partial/merge semantics
// as VisualConfig.
type GlyphConfig struct {
	FontFamily string  `json:"fontFamily,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`

	SignGlyphs   map[int]string    `json:"signGlyphs,omitempty"`   // by zodiac ordinal
	PlanetGlyphs map[string]string `json:"planetGlyphs,omitempty"` // by planet id
}

// MergeVisualConfig merges a possibly partial config with a theme preset and
// the built-in default, highest precedence first: explicit > theme > default.
//
// Scalars take the first source that defines them. Indexed color arrays are
// taken wholesale from the first source that supplies them. Named maps are
// merged key-by-key, so overriding one aspect color keeps the rest.
func MergeVisualConfig(explicit, theme *VisualConfig) VisualConfig {
	sources := configSources(explicit, theme)

	merged := VisualConfig{
		BgColor:       firstString(sources, func(c *VisualConfig) string { return c.BgColor }),
		WheelStroke:   firstString(sources, func(c *VisualConfig) string { return c.WheelStroke }),
		HouseLine:     firstString(sources, func(c *VisualConfig) string { return c.HouseLine }),
		TextColor:     firstString(sources, func(c *VisualConfig) string { return c.TextColor }),
		FallbackColor: firstString(sources, func(c *VisualConfig) string { return c.FallbackColor }),
		StrokeWidth:   firstFloat(sources, func(c *VisualConfig) float64 { return c.StrokeWidth }),
		RingSpacing:   firstFloat(sources, func(c *VisualConfig) float64 { return c.RingSpacing }),
		SignColors:    firstStrings(sources, func(c *VisualConfig) []string { return c.SignColors }),
		PlanetColors:  firstStrings(sources, func(c *VisualConfig) []string { return c.PlanetColors }),
		AspectColors:  make(map[string]string),
	}

	// Key-by-key merge, lowest precedence first so higher levels overwrite
	for i := len(sources) - 1; i >= 0; i-- {
		for k, v := range sources[i].AspectColors {
			merged.AspectColors[k] = v
		}
	}

	return merged
}

// MergeGlyphConfig merges a possibly partial glyph config with the built-in
// default, explicit values winning.
func MergeGlyphConfig(explicit *GlyphConfig) GlyphConfig {
	merged := GlyphConfig{
		FontFamily:   defaultGlyphs.FontFamily,
		FontSize:     defaultGlyphs.FontSize,
		SignGlyphs:   make(map[int]string),
		PlanetGlyphs: make(map[string]string),
	}
	for k, v := range defaultGlyphs.SignGlyphs {
		merged.SignGlyphs[k] = v
	}
	for k, v := range defaultGlyphs.PlanetGlyphs {
		merged.PlanetGlyphs[k] = v
	}

	if explicit != nil {
		if explicit.FontFamily != "" {
			merged.FontFamily = explicit.FontFamily
		}
		if explicit.FontSize != 0 {
			merged.FontSize = explicit.FontSize
		}
		for k, v := range explicit.SignGlyphs {
			merged.SignGlyphs[k] = v
		}
		for k, v := range explicit.PlanetGlyphs {
			merged.PlanetGlyphs[k] = v
		}
	}

	return merged
}

// configSources returns the precedence chain, highest first. The built-in
// default is always last and defines every field, so resolution cannot fall
// through empty.
func configSources(explicit, theme *VisualConfig) []*VisualConfig {
	sources := make([]*VisualConfig, 0, 3)
	if explicit != nil {
		sources = append(sources, explicit)
	}
	if theme != nil {
		sources = append(sources, theme)
	}
	return append(sources, &defaultVisual)
}

func firstString(sources []*VisualConfig, get func(*VisualConfig) string) string {
	for _, s := range sources {
		if v := get(s); v != "" {
			return v
		}
	}
	return ""
}

func firstFloat(sources []*VisualConfig, get func(*VisualConfig) float64) float64 {
	for _, s := range sources {
		if v := get(s); v != 0 {
			return v
		}
	}
	return 0
}

func firstStrings(sources []*VisualConfig, get func(*VisualConfig) []string) []string {
	for _, s := range sources {
		if v := get(s); v != nil {
			return v
		}
	}
	return nil
}
