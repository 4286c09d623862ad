package models

// AspectCollection groups all aspect sets delivered with a snapshot
type AspectCollection struct {
	Sets []AspectSet `json:"sets,omitempty"`
}

// AspectSet groups aspect pairs computed over one or more layers
type AspectSet struct {
	ID       string       `json:"id"`
	LayerIDs []string     `json:"layerIds,omitempty"`
	Pairs    []AspectPair `json:"pairs,omitempty"`
}

// ObjectRef identifies one endpoint of an aspect
type ObjectRef struct {
	LayerID    string `json:"layerId"`
	ObjectType string `json:"objectType"`
	ObjectID   string `json:"objectId"`
}

// AspectPair is a recorded angular relationship between two chart objects
type AspectPair struct {
	ID       string    `json:"id"`
	From     ObjectRef `json:"from"`
	To       ObjectRef `json:"to"`
	Type     string    `json:"type"`  // "conjunction", "trine", ...
	Angle    float64   `json:"angle"` // exact angle in degrees
	Orb      float64   `json:"orb"`
	Applying bool      `json:"applying"`
	Exact    bool      `json:"exact"`
}
