package models

// ItemRef locates one ring item within a wheel
type ItemRef struct {
	RingID string `json:"ringId"`
	ItemID string `json:"itemId"`
}

// Indexes is the derived read-model built once per snapshot. It is rebuilt
// from scratch on every call; nothing in it survives a snapshot change.
//
// ItemByRingAndID distinguishes two states on purpose: a ring whose items
// were never provided has no entry at all, while a ring with an explicitly
// empty item list maps to an empty inner map.
type Indexes struct {
	RingByID                 map[string]*Ring                `json:"ringById"`
	ItemByRingAndID          map[string]map[string]*RingItem `json:"itemByRingAndId"`
	AspectSetByID            map[string]*AspectSet           `json:"aspectSetById"`
	AspectByID               map[string]*AspectPair          `json:"aspectById"`
	ItemsByLogicalID         map[string][]ItemRef            `json:"itemsByLogicalId"`
	AspectsByObjectLogicalID map[string][]string             `json:"aspectsByObjectLogicalId"`
}
