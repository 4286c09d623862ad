package chartindex

import (
	"fmt"

	"github.com/jengzang/chartwheel-backend-go/internal/models"
)

// LogicalID composes the derived identity joining a layer, object type and
// object id, e.g. "natal:planet:sun". It is the join key between ring items
// and aspect endpoints.
func LogicalID(layerID, objectType, objectID string) string {
	return layerID + ":" + objectType + ":" + objectID
}

// RefLogicalID derives the logical id of an aspect endpoint
func RefLogicalID(ref models.ObjectRef) string {
	return LogicalID(ref.LayerID, ref.ObjectType, ref.ObjectID)
}

// ItemLogicalID derives the logical id of a ring item, if it represents a
// domain object. Planets key by their planet id; house cusps key by their
// house number under the "house" object type, matching aspect endpoints that
// reference cusps. Sign segments are zodiac geometry, not chart objects, and
// have no logical id - the second return is false for them and for any
// unknown kind.
func ItemLogicalID(ring *models.Ring, item *models.RingItem) (string, bool) {
	switch item.Kind {
	case models.ItemKindPlanet:
		if item.PlanetID == "" {
			return "", false
		}
		return LogicalID(ring.LayerID, "planet", item.PlanetID), true
	case models.ItemKindHouseCusp:
		if item.HouseIndex == 0 {
			return "", false
		}
		return LogicalID(ring.LayerID, "house", fmt.Sprintf("%d", item.HouseIndex)), true
	default:
		return "", false
	}
}
