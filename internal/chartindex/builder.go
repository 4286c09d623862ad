package chartindex

import (
	"errors"
	"fmt"

	"github.com/jengzang/chartwheel-backend-go/internal/models"
)

// ErrMalformedWheel reports a snapshot whose wheel ring collection is not a
// well-formed ordered sequence. Downstream geometry cannot assume ring
// identities exist, so this is a hard error rather than an empty result.
var ErrMalformedWheel = errors.New("chartindex: wheel rings are not a valid sequence")

// BuildIndexes builds the normalized lookup tables for one snapshot.
//
// The function is pure and deterministic: the same snapshot value always
// yields structurally equal indexes, and nothing is carried over between
// calls. Missing optional data (a ring without items, an aspect set without
// pairs) is a valid state and never an error.
func BuildIndexes(snapshot *models.ChartSnapshot) (*models.Indexes, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("%w: snapshot is nil", ErrMalformedWheel)
	}
	if snapshot.Wheel.Rings == nil {
		return nil, fmt.Errorf("%w: wheel %q has no ring sequence", ErrMalformedWheel, snapshot.Wheel.ID)
	}

	idx := &models.Indexes{
		RingByID:                 make(map[string]*models.Ring),
		ItemByRingAndID:          make(map[string]map[string]*models.RingItem),
		AspectSetByID:            make(map[string]*models.AspectSet),
		AspectByID:               make(map[string]*models.AspectPair),
		ItemsByLogicalID:         make(map[string][]models.ItemRef),
		AspectsByObjectLogicalID: make(map[string][]string),
	}

	for i := range snapshot.Wheel.Rings {
		ring := &snapshot.Wheel.Rings[i]
		idx.RingByID[ring.ID] = ring

		// A nil item list means items were never provided: no entry at all.
		// An explicitly empty list gets an empty map so callers can tell the
		// two states apart.
		if ring.Items == nil {
			continue
		}
		itemMap := make(map[string]*models.RingItem, len(ring.Items))
		idx.ItemByRingAndID[ring.ID] = itemMap

		for j := range ring.Items {
			item := &ring.Items[j]
			itemMap[item.ID] = item

			if logicalID, ok := ItemLogicalID(ring, item); ok {
				idx.ItemsByLogicalID[logicalID] = append(idx.ItemsByLogicalID[logicalID], models.ItemRef{
					RingID: ring.ID,
					ItemID: item.ID,
				})
			}
		}
	}

	for i := range snapshot.Aspects.Sets {
		set := &snapshot.Aspects.Sets[i]
		idx.AspectSetByID[set.ID] = set

		for j := range set.Pairs {
			pair := &set.Pairs[j]
			idx.AspectByID[pair.ID] = pair

			fromID := RefLogicalID(pair.From)
			toID := RefLogicalID(pair.To)
			idx.AspectsByObjectLogicalID[fromID] = append(idx.AspectsByObjectLogicalID[fromID], pair.ID)
			// A self-aspect registers under its key once, not twice
			if toID != fromID {
				idx.AspectsByObjectLogicalID[toID] = append(idx.AspectsByObjectLogicalID[toID], pair.ID)
			}
		}
	}

	return idx, nil
}
