package layout

import (
	"fmt"

	"github.com/jengzang/chartwheel-backend-go/internal/chartindex"
	"github.com/jengzang/chartwheel-backend-go/internal/geometry"
	"github.com/jengzang/chartwheel-backend-go/internal/models"
	"github.com/jengzang/chartwheel-backend-go/internal/theme"
)

// DefaultSize is the canvas edge used when the caller does not pick one
const DefaultSize = 600.0

// The wheel is scaled so its outer edge leaves a small margin on the canvas
const canvasFillFactor = 0.95

// Driver turns a snapshot plus its indexes into draw descriptors for an
// external rendering backend. A driver holds only merged, immutable config
// and is safe for concurrent use.
type Driver struct {
	visual theme.VisualConfig
	glyphs theme.GlyphConfig
}

// NewDriver creates a layout driver over fully merged configuration
func NewDriver(visual theme.VisualConfig, glyphs theme.GlyphConfig) *Driver {
	return &Driver{visual: visual, glyphs: glyphs}
}

// ComputeLayout walks the wheel's rings in order and resolves every item to
// screen space. Unrecognized object or sign identifiers degrade to
// label-only descriptors (fallback color, no glyph); they are never errors.
func (d *Driver) ComputeLayout(snapshot *models.ChartSnapshot, idx *models.Indexes, opts models.LayoutOptions) *models.ChartLayout {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	center := size / 2
	maxRadius := size / 2 * canvasFillFactor

	result := &models.ChartLayout{
		Width:   size,
		Height:  size,
		CenterX: center,
		CenterY: center,
	}

	for i := range snapshot.Wheel.Rings {
		ring := &snapshot.Wheel.Rings[i]
		for j := range ring.Items {
			item := &ring.Items[j]
			result.Items = append(result.Items, d.describeItem(ring, item, opts.RotationOffset, center, maxRadius))
		}
	}

	result.Aspects = d.aspectLines(snapshot, idx, opts.RotationOffset, center, maxRadius)

	return result
}

// describeItem resolves one ring item to a draw descriptor
func (d *Driver) describeItem(ring *models.Ring, item *models.RingItem, rotation, center, maxRadius float64) models.DrawDescriptor {
	inner := ring.InnerRadius * maxRadius
	outer := ring.OuterRadius * maxRadius
	anchorRadius := (inner + outer) / 2

	desc := models.DrawDescriptor{
		RingID: ring.ID,
		ItemID: item.ID,
		Kind:   item.Kind,
		Radius: anchorRadius,
		Color:  d.visual.FallbackColor,
		Label:  item.ID,
	}

	switch item.Kind {
	case models.ItemKindSign:
		arc := geometry.SegmentArc(item.StartLon, item.EndLon, rotation)
		desc.ScreenAngle = arc.Mid
		desc.ArcStart = arc.Start
		desc.ArcEnd = arc.End
		desc.InnerRadius = inner
		desc.OuterRadius = outer
		if name, ok := theme.GetSignName(item.Index); ok {
			desc.Label = name
			desc.Color = d.signColor(item.Index)
			desc.Glyph = d.glyphs.SignGlyphs[item.Index]
		}

	case models.ItemKindHouseCusp:
		desc.ScreenAngle = geometry.AstroToScreenAngle(item.Lon, rotation)
		desc.Color = d.visual.HouseLine
		desc.Label = fmt.Sprintf("%d", item.HouseIndex)
		desc.InnerRadius = inner
		desc.OuterRadius = outer

	case models.ItemKindPlanet:
		desc.ScreenAngle = geometry.AstroToScreenAngle(item.Lon, rotation)
		if info, ok := theme.GetObjectInfo(item.PlanetID); ok {
			desc.Label = info.Label
			desc.Color = d.planetColor(info.Ordinal)
			desc.Glyph = d.glyphs.PlanetGlyphs[item.PlanetID]
		} else if item.PlanetID != "" {
			desc.Label = item.PlanetID
		}
		if item.Retrograde {
			desc.Label += " R"
		}

	default:
		// Unknown kind: keep it identifiable and positioned, nothing more
		desc.ScreenAngle = geometry.AstroToScreenAngle(item.Lon, rotation)
	}

	p := geometry.PolarToCartesian(desc.ScreenAngle, anchorRadius)
	desc.X = center + p.X
	desc.Y = center + p.Y

	return desc
}

// aspectLines resolves every aspect pair to a chord between the drawn
// positions of its two endpoints. Pairs whose endpoints are not drawn in any
// ring are skipped.
func (d *Driver) aspectLines(snapshot *models.ChartSnapshot, idx *models.Indexes, rotation, center, maxRadius float64) []models.AspectLine {
	var lines []models.AspectLine
	chordRadius := snapshot.Wheel.InnerRadius * maxRadius

	for i := range snapshot.Aspects.Sets {
		set := &snapshot.Aspects.Sets[i]
		for j := range set.Pairs {
			pair := &set.Pairs[j]

			fromLon, ok := d.endpointLon(idx, pair.From)
			if !ok {
				continue
			}
			toLon, ok := d.endpointLon(idx, pair.To)
			if !ok {
				continue
			}

			p1 := geometry.PolarToCartesian(geometry.AstroToScreenAngle(fromLon, rotation), chordRadius)
			p2 := geometry.PolarToCartesian(geometry.AstroToScreenAngle(toLon, rotation), chordRadius)

			color, ok := d.visual.AspectColors[pair.Type]
			if !ok {
				color = d.visual.FallbackColor
			}

			lines = append(lines, models.AspectLine{
				AspectID: pair.ID,
				Type:     pair.Type,
				X1:       center + p1.X,
				Y1:       center + p1.Y,
				X2:       center + p2.X,
				Y2:       center + p2.Y,
				Color:    color,
			})
		}
	}

	return lines
}

// endpointLon finds the longitude of an aspect endpoint through the logical
// id join: the first ring item sharing the endpoint's identity wins.
func (d *Driver) endpointLon(idx *models.Indexes, ref models.ObjectRef) (float64, bool) {
	refs := idx.ItemsByLogicalID[chartindex.RefLogicalID(ref)]
	for _, r := range refs {
		items, ok := idx.ItemByRingAndID[r.RingID]
		if !ok {
			continue
		}
		item, ok := items[r.ItemID]
		if !ok {
			continue
		}
		return geometry.NormalizeDegrees(item.Lon), true
	}
	return 0, false
}

func (d *Driver) signColor(index int) string {
	if index >= 0 && index < len(d.visual.SignColors) {
		return d.visual.SignColors[index]
	}
	return d.visual.FallbackColor
}

func (d *Driver) planetColor(ordinal int) string {
	if ordinal >= 0 && ordinal < len(d.visual.PlanetColors) {
		return d.visual.PlanetColors[ordinal]
	}
	return d.visual.FallbackColor
}
