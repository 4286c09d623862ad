package render

import (
	"fmt"
	"io"

	"github.com/jengzang/chartwheel-backend-go/internal/geometry"
	"github.com/jengzang/chartwheel-backend-go/internal/models"
	"github.com/jengzang/chartwheel-backend-go/internal/theme"
)

// WriteSVG renders a computed chart layout as an SVG document. The layout
// carries everything position-related; this writer only turns descriptors
// into SVG primitives.
func WriteSVG(w io.Writer, lay *models.ChartLayout, visual theme.VisualConfig, glyphs theme.GlyphConfig) error {
	var err error
	printf := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		lay.Width, lay.Height, lay.Width, lay.Height)
	printf(`  <rect width="%g" height="%g" fill="%s"/>`+"\n", lay.Width, lay.Height, visual.BgColor)

	// Sign segments first so everything else draws on top of them
	for _, item := range lay.Items {
		if item.Kind != models.ItemKindSign {
			continue
		}
		printf(`  <path d="%s" fill="%s" fill-opacity="0.15" stroke="%s" stroke-width="%g"/>`+"\n",
			sectorPath(lay.CenterX, lay.CenterY, item.ArcStart, item.ArcEnd, item.InnerRadius, item.OuterRadius),
			item.Color, visual.WheelStroke, visual.StrokeWidth)
	}

	// Aspect chords inside the wheel
	for _, a := range lay.Aspects {
		printf(`  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g" data-aspect-id="%s"/>`+"\n",
			a.X1, a.Y1, a.X2, a.Y2, a.Color, visual.StrokeWidth, a.AspectID)
	}

	// Cusp lines, then glyphs and labels
	for _, item := range lay.Items {
		switch item.Kind {
		case models.ItemKindHouseCusp:
			p1 := geometry.PolarToCartesian(item.ScreenAngle, item.InnerRadius)
			p2 := geometry.PolarToCartesian(item.ScreenAngle, item.OuterRadius)
			printf(`  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g" data-item-id="%s"/>`+"\n",
				lay.CenterX+p1.X, lay.CenterY+p1.Y, lay.CenterX+p2.X, lay.CenterY+p2.Y,
				item.Color, visual.StrokeWidth, item.ItemID)
			printf(`  <text x="%g" y="%g" font-family="%s" font-size="%g" fill="%s" text-anchor="middle">%s</text>`+"\n",
				item.X, item.Y, glyphs.FontFamily, glyphs.FontSize*0.8, visual.TextColor, item.Label)

		case models.ItemKindSign, models.ItemKindPlanet:
			text := item.Glyph
			if text == "" {
				// Unknown identifier: label-only fallback
				text = item.Label
			}
			printf(`  <text x="%g" y="%g" font-family="%s" font-size="%g" fill="%s" text-anchor="middle" dominant-baseline="middle" data-item-id="%s">%s</text>`+"\n",
				item.X, item.Y, glyphs.FontFamily, glyphs.FontSize, item.Color, item.ItemID, text)
		}
	}

	printf("</svg>\n")
	return err
}

// sectorPath builds the path of an annular sector between two screen angles.
// The span comes seam-corrected from the layout, so end >= start and the
// sector always runs the short way around.
func sectorPath(cx, cy, startDeg, endDeg, inner, outer float64) string {
	largeArc := 0
	if endDeg-startDeg > 180 {
		largeArc = 1
	}

	// Increasing screen angle moves counterclockwise on the canvas
	oStart := geometry.PolarToCartesian(startDeg, outer)
	oEnd := geometry.PolarToCartesian(endDeg, outer)
	iStart := geometry.PolarToCartesian(startDeg, inner)
	iEnd := geometry.PolarToCartesian(endDeg, inner)

	return fmt.Sprintf("M %g %g A %g %g 0 %d 0 %g %g L %g %g A %g %g 0 %d 1 %g %g Z",
		cx+oStart.X, cy+oStart.Y,
		outer, outer, largeArc, cx+oEnd.X, cy+oEnd.Y,
		cx+iEnd.X, cy+iEnd.Y,
		inner, inner, largeArc, cx+iStart.X, cy+iStart.Y,
	)
}
