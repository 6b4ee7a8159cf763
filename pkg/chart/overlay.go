package chart

import (
	"strconv"

	"github.com/ukimsanov/Crypto-List/pkg/render"
	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// OverlayFrame is one frame's worth of drawable overlay output.
// Horizontal annotations go out as native price lines so the price axis
// labels them; everything else becomes generic pixel segments.
type OverlayFrame struct {
	Lines      []render.LinePrimitive
	PriceLines []render.PriceLine
}

// TrendPreview is the rubber-band segment from the held first trend point
// to the current pointer position.
type TrendPreview struct {
	From types.Point
	ToX  float64
	ToY  float64
}

// DeriveOverlay is a pure derivation of drawable geometry from the
// annotation store and the current mapping. An annotation whose endpoint
// does not map this frame is omitted, not deleted; it comes back when the
// viewport moves over it again.
func DeriveOverlay(annotations []types.Annotation, mapper *CoordinateMapper, height float64, preview *TrendPreview) OverlayFrame {
	var frame OverlayFrame

	if mapper == nil {
		return frame
	}

	for _, a := range annotations {
		switch v := a.(type) {
		case types.HorizontalLine:
			frame.PriceLines = append(frame.PriceLines, render.PriceLine{
				Price: v.Price,
				Color: v.Color(),
				Title: strconv.FormatFloat(v.Price, 'f', 2, 64),
			})

		case types.VerticalLine:
			x, ok := mapper.TimeToPixel(v.Time)
			if !ok {
				continue
			}
			frame.Lines = append(frame.Lines, render.LinePrimitive{
				X1: x, Y1: 0,
				X2: x, Y2: height,
				Color: v.Color(),
			})

		case types.TrendLine:
			x1, ok := mapper.TimeToPixel(v.P1.Time)
			if !ok {
				continue
			}
			y1, ok := mapper.PriceToPixel(v.P1.Price)
			if !ok {
				continue
			}
			x2, ok := mapper.TimeToPixel(v.P2.Time)
			if !ok {
				continue
			}
			y2, ok := mapper.PriceToPixel(v.P2.Price)
			if !ok {
				continue
			}
			frame.Lines = append(frame.Lines, render.LinePrimitive{
				X1: x1, Y1: y1,
				X2: x2, Y2: y2,
				Color: v.Color(),
			})
		}
	}

	if preview != nil {
		x1, ok1 := mapper.TimeToPixel(preview.From.Time)
		y1, ok2 := mapper.PriceToPixel(preview.From.Price)
		if ok1 && ok2 {
			frame.Lines = append(frame.Lines, render.LinePrimitive{
				X1: x1, Y1: y1,
				X2: preview.ToX, Y2: preview.ToY,
				Color:   toolColors[ToolTrendLine],
				Preview: true,
			})
		}
	}

	return frame
}
