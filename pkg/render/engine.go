package render

import (
	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// PriceLine is a native horizontal price level drawn by the rendering
// engine itself, so the price axis gets a label for it.
type PriceLine struct {
	Price float64
	Color string
	Title string
}

// LinePrimitive is one drawable segment of the generic overlay, in
// chart-local pixel coordinates.
type LinePrimitive struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  string

	// Preview marks the rubber-band segment shown while a trend line is
	// half drawn. It is visual feedback only and never persisted.
	Preview bool
}

// Converter is the engine's native pixel conversion. All methods report
// whether the conversion resolved; a pixel outside the mapped range yields
// ok=false and the caller decides whether to extrapolate or reject.
type Converter interface {
	TimeToPixel(t int64) (x float64, ok bool)
	PixelToTime(x float64) (t int64, ok bool)
	PriceToPixel(p float64) (y float64, ok bool)
	PixelToPrice(y float64) (p float64, ok bool)
}

// Engine is the chart-rendering collaborator consumed by the chart core.
// The engine owns pan/zoom input and pixel rendering; the core owns all
// data and annotation state.
type Engine interface {
	Converter

	// SetData replaces the whole plotted series.
	SetData(points []types.SeriesPoint)

	// UpdatePoint redraws a single point in place, used for live ticks.
	UpdatePoint(point types.SeriesPoint)

	// SetPriceLines replaces the native price-line overlays wholesale.
	SetPriceLines(lines []PriceLine)

	// SetOverlay replaces the generic vector overlay for this frame.
	SetOverlay(lines []LinePrimitive)

	SetVisibleRange(r types.TimeRange)
	FitContent()

	// CanvasSize reports the chart-local pixel dimensions, needed to span
	// full-height or full-width overlay segments.
	CanvasSize() (width, height float64)

	// SubscribeVisibleRange registers a pan/zoom listener and returns its
	// unsubscribe function.
	SubscribeVisibleRange(cb func(r types.TimeRange)) (unsubscribe func())
}
