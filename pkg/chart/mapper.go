package chart

import (
	"math"

	"github.com/ukimsanov/Crypto-List/pkg/render"
	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// CoordinateMapper converts between pixels and chart coordinates. Inside
// the plotted range it defers to the rendering engine's native conversion;
// to the right of the last plotted point it extrapolates time linearly from
// the last two real candles. Price is never extrapolated: a pixel outside
// the price scale is a hard rejection, so a vertical click off-scale drops
// rather than guessing. Known UX limitation, kept deliberately.
type CoordinateMapper struct {
	conv   render.Converter
	series *types.Series
}

func NewCoordinateMapper(conv render.Converter, series *types.Series) *CoordinateMapper {
	return &CoordinateMapper{conv: conv, series: series}
}

func (m *CoordinateMapper) TimeToPixel(t int64) (float64, bool) {
	return m.conv.TimeToPixel(t)
}

func (m *CoordinateMapper) PriceToPixel(p float64) (float64, bool) {
	return m.conv.PriceToPixel(p)
}

func (m *CoordinateMapper) PixelToPrice(y float64) (float64, bool) {
	return m.conv.PixelToPrice(y)
}

// PixelToTime resolves x through the engine first, then falls back to
// extrapolation beyond the last plotted point: the time-per-pixel ratio of
// the last two real candles carried forward linearly.
func (m *CoordinateMapper) PixelToTime(x float64) (int64, bool) {
	if t, ok := m.conv.PixelToTime(x); ok {
		return t, true
	}

	last, ok := m.series.CandleAt(0)
	if !ok {
		return 0, false
	}
	prev, ok := m.series.CandleAt(1)
	if !ok {
		return 0, false
	}

	xLast, ok := m.conv.TimeToPixel(last.Time)
	if !ok {
		return 0, false
	}
	xPrev, ok := m.conv.TimeToPixel(prev.Time)
	if !ok {
		return 0, false
	}

	dx := xLast - xPrev
	if dx == 0 {
		// both candles collapsed onto one pixel, no usable ratio
		return 0, false
	}

	if x <= xLast {
		return 0, false
	}

	timePerPixel := float64(last.Time-prev.Time) / dx
	return last.Time + int64(math.Round((x-xLast)*timePerPixel)), true
}

// PixelToPoint resolves both axes; the point is valid only when both are.
func (m *CoordinateMapper) PixelToPoint(x, y float64) (types.Point, bool) {
	t, ok := m.PixelToTime(x)
	if !ok {
		return types.Point{}, false
	}

	p, ok := m.PixelToPrice(y)
	if !ok {
		return types.Point{}, false
	}

	return types.Point{Time: t, Price: p}, true
}
