package render

import (
	"sync"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

const priceScaleMargin = 0.1

// LinearEngine is a headless Engine with linear pixel mapping. It backs the
// snapshot renderer and the engine-facing tests; an interactive deployment
// swaps in a binding to a real charting library instead.
type LinearEngine struct {
	mu sync.Mutex

	width, height float64

	points  []types.SeriesPoint
	visible types.TimeRange

	priceMin, priceMax float64

	priceLines []PriceLine
	overlay    []LinePrimitive

	nextSubID int
	subs      map[int]func(types.TimeRange)
}

func NewLinearEngine(width, height float64) *LinearEngine {
	return &LinearEngine{
		width:  width,
		height: height,
		subs:   make(map[int]func(types.TimeRange)),
	}
}

func (e *LinearEngine) SetData(points []types.SeriesPoint) {
	e.mu.Lock()
	e.points = points
	e.rescalePrice()
	e.mu.Unlock()
}

func (e *LinearEngine) UpdatePoint(point types.SeriesPoint) {
	e.mu.Lock()
	for i := len(e.points) - 1; i >= 0; i-- {
		if e.points[i].Time == point.Time {
			e.points[i] = point
			break
		}
	}
	e.rescalePrice()
	e.mu.Unlock()
}

func (e *LinearEngine) SetPriceLines(lines []PriceLine) {
	e.mu.Lock()
	e.priceLines = lines
	e.mu.Unlock()
}

func (e *LinearEngine) PriceLines() []PriceLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.priceLines
}

func (e *LinearEngine) SetOverlay(lines []LinePrimitive) {
	e.mu.Lock()
	e.overlay = lines
	e.mu.Unlock()
}

func (e *LinearEngine) Overlay() []LinePrimitive {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.overlay
}

func (e *LinearEngine) Data() []types.SeriesPoint {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.points
}

func (e *LinearEngine) VisibleRange() types.TimeRange {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

func (e *LinearEngine) CanvasSize() (float64, float64) {
	return e.width, e.height
}

func (e *LinearEngine) SetVisibleRange(r types.TimeRange) {
	e.mu.Lock()
	e.visible = r
	e.rescalePrice()
	subs := e.snapshotSubs()
	e.mu.Unlock()

	for _, cb := range subs {
		cb(r)
	}
}

func (e *LinearEngine) FitContent() {
	e.mu.Lock()
	if len(e.points) == 0 {
		e.mu.Unlock()
		return
	}
	r := types.TimeRange{From: e.points[0].Time, To: e.points[len(e.points)-1].Time}
	e.visible = r
	e.rescalePrice()
	subs := e.snapshotSubs()
	e.mu.Unlock()

	for _, cb := range subs {
		cb(r)
	}
}

func (e *LinearEngine) SubscribeVisibleRange(cb func(r types.TimeRange)) (unsubscribe func()) {
	e.mu.Lock()
	id := e.nextSubID
	e.nextSubID++
	e.subs[id] = cb
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
}

func (e *LinearEngine) TimeToPixel(t int64) (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.visible.Width() <= 0 || !e.visible.Contains(t) {
		return 0, false
	}
	return float64(t-e.visible.From) / float64(e.visible.Width()) * e.width, true
}

// PixelToTime resolves only up to the last plotted point; past that the
// engine has no bars to map against, which is exactly where the chart core
// takes over with its own extrapolation.
func (e *LinearEngine) PixelToTime(x float64) (int64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.visible.Width() <= 0 || x < 0 || x > e.width {
		return 0, false
	}

	t := e.visible.From + int64(x/e.width*float64(e.visible.Width()))
	if len(e.points) == 0 || t > e.points[len(e.points)-1].Time {
		return 0, false
	}
	return t, true
}

func (e *LinearEngine) PriceToPixel(p float64) (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.priceMax <= e.priceMin || p < e.priceMin || p > e.priceMax {
		return 0, false
	}
	return (1 - (p-e.priceMin)/(e.priceMax-e.priceMin)) * e.height, true
}

func (e *LinearEngine) PixelToPrice(y float64) (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.priceMax <= e.priceMin || y < 0 || y > e.height {
		return 0, false
	}
	return e.priceMin + (1-y/e.height)*(e.priceMax-e.priceMin), true
}

// rescalePrice recomputes the visible price window from the real candles in
// view, with the same 10% scale margins the interactive chart uses.
// Callers hold e.mu.
func (e *LinearEngine) rescalePrice() {
	lo, hi := 0.0, 0.0
	seen := false

	for _, p := range e.points {
		if p.Placeholder {
			continue
		}
		if e.visible.Width() > 0 && !e.visible.Contains(p.Time) {
			continue
		}
		if !seen {
			lo, hi = p.Low, p.High
			seen = true
			continue
		}
		if p.Low < lo {
			lo = p.Low
		}
		if p.High > hi {
			hi = p.High
		}
	}

	if !seen {
		// no candle in view, fall back to the full data range
		for _, p := range e.points {
			if p.Placeholder {
				continue
			}
			if !seen {
				lo, hi = p.Low, p.High
				seen = true
				continue
			}
			if p.Low < lo {
				lo = p.Low
			}
			if p.High > hi {
				hi = p.High
			}
		}
	}

	if !seen {
		e.priceMin, e.priceMax = 0, 0
		return
	}

	margin := (hi - lo) * priceScaleMargin
	e.priceMin = lo - margin
	e.priceMax = hi + margin
}

// snapshotSubs copies the listener set so emission happens outside the lock.
// Callers hold e.mu.
func (e *LinearEngine) snapshotSubs() []func(types.TimeRange) {
	subs := make([]func(types.TimeRange), 0, len(e.subs))
	for _, cb := range e.subs {
		subs = append(subs, cb)
	}
	return subs
}
