package chart

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ukimsanov/Crypto-List/pkg/metrics"
	"github.com/ukimsanov/Crypto-List/pkg/render"
	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// ChartController owns all chart state: the series, the annotation store,
// the drawing session, and the stream binding. Nothing mutates that state
// except through the controller's methods; the mutex is the Go stand-in for
// the single-threaded event loop the interactive chart runs on.
//
//go:generate callbackgen -type ChartController
type ChartController struct {
	mu sync.Mutex

	// pushMu serializes whole-series engine pushes across fetch
	// completions; paired with the generation check it keeps a stale
	// completion from overwriting a newer series on the renderer.
	pushMu sync.Mutex

	exchange types.Exchange
	engine   render.Engine

	symbol   string
	interval types.Interval

	series  *types.Series
	mapper  *CoordinateMapper
	drawing *DrawingEngine
	merger  *LiveMerger

	stream       types.PriceStream
	streamCtx    context.Context
	streamCancel context.CancelFunc

	// generation guards fetch freshness: a completion belonging to an older
	// generation is discarded, so out-of-order completions never overwrite
	// a newer series.
	generation uint64

	unsubscribeViewport func()

	pointerX, pointerY float64
	pointerValid       bool

	seriesRebuildCallbacks []func(series *types.Series)

	connectivityCallbacks []func(connected bool)

	errorCallbacks []func(err error)
}

func NewChartController(exchange types.Exchange, engine render.Engine) *ChartController {
	c := &ChartController{
		exchange: exchange,
		engine:   engine,
		drawing:  NewDrawingEngine(),
		merger:   &LiveMerger{},
	}

	c.merger.OnPointUpdate(engine.UpdatePoint)
	c.unsubscribeViewport = engine.SubscribeVisibleRange(func(types.TimeRange) {
		c.RefreshOverlay()
	})

	return c
}

func (c *ChartController) Symbol() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.symbol
}

func (c *ChartController) Interval() types.Interval {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

func (c *ChartController) Series() *types.Series {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.series
}

func (c *ChartController) Annotations() []types.Annotation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drawing.Annotations()
}

func (c *ChartController) DrawingState() DrawingState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drawing.State()
}

// Drawing exposes the engine for event-hub subscriptions; state mutation
// still goes through the controller methods.
func (c *ChartController) Drawing() *DrawingEngine {
	return c.drawing
}

// Load switches the chart to a (symbol, interval) pair: the history fetch
// and stream are replaced, the drawing session resets, and the annotation
// store survives.
func (c *ChartController) Load(ctx context.Context, symbol string, interval types.Interval) {
	c.mu.Lock()
	c.symbol = symbol
	c.interval = interval
	c.generation++
	gen := c.generation
	c.drawing.ResetSession()
	c.closeStreamLocked()
	c.mu.Unlock()

	go c.fetch(ctx, gen, symbol, interval)
}

func (c *ChartController) fetch(ctx context.Context, gen uint64, symbol string, interval types.Interval) {
	rows, err := c.exchange.QueryOHLC(ctx, symbol, interval)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		log.Debugf("discarding stale history fetch for %s %s", symbol, interval)
		return
	}

	if err == nil {
		var series *types.Series
		series, err = BuildSeries(rows, interval)
		if err == nil {
			c.installSeriesLocked(series)
			stream := c.newStreamLocked(ctx, symbol)
			c.mu.Unlock()

			metrics.HistoryFetchesMetrics.WithLabelValues(symbol, interval.String(), "ok").Inc()

			c.pushMu.Lock()
			if c.generationIs(gen) {
				c.engine.SetData(series.Points)
				c.engine.SetVisibleRange(InitialVisibleRange(series))
			}
			c.pushMu.Unlock()

			if !c.generationIs(gen) {
				log.Debugf("a newer load overtook the %s %s fetch", symbol, interval)
				return
			}

			c.RefreshOverlay()
			c.EmitSeriesRebuild(series)

			c.connectStream(gen, stream)
			return
		}
	}

	// fetch failure or an explicit error payload clears the series; no
	// partial data is ever shown
	c.series = nil
	c.mapper = nil
	c.drawing.SetMapper(nil)
	c.mu.Unlock()

	metrics.HistoryFetchesMetrics.WithLabelValues(symbol, interval.String(), "error").Inc()
	log.WithError(err).Errorf("history fetch failed for %s %s", symbol, interval)

	c.pushMu.Lock()
	if c.generationIs(gen) {
		c.engine.SetData(nil)
		c.engine.SetPriceLines(nil)
		c.engine.SetOverlay(nil)
	}
	c.pushMu.Unlock()

	c.EmitError(err)
}

func (c *ChartController) generationIs(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.generation
}

// installSeriesLocked swaps in a freshly built series and re-derives the
// mapper from it. Callers hold c.mu.
func (c *ChartController) installSeriesLocked(series *types.Series) {
	c.series = series
	c.mapper = NewCoordinateMapper(c.engine, series)
	c.drawing.SetMapper(c.mapper)
}

func (c *ChartController) newStreamLocked(ctx context.Context, symbol string) types.PriceStream {
	stream := c.exchange.NewStream(symbol)
	stream.OnPriceUpdate(c.handleTick)
	stream.OnConnect(func() { c.EmitConnectivity(true) })
	stream.OnDisconnect(func() { c.EmitConnectivity(false) })

	streamCtx, cancel := context.WithCancel(ctx)
	c.stream = stream
	c.streamCancel = cancel
	c.streamCtx = streamCtx

	return stream
}

func (c *ChartController) connectStream(gen uint64, stream types.PriceStream) {
	c.mu.Lock()
	if gen != c.generation || c.stream != stream {
		c.mu.Unlock()
		return
	}
	streamCtx := c.streamCtx
	c.mu.Unlock()

	if err := stream.Connect(streamCtx); err != nil {
		log.WithError(err).Errorf("price stream connect failed for %s", c.Symbol())
		c.EmitConnectivity(false)
	}
}

func (c *ChartController) handleTick(tick types.PriceTick) {
	c.mu.Lock()
	if c.series == nil {
		// no series loaded yet, drop the tick
		c.mu.Unlock()
		return
	}

	applied := c.merger.Apply(c.series, tick.Price)
	var frame OverlayFrame
	if applied {
		frame = c.overlayFrameLocked()
	}
	c.mu.Unlock()

	if applied {
		metrics.TicksAppliedMetrics.WithLabelValues(tick.Symbol).Inc()
		c.pushOverlay(frame)
	}
}

// SelectTool, Click, PointerMove, Escape, DeleteLast and ClearAll forward
// the user input surface into the drawing engine and re-derive the overlay.

func (c *ChartController) SelectTool(tool Tool) {
	c.mu.Lock()
	c.drawing.SelectTool(tool)
	frame := c.overlayFrameLocked()
	c.mu.Unlock()
	c.pushOverlay(frame)
}

func (c *ChartController) Click(x, y float64) {
	c.mu.Lock()
	c.drawing.Click(x, y)
	c.syncAnnotationGaugeLocked()
	frame := c.overlayFrameLocked()
	c.mu.Unlock()
	c.pushOverlay(frame)
}

func (c *ChartController) PointerMove(x, y float64) {
	c.mu.Lock()
	c.pointerX, c.pointerY = x, y
	c.pointerValid = true

	// only the rubber-band preview depends on the pointer
	if c.drawing.State() != StateArmedTrendSecond {
		c.mu.Unlock()
		return
	}
	frame := c.overlayFrameLocked()
	c.mu.Unlock()
	c.pushOverlay(frame)
}

func (c *ChartController) Escape() {
	c.mu.Lock()
	c.drawing.Escape()
	frame := c.overlayFrameLocked()
	c.mu.Unlock()
	c.pushOverlay(frame)
}

func (c *ChartController) DeleteLast() {
	c.mu.Lock()
	c.drawing.DeleteLast()
	c.syncAnnotationGaugeLocked()
	frame := c.overlayFrameLocked()
	c.mu.Unlock()
	c.pushOverlay(frame)
}

func (c *ChartController) ClearAll() {
	c.mu.Lock()
	c.drawing.ClearAll()
	c.syncAnnotationGaugeLocked()
	frame := c.overlayFrameLocked()
	c.mu.Unlock()
	c.pushOverlay(frame)
}

// RefreshOverlay re-derives the overlay against the current viewport. It
// runs on every visible-range change and after any live merge.
func (c *ChartController) RefreshOverlay() {
	c.mu.Lock()
	frame := c.overlayFrameLocked()
	c.mu.Unlock()
	c.pushOverlay(frame)
}

func (c *ChartController) overlayFrameLocked() OverlayFrame {
	var preview *TrendPreview
	if c.drawing.State() == StateArmedTrendSecond && c.pointerValid {
		if first, ok := c.drawing.Session(); ok {
			preview = &TrendPreview{From: first, ToX: c.pointerX, ToY: c.pointerY}
		}
	}

	_, height := c.engine.CanvasSize()
	return DeriveOverlay(c.drawing.Annotations(), c.mapper, height, preview)
}

func (c *ChartController) pushOverlay(frame OverlayFrame) {
	c.engine.SetPriceLines(frame.PriceLines)
	c.engine.SetOverlay(frame.Lines)
}

func (c *ChartController) syncAnnotationGaugeLocked() {
	metrics.AnnotationsMetrics.WithLabelValues(c.symbol).Set(float64(len(c.drawing.Annotations())))
}

func (c *ChartController) closeStreamLocked() {
	if c.stream == nil {
		return
	}
	if c.streamCancel != nil {
		c.streamCancel()
	}
	if err := c.stream.Close(); err != nil {
		log.WithError(err).Warnf("price stream close error")
	}
	c.stream = nil
	c.streamCancel = nil
}

// Close tears the chart down: the stream closes, the viewport subscription
// is dropped, and the annotation store is cleared.
func (c *ChartController) Close() {
	c.mu.Lock()
	c.generation++
	c.closeStreamLocked()
	c.drawing.ClearAll()
	c.series = nil
	c.mapper = nil
	c.drawing.SetMapper(nil)
	c.mu.Unlock()

	if c.unsubscribeViewport != nil {
		c.unsubscribeViewport()
	}

	c.engine.SetPriceLines(nil)
	c.engine.SetOverlay(nil)
}
