package render

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

var (
	candleUpColor   = drawing.ColorFromHex("26a69a")
	candleDownColor = drawing.ColorFromHex("ef5350")
)

// Snapshot rasterizes a series plus finalized annotations into a PNG,
// for headless chart exports.
type Snapshot struct {
	Width  int
	Height int

	Points      []types.SeriesPoint
	Annotations []types.Annotation
}

func (s *Snapshot) Render(w io.Writer) error {
	candles := realCandles(s.Points)
	if len(candles) < 2 {
		return errors.New("snapshot needs at least two candles")
	}

	width := s.Width
	if width == 0 {
		width = 1024
	}
	height := s.Height
	if height == 0 {
		height = 450
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return time.Unix(int64(f), 0).UTC().Format("01-02 15:04")
				}
				return ""
			},
		},
		Series: []chart.Series{
			&candlestickSeries{candles: candles},
			&annotationSeries{annotations: s.Annotations},
		},
	}

	return graph.Render(chart.PNG, w)
}

func realCandles(points []types.SeriesPoint) (candles []types.Candle) {
	for _, p := range points {
		if p.Placeholder {
			continue
		}
		candles = append(candles, p.Candle)
	}
	return candles
}

var (
	_ chart.Series         = &candlestickSeries{}
	_ chart.ValuesProvider = &candlestickSeries{}
)

type candlestickSeries struct {
	candles []types.Candle
}

func (cs *candlestickSeries) GetName() string { return "ohlc" }

func (cs *candlestickSeries) GetStyle() chart.Style {
	return chart.Style{StrokeWidth: 1.0}
}

func (cs *candlestickSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (cs *candlestickSeries) Validate() error { return nil }

// Len and GetValues feed the axis ranges: each candle contributes its low
// and its high so the price range covers the full wick span.
func (cs *candlestickSeries) Len() int {
	return len(cs.candles) * 2
}

func (cs *candlestickSeries) GetValues(index int) (float64, float64) {
	c := cs.candles[index/2]
	if index%2 == 0 {
		return float64(c.Time), c.Low
	}
	return float64(c.Time), c.High
}

func (cs *candlestickSeries) Render(r chart.Renderer, cb chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	bodyHalf := bodyHalfWidth(cb, len(cs.candles))

	for i := range cs.candles {
		c := &cs.candles[i]

		color := candleUpColor
		if c.Direction() == types.DirectionDown {
			color = candleDownColor
		}

		x := cb.Left + xrange.Translate(float64(c.Time))
		yOpen := cb.Bottom - yrange.Translate(c.Open)
		yClose := cb.Bottom - yrange.Translate(c.Close)
		yHigh := cb.Bottom - yrange.Translate(c.High)
		yLow := cb.Bottom - yrange.Translate(c.Low)

		// wick
		r.SetStrokeColor(color)
		r.SetStrokeWidth(1.0)
		r.MoveTo(x, yHigh)
		r.LineTo(x, yLow)
		r.Stroke()

		// body
		top, bottom := yOpen, yClose
		if bottom < top {
			top, bottom = bottom, top
		}
		if bottom == top {
			bottom = top + 1
		}

		r.SetFillColor(color)
		r.MoveTo(x-bodyHalf, top)
		r.LineTo(x+bodyHalf, top)
		r.LineTo(x+bodyHalf, bottom)
		r.LineTo(x-bodyHalf, bottom)
		r.Close()
		r.Fill()
	}
}

func bodyHalfWidth(cb chart.Box, numCandles int) int {
	if numCandles == 0 {
		return 1
	}
	half := cb.Width() / numCandles / 3
	if half < 1 {
		half = 1
	}
	return half
}

var _ chart.Series = &annotationSeries{}

type annotationSeries struct {
	annotations []types.Annotation
}

func (as *annotationSeries) GetName() string { return "annotations" }

func (as *annotationSeries) GetStyle() chart.Style {
	return chart.Style{StrokeWidth: 1.0}
}

func (as *annotationSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (as *annotationSeries) Validate() error { return nil }

func (as *annotationSeries) Render(r chart.Renderer, cb chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	for _, a := range as.annotations {
		r.SetStrokeColor(annotationColor(a))
		r.SetStrokeWidth(1.0)

		switch v := a.(type) {
		case types.HorizontalLine:
			y := cb.Bottom - yrange.Translate(v.Price)
			r.MoveTo(cb.Left, y)
			r.LineTo(cb.Right, y)

		case types.VerticalLine:
			x := cb.Left + xrange.Translate(float64(v.Time))
			r.MoveTo(x, cb.Top)
			r.LineTo(x, cb.Bottom)

		case types.TrendLine:
			r.MoveTo(cb.Left+xrange.Translate(float64(v.P1.Time)), cb.Bottom-yrange.Translate(v.P1.Price))
			r.LineTo(cb.Left+xrange.Translate(float64(v.P2.Time)), cb.Bottom-yrange.Translate(v.P2.Price))
		}

		r.Stroke()
	}
}

func annotationColor(a types.Annotation) drawing.Color {
	hex := a.Color()
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if hex == "" {
		return drawing.ColorBlue
	}
	return drawing.ColorFromHex(hex)
}
