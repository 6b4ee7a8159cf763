package types

import (
	"encoding/json"
	"fmt"
)

type Direction int

const DirectionUp = 1
const DirectionNone = 0
const DirectionDown = -1

// Candle is one OHLC bar. Time is unix seconds aligned to the interval
// start, the same resolution the chart time axis uses.
type Candle struct {
	Time  int64   `json:"time"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

func (c *Candle) Direction() Direction {
	switch {
	case c.Close > c.Open:
		return DirectionUp
	case c.Close < c.Open:
		return DirectionDown
	}
	return DirectionNone
}

// ApplyPrice folds a streamed last price into the candle: the close follows
// the price, high and low only widen. Open never changes.
func (c *Candle) ApplyPrice(price float64) {
	c.Close = price
	if price > c.High {
		c.High = price
	}
	if price < c.Low {
		c.Low = price
	}
}

func (c *Candle) String() string {
	return fmt.Sprintf("T:%d O:%f H:%f L:%f C:%f", c.Time, c.Open, c.High, c.Low, c.Close)
}

// SeriesPoint is a single entry on the chart time axis: either a real candle
// or a future placeholder that only carries a timestamp.
type SeriesPoint struct {
	Candle

	Placeholder bool `json:"-"`
}

// MarshalJSON emits only the timestamp for placeholder points, matching the
// whitespace-data convention of the rendering engine.
func (p SeriesPoint) MarshalJSON() ([]byte, error) {
	if p.Placeholder {
		return json.Marshal(struct {
			Time int64 `json:"time"`
		}{Time: p.Time})
	}

	return json.Marshal(p.Candle)
}
