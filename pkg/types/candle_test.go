package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandle_ApplyPrice(t *testing.T) {
	c := Candle{Time: 1700000000, Open: 100, High: 102, Low: 98, Close: 100}

	c.ApplyPrice(105)
	assert.Equal(t, Candle{Time: 1700000000, Open: 100, High: 105, Low: 98, Close: 105}, c)

	c.ApplyPrice(97)
	assert.Equal(t, Candle{Time: 1700000000, Open: 100, High: 105, Low: 97, Close: 97}, c)

	// inside the range only the close moves
	c.ApplyPrice(100)
	assert.Equal(t, Candle{Time: 1700000000, Open: 100, High: 105, Low: 97, Close: 100}, c)
}

func TestCandle_Direction(t *testing.T) {
	up := Candle{Open: 100, Close: 101}
	down := Candle{Open: 100, Close: 99}
	flat := Candle{Open: 100, Close: 100}

	assert.Equal(t, Direction(DirectionUp), up.Direction())
	assert.Equal(t, Direction(DirectionDown), down.Direction())
	assert.Equal(t, Direction(DirectionNone), flat.Direction())
}

func TestSeriesPoint_MarshalJSON(t *testing.T) {
	point := SeriesPoint{Candle: Candle{Time: 1700000000, Open: 1, High: 2, Low: 0.5, Close: 1.5}}
	out, err := json.Marshal(point)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"time":1700000000,"open":1,"high":2,"low":0.5,"close":1.5}`, string(out))

	placeholder := SeriesPoint{Candle: Candle{Time: 1700003600}, Placeholder: true}
	out, err = json.Marshal(placeholder)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"time":1700003600}`, string(out))
}
