package chart

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// lookAhead is how far past the last candle the time axis extends with
// placeholder points, so annotations can be placed ahead of the last price.
const lookAhead = 30 * 24 * time.Hour

// Presentation defaults for the initial visible range: at most this many of
// the most recent candles, plus a fraction of that count as future space.
const maxInitialCandles = 100
const futureSpaceRatio = 0.2

var ErrEmptyHistory = errors.New("history is empty")

// BuildSeries turns raw history rows into a renderable series: candle times
// are truncated to seconds, and placeholder points are appended at interval
// spacing to cover the look-ahead window. The build fails as a whole on bad
// input; a partial series is never returned.
func BuildSeries(rows []types.OHLCRow, interval types.Interval) (*types.Series, error) {
	if interval.Minutes() == 0 {
		return nil, errors.Errorf("interval %q is not supported", interval)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyHistory
	}

	step := interval.Seconds()
	numPlaceholders := int(int64(lookAhead.Seconds()) / step)

	points := make([]types.SeriesPoint, 0, len(rows)+numPlaceholders)

	var prevTime int64
	for i, row := range rows {
		t := types.NewMillisecondTimestampFromInt(row.TimestampMillis()).Unix()
		if i > 0 && t <= prevTime {
			return nil, errors.Errorf("history rows out of order at index %d: %d after %d", i, t, prevTime)
		}
		prevTime = t

		points = append(points, types.SeriesPoint{
			Candle: types.Candle{
				Time:  t,
				Open:  row.Open(),
				High:  row.High(),
				Low:   row.Low(),
				Close: row.Close(),
			},
		})
	}

	lastRealIndex := len(points) - 1

	next := prevTime + step
	for i := 0; i < numPlaceholders; i++ {
		points = append(points, types.SeriesPoint{
			Candle:      types.Candle{Time: next},
			Placeholder: true,
		})
		next += step
	}

	return &types.Series{
		Interval:      interval,
		Points:        points,
		LastRealIndex: lastRealIndex,
	}, nil
}

// InitialVisibleRange shows the most recent candles with some empty space to
// the right of the last price.
func InitialVisibleRange(series *types.Series) types.TimeRange {
	numCandles := series.NumCandles()
	if numCandles == 0 {
		return types.TimeRange{}
	}

	visible := numCandles
	if visible > maxInitialCandles {
		visible = maxInitialCandles
	}

	step := series.Interval.Seconds()
	first := series.Points[series.LastRealIndex-visible+1].Time
	last := series.Points[series.LastRealIndex].Time

	// always leave at least one interval of future space, even for a very
	// short history, so there is room to draw ahead of the last price
	steps := int64(float64(visible) * futureSpaceRatio)
	if steps == 0 {
		steps = 1
	}

	return types.TimeRange{From: first, To: last + steps*step}
}
