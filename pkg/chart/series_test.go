package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

func historyRows(start int64, step int64, prices ...float64) []types.OHLCRow {
	rows := make([]types.OHLCRow, 0, len(prices))
	for i, p := range prices {
		t := start + int64(i)*step
		rows = append(rows, types.OHLCRow{float64(t * 1000), p, p + 2, p - 2, p + 1})
	}
	return rows
}

func TestBuildSeries(t *testing.T) {
	step := types.Interval1h.Seconds()
	rows := historyRows(1700000000, step, 100, 101, 102)

	series, err := BuildSeries(rows, types.Interval1h)
	require.NoError(t, err)

	expectedPlaceholders := int(int64(lookAhead.Seconds()) / step)
	assert.Equal(t, len(rows)+expectedPlaceholders, series.Len())
	assert.Equal(t, len(rows), series.NumCandles())
	assert.Equal(t, expectedPlaceholders, series.NumPlaceholders())
	assert.Equal(t, len(rows)-1, series.LastRealIndex)

	// candle times are seconds, not milliseconds
	assert.Equal(t, int64(1700000000), series.Points[0].Time)

	// placeholders continue at exact interval spacing
	last := series.Points[series.LastRealIndex]
	assert.False(t, last.Placeholder)
	for i := series.LastRealIndex + 1; i < series.Len(); i++ {
		p := series.Points[i]
		assert.True(t, p.Placeholder)
		assert.Equal(t, last.Time+int64(i-series.LastRealIndex)*step, p.Time)
		assert.Zero(t, p.Open)
	}
}

func TestBuildSeries_placeholderCountPerInterval(t *testing.T) {
	for _, interval := range []types.Interval{types.Interval1m, types.Interval15m, types.Interval1d} {
		step := interval.Seconds()
		rows := historyRows(1700000000, step, 50, 51)

		series, err := BuildSeries(rows, interval)
		require.NoError(t, err)
		assert.Equal(t, int(int64(lookAhead.Seconds())/step), series.NumPlaceholders(), "interval %s", interval)
	}
}

func TestBuildSeries_emptyHistory(t *testing.T) {
	_, err := BuildSeries(nil, types.Interval1h)
	assert.ErrorIs(t, err, ErrEmptyHistory)
}

func TestBuildSeries_unsupportedInterval(t *testing.T) {
	rows := historyRows(1700000000, 60, 100)
	_, err := BuildSeries(rows, types.Interval("3m"))
	assert.Error(t, err)
}

func TestBuildSeries_outOfOrderRows(t *testing.T) {
	step := types.Interval1h.Seconds()
	rows := historyRows(1700000000, step, 100, 101, 102)
	rows[2][0] = rows[0][0] // duplicate timestamp

	series, err := BuildSeries(rows, types.Interval1h)
	assert.Error(t, err)
	assert.Nil(t, series, "a partial series must never come back")
}

func TestInitialVisibleRange(t *testing.T) {
	step := types.Interval1h.Seconds()

	t.Run("short history shows everything", func(t *testing.T) {
		rows := historyRows(1700000000, step, 100, 101, 102, 103)
		series, err := BuildSeries(rows, types.Interval1h)
		require.NoError(t, err)

		r := InitialVisibleRange(series)
		assert.Equal(t, series.Points[0].Time, r.From)

		// the 20% ratio floors to zero steps here, the minimum of one
		// interval still applies
		last := series.Points[series.LastRealIndex].Time
		assert.Equal(t, last+step, r.To)
	})

	t.Run("single candle still gets future space", func(t *testing.T) {
		rows := historyRows(1700000000, step, 100)
		series, err := BuildSeries(rows, types.Interval1h)
		require.NoError(t, err)

		r := InitialVisibleRange(series)
		assert.Equal(t, int64(1700000000), r.From)
		assert.Equal(t, int64(1700000000)+step, r.To)
	})

	t.Run("long history is clamped", func(t *testing.T) {
		prices := make([]float64, 0, 300)
		for i := 0; i < 300; i++ {
			prices = append(prices, 100+float64(i))
		}
		rows := historyRows(1700000000, step, prices...)
		series, err := BuildSeries(rows, types.Interval1h)
		require.NoError(t, err)

		r := InitialVisibleRange(series)
		first := series.Points[series.LastRealIndex-maxInitialCandles+1].Time
		last := series.Points[series.LastRealIndex].Time
		assert.Equal(t, first, r.From)
		assert.Equal(t, last+int64(float64(maxInitialCandles)*futureSpaceRatio)*step, r.To)
	})
}
