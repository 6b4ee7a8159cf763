package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// stubConverter fails every conversion unless a hook is installed, which is
// how a rendering engine behaves for coordinates off the plotted range.
type stubConverter struct {
	timeToPixel func(t int64) (float64, bool)
	pixelToTime func(x float64) (int64, bool)
	priceRange  [2]float64
}

func (s *stubConverter) TimeToPixel(t int64) (float64, bool) {
	if s.timeToPixel == nil {
		return 0, false
	}
	return s.timeToPixel(t)
}

func (s *stubConverter) PixelToTime(x float64) (int64, bool) {
	if s.pixelToTime == nil {
		return 0, false
	}
	return s.pixelToTime(x)
}

func (s *stubConverter) PriceToPixel(p float64) (float64, bool) {
	if p < s.priceRange[0] || p > s.priceRange[1] || s.priceRange[1] == 0 {
		return 0, false
	}
	return s.priceRange[1] - p, true
}

func (s *stubConverter) PixelToPrice(y float64) (float64, bool) {
	if s.priceRange[1] == 0 {
		return 0, false
	}
	return s.priceRange[1] - y, true
}

func twoCandleSeries(t1, t2 int64) *types.Series {
	return &types.Series{
		Interval: types.Interval1h,
		Points: []types.SeriesPoint{
			{Candle: types.Candle{Time: t1, Open: 100, High: 102, Low: 98, Close: 101}},
			{Candle: types.Candle{Time: t2, Open: 101, High: 103, Low: 99, Close: 102}},
		},
		LastRealIndex: 1,
	}
}

func TestCoordinateMapper_PixelToTime_native(t *testing.T) {
	conv := &stubConverter{
		pixelToTime: func(x float64) (int64, bool) {
			return 1700000000, true
		},
	}
	m := NewCoordinateMapper(conv, twoCandleSeries(1700000000, 1700003600))

	got, ok := m.PixelToTime(100)
	assert.True(t, ok)
	assert.Equal(t, int64(1700000000), got)
}

func TestCoordinateMapper_PixelToTime_extrapolation(t *testing.T) {
	t1 := int64(1700000000)
	t2 := t1 + 3600
	series := twoCandleSeries(t1, t2)

	conv := &stubConverter{
		timeToPixel: func(ts int64) (float64, bool) {
			switch ts {
			case t1:
				return 780, true
			case t2:
				return 790, true
			}
			return 0, false
		},
	}
	m := NewCoordinateMapper(conv, series)

	// last two candles sit 10 pixels apart, so each pixel past the last one
	// is worth (t2-t1)/10 seconds
	got, ok := m.PixelToTime(800)
	require.True(t, ok)
	assert.Equal(t, t2+(800-790)*(t2-t1)/10, got)

	// no extrapolation backwards
	_, ok = m.PixelToTime(785)
	assert.False(t, ok)

	_, ok = m.PixelToTime(790)
	assert.False(t, ok)
}

func TestCoordinateMapper_PixelToTime_degenerate(t *testing.T) {
	t.Run("fewer than two candles", func(t *testing.T) {
		series := &types.Series{
			Interval:      types.Interval1h,
			Points:        []types.SeriesPoint{{Candle: types.Candle{Time: 1700000000}}},
			LastRealIndex: 0,
		}
		m := NewCoordinateMapper(&stubConverter{}, series)
		_, ok := m.PixelToTime(800)
		assert.False(t, ok)
	})

	t.Run("candles collapsed to one pixel", func(t *testing.T) {
		conv := &stubConverter{
			timeToPixel: func(int64) (float64, bool) { return 790, true },
		}
		m := NewCoordinateMapper(conv, twoCandleSeries(1700000000, 1700003600))
		_, ok := m.PixelToTime(800)
		assert.False(t, ok)
	})
}

func TestCoordinateMapper_PixelToPrice_neverExtrapolates(t *testing.T) {
	m := NewCoordinateMapper(&stubConverter{}, twoCandleSeries(1700000000, 1700003600))

	_, ok := m.PixelToPrice(10)
	assert.False(t, ok, "an off-scale pixel is a hard rejection")
}

func TestCoordinateMapper_PixelToPoint(t *testing.T) {
	t1 := int64(1700000000)
	t2 := t1 + 3600
	conv := &stubConverter{
		timeToPixel: func(ts int64) (float64, bool) {
			switch ts {
			case t1:
				return 780, true
			case t2:
				return 790, true
			}
			return 0, false
		},
		priceRange: [2]float64{0, 50000},
	}
	m := NewCoordinateMapper(conv, twoCandleSeries(t1, t2))

	point, ok := m.PixelToPoint(800, 1000)
	require.True(t, ok)
	assert.Equal(t, t2+3600, point.Time)
	assert.Equal(t, 49000.0, point.Price)

	// both axes must resolve
	conv.priceRange = [2]float64{}
	_, ok = m.PixelToPoint(800, 1000)
	assert.False(t, ok)
}
