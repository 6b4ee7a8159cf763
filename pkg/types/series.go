package types

// OHLCRow is one raw history row as delivered by the history fetch:
// [timestampMillis, open, high, low, close].
type OHLCRow [5]float64

func (r OHLCRow) TimestampMillis() int64 { return int64(r[0]) }
func (r OHLCRow) Open() float64          { return r[1] }
func (r OHLCRow) High() float64          { return r[2] }
func (r OHLCRow) Low() float64           { return r[3] }
func (r OHLCRow) Close() float64         { return r[4] }

// Series is the renderable point sequence: real candles first, then future
// placeholder points. Times are strictly increasing. Only the candle at
// LastRealIndex may be mutated after the build.
type Series struct {
	Interval Interval

	Points []SeriesPoint

	// LastRealIndex is the boundary between real candles and placeholders.
	// -1 when the series holds no real candle.
	LastRealIndex int
}

func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Points)
}

func (s *Series) NumCandles() int {
	if s == nil {
		return 0
	}
	return s.LastRealIndex + 1
}

func (s *Series) NumPlaceholders() int {
	if s == nil {
		return 0
	}
	return len(s.Points) - s.NumCandles()
}

// LastCandle returns the most recent real candle, the only mutable point.
func (s *Series) LastCandle() (*Candle, bool) {
	if s == nil || s.LastRealIndex < 0 || s.LastRealIndex >= len(s.Points) {
		return nil, false
	}
	return &s.Points[s.LastRealIndex].Candle, true
}

// CandleAt returns the i-th real candle counted back from the last one,
// offset 0 being the last real candle.
func (s *Series) CandleAt(offsetFromLast int) (*Candle, bool) {
	if s == nil {
		return nil, false
	}
	i := s.LastRealIndex - offsetFromLast
	if i < 0 || i > s.LastRealIndex {
		return nil, false
	}
	return &s.Points[i].Candle, true
}
