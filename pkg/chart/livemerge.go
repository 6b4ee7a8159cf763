package chart

import (
	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// LiveMerger folds streamed price ticks into the most recent real candle.
// History and placeholder points are never touched.
//
//go:generate callbackgen -type LiveMerger
type LiveMerger struct {
	pointUpdateCallbacks []func(point types.SeriesPoint)
}

// Apply mutates the candle at LastRealIndex in place and emits the updated
// point for an incremental redraw. A tick without a loaded series is
// dropped and false is returned.
func (m *LiveMerger) Apply(series *types.Series, price float64) bool {
	candle, ok := series.LastCandle()
	if !ok {
		return false
	}

	candle.ApplyPrice(price)
	m.EmitPointUpdate(series.Points[series.LastRealIndex])
	return true
}
