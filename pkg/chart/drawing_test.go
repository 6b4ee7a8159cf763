package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// drawingFixture maps x straight to time and y through a 50000-top price
// scale, enough for clicks to land.
func drawingFixture() *DrawingEngine {
	conv := &stubConverter{
		pixelToTime: func(x float64) (int64, bool) {
			return 1700000000 + int64(x), true
		},
		timeToPixel: func(t int64) (float64, bool) {
			return float64(t - 1700000000), true
		},
		priceRange: [2]float64{0, 50000},
	}

	e := NewDrawingEngine()
	e.SetMapper(NewCoordinateMapper(conv, twoCandleSeries(1700000000, 1700003600)))
	return e
}

func TestDrawingEngine_horizontal(t *testing.T) {
	e := drawingFixture()

	e.SelectTool(ToolHorizontal)
	assert.Equal(t, StateArmedHorizontal, e.State())

	e.Click(100, 0) // y=0 maps to the top of the scale
	assert.Equal(t, StateIdle, e.State())

	annotations := e.Annotations()
	require.Len(t, annotations, 1)
	h, ok := annotations[0].(types.HorizontalLine)
	require.True(t, ok)
	assert.Equal(t, 50000.0, h.Price)
	assert.Equal(t, types.AnnotationID(1), h.ID())
}

func TestDrawingEngine_vertical(t *testing.T) {
	e := drawingFixture()

	e.SelectTool(ToolVertical)
	assert.Equal(t, StateArmedVertical, e.State())

	e.Click(120, 40)
	assert.Equal(t, StateIdle, e.State())

	annotations := e.Annotations()
	require.Len(t, annotations, 1)
	v, ok := annotations[0].(types.VerticalLine)
	require.True(t, ok)
	assert.Equal(t, int64(1700000120), v.Time)
}

func TestDrawingEngine_trendline(t *testing.T) {
	e := drawingFixture()

	e.SelectTool(ToolTrendLine)
	assert.Equal(t, StateArmedTrendFirst, e.State())

	e.Click(10, 100)
	assert.Equal(t, StateArmedTrendSecond, e.State())
	first, held := e.Session()
	require.True(t, held)
	assert.Equal(t, int64(1700000010), first.Time)

	e.Click(20, 200)
	assert.Equal(t, StateIdle, e.State())
	_, held = e.Session()
	assert.False(t, held)

	annotations := e.Annotations()
	require.Len(t, annotations, 1)
	tl, ok := annotations[0].(types.TrendLine)
	require.True(t, ok)
	assert.Equal(t, int64(1700000010), tl.P1.Time)
	assert.Equal(t, int64(1700000020), tl.P2.Time)
	assert.Equal(t, 49900.0, tl.P1.Price)
	assert.Equal(t, 49800.0, tl.P2.Price)
}

func TestDrawingEngine_escapeDropsSession(t *testing.T) {
	e := drawingFixture()

	e.SelectTool(ToolTrendLine)
	e.Click(10, 100)
	assert.Equal(t, StateArmedTrendSecond, e.State())

	e.Escape()
	assert.Equal(t, StateIdle, e.State())
	assert.Empty(t, e.Annotations())
	_, held := e.Session()
	assert.False(t, held)
}

func TestDrawingEngine_toolToggle(t *testing.T) {
	e := drawingFixture()

	e.SelectTool(ToolHorizontal)
	e.SelectTool(ToolHorizontal)
	assert.Equal(t, StateIdle, e.State())

	// mid-trend re-select of the same tool disarms too
	e.SelectTool(ToolTrendLine)
	e.Click(10, 100)
	e.SelectTool(ToolTrendLine)
	assert.Equal(t, StateIdle, e.State())
	_, held := e.Session()
	assert.False(t, held)

	// switching tools drops the pending session
	e.SelectTool(ToolTrendLine)
	e.Click(10, 100)
	e.SelectTool(ToolVertical)
	assert.Equal(t, StateArmedVertical, e.State())
	_, held = e.Session()
	assert.False(t, held)
}

func TestDrawingEngine_failedMappingIsNoop(t *testing.T) {
	e := NewDrawingEngine()
	e.SetMapper(NewCoordinateMapper(&stubConverter{}, twoCandleSeries(1700000000, 1700003600)))

	e.SelectTool(ToolHorizontal)
	e.Click(100, 100)
	assert.Equal(t, StateArmedHorizontal, e.State(), "a dropped click keeps the armed state")
	assert.Empty(t, e.Annotations())
}

func TestDrawingEngine_nilMapper(t *testing.T) {
	e := NewDrawingEngine()

	e.SelectTool(ToolVertical)
	e.Click(100, 100)
	assert.Equal(t, StateArmedVertical, e.State())
	assert.Empty(t, e.Annotations())
}

func TestDrawingEngine_deleteLast(t *testing.T) {
	e := drawingFixture()

	e.SelectTool(ToolHorizontal)
	e.Click(0, 10)
	e.SelectTool(ToolHorizontal)
	e.Click(0, 20)
	e.SelectTool(ToolVertical)
	e.Click(30, 0)
	require.Len(t, e.Annotations(), 3)

	e.DeleteLast()

	annotations := e.Annotations()
	require.Len(t, annotations, 2)
	assert.Equal(t, types.AnnotationID(1), annotations[0].ID())
	assert.Equal(t, types.AnnotationID(2), annotations[1].ID())

	// empty store is a no-op and the state stays put
	e.DeleteLast()
	e.DeleteLast()
	e.SelectTool(ToolHorizontal)
	e.DeleteLast()
	assert.Equal(t, StateArmedHorizontal, e.State())
}

func TestDrawingEngine_clearAll(t *testing.T) {
	e := drawingFixture()

	e.SelectTool(ToolHorizontal)
	e.Click(0, 10)
	e.SelectTool(ToolTrendLine)
	e.Click(10, 100)

	e.ClearAll()
	assert.Empty(t, e.Annotations())
	assert.Equal(t, StateIdle, e.State())
	_, held := e.Session()
	assert.False(t, held)
}

func TestDrawingEngine_resetSessionKeepsStore(t *testing.T) {
	e := drawingFixture()

	e.SelectTool(ToolHorizontal)
	e.Click(0, 10)
	e.SelectTool(ToolTrendLine)
	e.Click(10, 100)

	e.ResetSession()
	assert.Equal(t, StateIdle, e.State())
	assert.Len(t, e.Annotations(), 1, "the annotation store survives a timeframe change")
}

func TestDrawingEngine_idsAreMonotonic(t *testing.T) {
	e := drawingFixture()

	e.SelectTool(ToolHorizontal)
	e.Click(0, 10)
	e.DeleteLast()
	e.SelectTool(ToolHorizontal)
	e.Click(0, 20)

	annotations := e.Annotations()
	require.Len(t, annotations, 1)
	assert.Equal(t, types.AnnotationID(2), annotations[0].ID(), "ids are never reused")
}
