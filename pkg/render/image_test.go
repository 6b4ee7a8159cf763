package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

func TestSnapshot_Render(t *testing.T) {
	snapshot := &Snapshot{
		Points: testPoints(),
		Annotations: []types.Annotation{
			types.NewHorizontalLine(1, 110, "#2962ff"),
			types.NewVerticalLine(2, 2000, "#787b86"),
			types.NewTrendLine(3,
				types.Point{Time: 1000, Price: 100},
				types.Point{Time: 3000, Price: 118},
				"#f7525f"),
		},
	}

	var buf bytes.Buffer
	err := snapshot.Render(&buf)
	require.NoError(t, err)

	// PNG signature
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestSnapshot_Render_tooFewCandles(t *testing.T) {
	snapshot := &Snapshot{
		Points: []types.SeriesPoint{
			{Candle: types.Candle{Time: 1000, Open: 1, High: 2, Low: 0.5, Close: 1.5}},
			{Candle: types.Candle{Time: 2000}, Placeholder: true},
		},
	}

	var buf bytes.Buffer
	assert.Error(t, snapshot.Render(&buf))
}

func TestRealCandles(t *testing.T) {
	candles := realCandles(testPoints())
	assert.Len(t, candles, 3)
	for _, c := range candles {
		assert.NotZero(t, c.Open)
	}
}
