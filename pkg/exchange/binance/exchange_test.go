package binance

import (
	"testing"

	"github.com/adshao/go-binance/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

func TestConvertKline(t *testing.T) {
	row, err := convertKline(&binance.Kline{
		OpenTime: 1700000000000,
		Open:     "109000.10",
		High:     "109500.00",
		Low:      "108500.50",
		Close:    "109250.25",
	})
	require.NoError(t, err)

	assert.Equal(t, types.OHLCRow{1700000000000, 109000.10, 109500.00, 108500.50, 109250.25}, row)

	_, err = convertKline(&binance.Kline{Open: "not a number"})
	assert.Error(t, err)
}

func TestPair(t *testing.T) {
	assert.Equal(t, "BTCUSDT", pair("BTC"))
	assert.Equal(t, "ETHUSDT", New().UpstreamPair("ETH"))
}
