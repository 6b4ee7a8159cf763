package binance

import (
	"context"
	"strconv"

	"github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// Binance quotes against USDT where Kraken quotes USD; close enough for a
// chart, and it keeps the symbol surface identical across exchanges.
const quoteCurrency = "USDT"

const klineLimit = 720

type Exchange struct {
	client *binance.Client
}

func New() *Exchange {
	// public market data only, no credentials needed
	return &Exchange{
		client: binance.NewClient("", ""),
	}
}

func (e *Exchange) Name() types.ExchangeName {
	return types.ExchangeBinance
}

func (e *Exchange) QueryOHLC(ctx context.Context, symbol string, interval types.Interval) ([]types.OHLCRow, error) {
	klines, err := e.client.NewKlinesService().
		Symbol(pair(symbol)).
		Interval(interval.String()).
		Limit(klineLimit).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "binance klines")
	}

	rows := make([]types.OHLCRow, 0, len(klines))
	for i, k := range klines {
		row, err := convertKline(k)
		if err != nil {
			return nil, errors.Wrapf(err, "binance kline %d", i)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func convertKline(k *binance.Kline) (row types.OHLCRow, err error) {
	row[0] = float64(k.OpenTime)

	fields := []string{k.Open, k.High, k.Low, k.Close}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return row, errors.Wrapf(err, "parse %q", f)
		}
		row[i+1] = v
	}

	return row, nil
}

func (e *Exchange) UpstreamPair(symbol string) string {
	return pair(symbol)
}

func (e *Exchange) NewStream(symbol string) types.PriceStream {
	return NewStream(symbol)
}

func pair(symbol string) string {
	return symbol + quoteCurrency
}
