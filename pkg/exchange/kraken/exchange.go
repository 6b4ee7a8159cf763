package kraken

import (
	"context"

	"github.com/ukimsanov/Crypto-List/pkg/exchange/kraken/krakenapi"
	"github.com/ukimsanov/Crypto-List/pkg/types"
)

type Exchange struct {
	client *krakenapi.RestClient
}

func New() *Exchange {
	return &Exchange{
		client: krakenapi.NewClient(),
	}
}

func (e *Exchange) Name() types.ExchangeName {
	return types.ExchangeKraken
}

func (e *Exchange) QueryOHLC(ctx context.Context, symbol string, interval types.Interval) ([]types.OHLCRow, error) {
	return e.client.GetOHLC(ctx, OHLCPair(symbol), interval.Minutes())
}

func (e *Exchange) UpstreamPair(symbol string) string {
	return OHLCPair(symbol)
}

func (e *Exchange) NewStream(symbol string) types.PriceStream {
	return NewStream(WSPair(symbol))
}
