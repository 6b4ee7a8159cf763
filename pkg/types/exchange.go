package types

import "context"

type ExchangeName string

const (
	ExchangeKraken  ExchangeName = "kraken"
	ExchangeBinance ExchangeName = "binance"
)

// Exchange provides OHLC history and per-symbol price streams. One history
// fetch per timeframe change; no backfill.
type Exchange interface {
	Name() ExchangeName

	// QueryOHLC returns rows of [timestampMillis, open, high, low, close]
	// ordered ascending by time.
	QueryOHLC(ctx context.Context, symbol string, interval Interval) ([]OHLCRow, error)

	// UpstreamPair reports the exchange-native pair a currency symbol maps
	// to, surfaced in the history response.
	UpstreamPair(symbol string) string

	// NewStream allocates an unconnected price stream scoped to one symbol.
	NewStream(symbol string) PriceStream
}

// PriceStream delivers streamed last-price updates for a single symbol.
// Reconnection is the stream's own concern, never the consumer's.
type PriceStream interface {
	OnConnect(cb func())
	OnDisconnect(cb func())
	OnPriceUpdate(cb func(tick PriceTick))

	Connect(ctx context.Context) error
	Close() error
}
