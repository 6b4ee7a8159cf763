package types

// PriceTick is one streamed last-price update. The stream is opened per
// currency, so the symbol is informational; the tick is trusted by channel
// identity ("one stream, one currency") and not re-validated downstream.
type PriceTick struct {
	Symbol string
	Price  float64
}

// PriceUpdate is the wire message fanned out to chart clients.
type PriceUpdate struct {
	Type      string  `json:"type"`
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Timestamp *int64  `json:"timestamp"`
}

const PriceUpdateType = "price_update"

func NewPriceUpdate(symbol string, price float64) PriceUpdate {
	return PriceUpdate{Type: PriceUpdateType, Symbol: symbol, Price: price}
}
