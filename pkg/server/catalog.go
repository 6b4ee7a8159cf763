package server

import "strings"

// Currency is one catalog entry. IDs follow the CoinMarketCap numbering the
// original listing used, so existing client links keep working.
type Currency struct {
	ID     int    `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var currencies = []Currency{
	{ID: 1, Symbol: "BTC", Name: "Bitcoin"},
	{ID: 1027, Symbol: "ETH", Name: "Ethereum"},
	{ID: 5426, Symbol: "SOL", Name: "Solana"},
	{ID: 52, Symbol: "XRP", Name: "XRP"},
	{ID: 2010, Symbol: "ADA", Name: "Cardano"},
	{ID: 74, Symbol: "DOGE", Name: "Dogecoin"},
	{ID: 6636, Symbol: "DOT", Name: "Polkadot"},
	{ID: 3890, Symbol: "MATIC", Name: "Polygon"},
	{ID: 2, Symbol: "LTC", Name: "Litecoin"},
	{ID: 1975, Symbol: "LINK", Name: "Chainlink"},
	{ID: 7083, Symbol: "UNI", Name: "Uniswap"},
	{ID: 512, Symbol: "XLM", Name: "Stellar"},
	{ID: 3794, Symbol: "ATOM", Name: "Cosmos"},
	{ID: 328, Symbol: "XMR", Name: "Monero"},
	{ID: 1321, Symbol: "ETC", Name: "Ethereum Classic"},
	{ID: 2280, Symbol: "FIL", Name: "Filecoin"},
	{ID: 6535, Symbol: "NEAR", Name: "NEAR Protocol"},
	{ID: 4030, Symbol: "ALGO", Name: "Algorand"},
}

var currencyByID = func() map[int]Currency {
	m := make(map[int]Currency, len(currencies))
	for _, c := range currencies {
		m[c.ID] = c
	}
	return m
}()

func Currencies() []Currency {
	return currencies
}

func LookupCurrency(id int) (Currency, bool) {
	c, ok := currencyByID[id]
	return c, ok
}

func LookupCurrencyBySymbol(symbol string) (Currency, bool) {
	symbol = strings.ToUpper(symbol)
	for _, c := range currencies {
		if c.Symbol == symbol {
			return c, true
		}
	}
	return Currency{}, false
}
