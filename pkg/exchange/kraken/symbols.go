package kraken

import "strings"

// Kraken spells some majors with its legacy X/Z prefixes on the OHLC REST
// API, while the v2 websocket uses plain BTC/USD style pairs.

var ohlcPairMap = map[string]string{
	"BTC":   "XXBTZUSD",
	"ETH":   "XETHZUSD",
	"SOL":   "SOLUSD",
	"XRP":   "XXRPZUSD",
	"ADA":   "ADAUSD",
	"DOGE":  "XDGUSD",
	"DOT":   "DOTUSD",
	"MATIC": "MATICUSD",
	"LTC":   "XLTCZUSD",
	"LINK":  "LINKUSD",
	"UNI":   "UNIUSD",
	"XLM":   "XXLMZUSD",
	"ATOM":  "ATOMUSD",
	"XMR":   "XXMRZUSD",
	"ETC":   "XETCZUSD",
	"FIL":   "FILUSD",
	"NEAR":  "NEARUSD",
	"ALGO":  "ALGOUSD",
}

// OHLCPair maps a currency symbol to the Kraken OHLC REST pair.
func OHLCPair(symbol string) string {
	symbol = strings.ToUpper(symbol)
	if pair, ok := ohlcPairMap[symbol]; ok {
		return pair
	}
	return symbol + "USD"
}

// WSPair maps a currency symbol to the Kraken websocket v2 pair.
func WSPair(symbol string) string {
	return strings.ToUpper(symbol) + "/USD"
}
