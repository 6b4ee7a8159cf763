package exchange

import (
	"fmt"

	"github.com/ukimsanov/Crypto-List/pkg/exchange/binance"
	"github.com/ukimsanov/Crypto-List/pkg/exchange/kraken"
	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// New constructs a market data exchange by name. Kraken is the default
// upstream; Binance is the alternative for regions where Kraken is slow.
func New(name types.ExchangeName) (types.Exchange, error) {
	switch name {
	case types.ExchangeKraken, "":
		return kraken.New(), nil

	case types.ExchangeBinance:
		return binance.New(), nil
	}

	return nil, fmt.Errorf("unsupported exchange: %s", name)
}
