package binance

import (
	"context"
	"strconv"
	"sync"

	"github.com/adshao/go-binance/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// Stream adapts the go-binance aggregated trade feed to the PriceStream
// interface. Reconnection is left to go-binance's own keepalive handling;
// a dropped feed surfaces as a disconnect.
type Stream struct {
	types.StandardPriceStream

	symbol string

	mu    sync.Mutex
	stopC chan struct{}
}

func NewStream(symbol string) *Stream {
	return &Stream{
		StandardPriceStream: types.NewStandardPriceStream(),
		symbol:              symbol,
	}
}

func (s *Stream) Connect(ctx context.Context) error {
	doneC, stopC, err := binance.WsAggTradeServe(pair(s.symbol), s.handleTrade, func(err error) {
		log.WithError(err).Error("binance stream error")
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.stopC = stopC
	s.mu.Unlock()

	s.EmitConnect()

	go func() {
		select {
		case <-ctx.Done():
			s.stop()
		case <-doneC:
		}
		s.EmitDisconnect()
	}()

	return nil
}

func (s *Stream) handleTrade(event *binance.WsAggTradeEvent) {
	price, err := strconv.ParseFloat(event.Price, 64)
	if err != nil {
		log.WithError(err).Errorf("unparsable trade price %q", event.Price)
		return
	}

	s.EmitPriceUpdate(types.PriceTick{
		Symbol: s.symbol,
		Price:  price,
	})
}

func (s *Stream) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopC == nil {
		return
	}

	select {
	case <-s.stopC:
	default:
		close(s.stopC)
	}
	s.stopC = nil
}

func (s *Stream) Close() error {
	s.stop()
	return nil
}
