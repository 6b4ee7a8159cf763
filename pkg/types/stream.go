package types

import (
	"github.com/gorilla/websocket"
)

// StandardPriceStream carries the event plumbing shared by the exchange
// stream implementations.
//
//go:generate callbackgen -type StandardPriceStream -interface
type StandardPriceStream struct {
	ReconnectC chan struct{}

	connectCallbacks []func()

	disconnectCallbacks []func()

	priceUpdateCallbacks []func(tick PriceTick)
}

func NewStandardPriceStream() StandardPriceStream {
	return StandardPriceStream{
		ReconnectC: make(chan struct{}, 1),
	}
}

func (s *StandardPriceStream) Reconnect() {
	select {
	case s.ReconnectC <- struct{}{}:
	default:
	}
}

func (s *StandardPriceStream) Dial(url string) (*websocket.Conn, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}

	// use the default ping handler
	conn.SetPingHandler(nil)
	return conn, nil
}
