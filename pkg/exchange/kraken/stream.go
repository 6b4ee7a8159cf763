package kraken

import (
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

const WebSocketURL = "wss://ws.kraken.com/v2"

const readTimeout = 30 * time.Second

// pingInterval paces the client-side keepalive that holds an otherwise idle
// channel open.
const pingInterval = 10 * time.Second

type wsRequest struct {
	Method string    `json:"method"`
	Params *wsParams `json:"params,omitempty"`
}

type wsParams struct {
	Channel string   `json:"channel"`
	Symbol  []string `json:"symbol"`
}

// Stream subscribes to the v2 ticker channel for exactly one pair. The
// per-pair scoping is the trust boundary downstream: one stream, one
// currency.
type Stream struct {
	types.StandardPriceStream

	pair string

	conn       *websocket.Conn
	connLock   sync.Mutex
	connCtx    context.Context
	connCancel context.CancelFunc
}

func NewStream(pair string) *Stream {
	return &Stream{
		StandardPriceStream: types.NewStandardPriceStream(),
		pair:                pair,
	}
}

func (s *Stream) Connect(ctx context.Context) error {
	if err := s.connect(ctx); err != nil {
		return err
	}

	// one re-connector goroutine per stream, bound to the base context
	go s.reconnector(ctx)
	return nil
}

func (s *Stream) reconnector(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case <-s.ReconnectC:
			log.Warnf("received reconnect signal, reconnecting...")

			err := backoff.Retry(func() error {
				return s.connect(ctx)
			}, backoff.WithContext(backoff.NewExponentialBackOff(), ctx))
			if err != nil {
				log.WithError(err).Errorf("kraken reconnect gave up")
				return
			}
		}
	}
}

func (s *Stream) connect(ctx context.Context) error {
	conn, err := s.Dial(WebSocketURL)
	if err != nil {
		return err
	}

	log.Infof("websocket connected: %s", WebSocketURL)

	s.connLock.Lock()

	// tear down the previous connection's goroutines
	if s.connCancel != nil {
		s.connCancel()
	}
	s.connCtx, s.connCancel = context.WithCancel(ctx)

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	s.conn = conn
	connCtx := s.connCtx
	s.connLock.Unlock()

	if err := conn.WriteJSON(wsRequest{
		Method: "subscribe",
		Params: &wsParams{Channel: "ticker", Symbol: []string{s.pair}},
	}); err != nil {
		return err
	}

	s.EmitConnect()

	go s.read(connCtx)
	go s.ping(connCtx)
	return nil
}

func (s *Stream) read(ctx context.Context) {
	defer func() {
		s.connLock.Lock()
		if s.connCancel != nil {
			s.connCancel()
		}
		s.connLock.Unlock()
		s.EmitDisconnect()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		default:
			conn := s.Conn()

			if err := conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
				log.WithError(err).Errorf("set read deadline error")
			}

			mt, message, err := conn.ReadMessage()
			if err != nil {
				switch err := err.(type) {
				case *websocket.CloseError:
					if err.Code == websocket.CloseNormalClosure {
						return
					}
					s.Reconnect()
					return

				case net.Error:
					log.WithError(err).Error("network error")
					s.Reconnect()
					return

				default:
					log.WithError(err).Error("unexpected connection error")
					s.Reconnect()
					return
				}
			}

			if mt != websocket.TextMessage {
				continue
			}

			e, err := ParseMessage(message)
			if err != nil {
				log.WithError(err).Error("message parse error")
				continue
			}

			switch et := e.(type) {
			case *TickerEvent:
				s.EmitPriceUpdate(types.PriceTick{
					Symbol: baseSymbol(et.Symbol),
					Price:  et.Last,
				})

			case *HeartbeatEvent:
				// idle keepalive from the server side, nothing to do

			case *StatusEvent:
				log.Debugf("kraken system status: %s", et.System)

			case *MethodResult:
				if !et.Success && et.Error != "" {
					log.Errorf("kraken %s failed: %s", et.Method, et.Error)
				}
			}
		}
	}
}

func (s *Stream) ping(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			conn := s.Conn()
			if conn == nil {
				continue
			}
			if err := conn.WriteJSON(wsRequest{Method: "ping"}); err != nil {
				log.WithError(err).Error("ping write error")
				s.Reconnect()
				return
			}
		}
	}
}

func (s *Stream) Conn() *websocket.Conn {
	s.connLock.Lock()
	conn := s.conn
	s.connLock.Unlock()
	return conn
}

func (s *Stream) Close() error {
	s.connLock.Lock()
	defer s.connLock.Unlock()

	if s.connCancel != nil {
		s.connCancel()
	}
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// baseSymbol strips the quote currency from a pair like "BTC/USD".
func baseSymbol(pair string) string {
	if i := strings.IndexByte(pair, '/'); i > 0 {
		return pair[:i]
	}
	return pair
}
