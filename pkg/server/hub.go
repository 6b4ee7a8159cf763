package server

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/ukimsanov/Crypto-List/pkg/metrics"
	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// Hub fans one upstream price stream per symbol out to any number of chart
// clients. The upstream subscription lives exactly as long as its client
// set is non-empty.
type Hub struct {
	exchange types.Exchange

	// feeds outlive any single subscriber, so their streams run on the
	// hub's own context rather than a request context.
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	feeds map[string]*feed
}

type feed struct {
	symbol string
	stream types.PriceStream
	cancel context.CancelFunc

	clients map[*websocket.Conn]struct{}

	lastPrice float64
	hasPrice  bool
}

func NewHub(exchange types.Exchange) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		exchange: exchange,
		ctx:      ctx,
		cancel:   cancel,
		feeds:    make(map[string]*feed),
	}
}

// Subscribe attaches a client connection to a symbol's feed, pushing the
// last known price right away so the chart has something before the next
// tick. It blocks reading the client until the connection drops; inbound
// frames are keepalives and get discarded.
func (h *Hub) Subscribe(conn *websocket.Conn, symbol string) {
	h.mu.Lock()

	f, ok := h.feeds[symbol]
	if !ok {
		f = &feed{
			symbol:  symbol,
			clients: make(map[*websocket.Conn]struct{}),
		}
		h.feeds[symbol] = f
		h.startFeedLocked(f)
	}

	f.clients[conn] = struct{}{}
	metrics.StreamClientsMetrics.WithLabelValues(symbol).Set(float64(len(f.clients)))
	log.Infof("client connected for %s, %d total", symbol, len(f.clients))

	if f.hasPrice {
		update := types.NewPriceUpdate(symbol, f.lastPrice)
		if err := conn.WriteJSON(update); err != nil {
			log.WithError(err).Warn("initial price write failed")
		}
	}
	h.mu.Unlock()

	// hold the connection; clients only ever send keepalives
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.unsubscribe(conn, symbol)
}

func (h *Hub) startFeedLocked(f *feed) {
	stream := h.exchange.NewStream(f.symbol)
	stream.OnPriceUpdate(func(tick types.PriceTick) {
		h.broadcast(f.symbol, tick.Price)
	})
	stream.OnDisconnect(func() {
		log.Warnf("upstream price stream for %s disconnected", f.symbol)
	})

	feedCtx, cancel := context.WithCancel(h.ctx)
	f.stream = stream
	f.cancel = cancel

	go func() {
		if err := stream.Connect(feedCtx); err != nil {
			log.WithError(err).Errorf("upstream connect failed for %s", f.symbol)
		}
	}()
}

func (h *Hub) broadcast(symbol string, price float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.feeds[symbol]
	if !ok {
		return
	}

	f.lastPrice = price
	f.hasPrice = true

	update := types.NewPriceUpdate(symbol, price)

	var dead []*websocket.Conn
	for conn := range f.clients {
		if err := conn.WriteJSON(update); err != nil {
			dead = append(dead, conn)
		}
	}

	for _, conn := range dead {
		delete(f.clients, conn)
		_ = conn.Close()
	}
	if len(dead) > 0 {
		metrics.StreamClientsMetrics.WithLabelValues(symbol).Set(float64(len(f.clients)))
		h.stopFeedIfIdleLocked(f)
	}
}

func (h *Hub) unsubscribe(conn *websocket.Conn, symbol string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.feeds[symbol]
	if !ok {
		return
	}

	delete(f.clients, conn)
	_ = conn.Close()
	metrics.StreamClientsMetrics.WithLabelValues(symbol).Set(float64(len(f.clients)))
	log.Infof("client disconnected for %s, %d left", symbol, len(f.clients))

	h.stopFeedIfIdleLocked(f)
}

// stopFeedIfIdleLocked closes the upstream subscription once the last
// client leaves. Callers hold h.mu.
func (h *Hub) stopFeedIfIdleLocked(f *feed) {
	if len(f.clients) > 0 {
		return
	}

	log.Infof("no more clients for %s, unsubscribing upstream", f.symbol)

	if f.cancel != nil {
		f.cancel()
	}
	if f.stream != nil {
		if err := f.stream.Close(); err != nil {
			log.WithError(err).Warn("upstream stream close error")
		}
	}
	delete(h.feeds, f.symbol)
}

// Close drops every feed and client, used at server shutdown.
func (h *Hub) Close() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, f := range h.feeds {
		for conn := range f.clients {
			_ = conn.Close()
		}
		f.clients = make(map[*websocket.Conn]struct{})
		h.stopFeedIfIdleLocked(f)
	}
}
