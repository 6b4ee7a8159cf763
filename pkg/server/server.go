package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

type Server struct {
	Addr     string
	Exchange types.Exchange

	hub *Hub
	srv *http.Server
}

func New(addr string, exchange types.Exchange) *Server {
	return &Server{
		Addr:     addr,
		Exchange: exchange,
		hub:      NewHub(exchange),
	}
}

func (s *Server) newRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowMethods:     []string{"GET"},
		AllowWebSockets:  true,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/api/cryptocurrencies", s.listCurrencies)
	r.GET("/api/cryptocurrencies/:id", s.getCurrency)
	r.GET("/api/cryptocurrencies/:id/history", s.getHistory)
	r.GET("/ws/prices/:id", s.streamPrices)

	return r
}

func (s *Server) Run(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:    s.Addr,
		Handler: s.newRouter(),
	}

	go func() {
		<-ctx.Done()

		log.Info("shutting down web server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("server forced to shutdown")
		}
		s.hub.Close()
	}()

	log.Infof("serving on %s", s.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": Currencies()})
}

func (s *Server) getCurrency(c *gin.Context) {
	currency, ok := s.lookupParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, currency)
}

// getHistory serves rows of [timestampMillis, open, high, low, close].
// Upstream failures keep the 200 envelope and carry an explicit error
// marker in place of the rows; the chart client checks for it and clears
// the series.
func (s *Server) getHistory(c *gin.Context) {
	currency, ok := s.lookupParam(c)
	if !ok {
		return
	}

	minutes, err := strconv.Atoi(c.DefaultQuery("interval", "60"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interval"})
		return
	}

	interval, err := types.ParseIntervalMinutes(minutes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := s.Exchange.QueryOHLC(c.Request.Context(), currency.Symbol, interval)
	if err != nil {
		log.WithError(err).Errorf("history fetch failed for %s", currency.Symbol)
		c.JSON(http.StatusOK, gin.H{
			"symbol":   currency.Symbol,
			"interval": minutes,
			"data":     gin.H{"error": err.Error()},
		})
		return
	}

	// the upstream pair keeps its original field name on the wire
	c.JSON(http.StatusOK, gin.H{
		"symbol":      currency.Symbol,
		"kraken_pair": s.Exchange.UpstreamPair(currency.Symbol),
		"interval":    minutes,
		"data":        rows,
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamPrices upgrades the connection and parks it on the hub. One
// websocket serves exactly one currency; that scoping is what lets chart
// clients trust ticks without re-checking the symbol.
func (s *Server) streamPrices(c *gin.Context) {
	currency, ok := s.lookupParam(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade failed")
		return
	}

	s.hub.Subscribe(conn, currency.Symbol)
}

func (s *Server) lookupParam(c *gin.Context) (Currency, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid currency id"})
		return Currency{}, false
	}

	currency, ok := LookupCurrency(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "currency not found"})
		return Currency{}, false
	}

	return currency, true
}
