package metrics

import "github.com/prometheus/client_golang/prometheus"

var TicksAppliedMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "crypto_list_ticks_applied_total",
		Help: "number of streamed price ticks merged into the live candle",
	}, []string{"symbol"})

var HistoryFetchesMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "crypto_list_history_fetches_total",
		Help: "number of OHLC history fetches",
	}, []string{"symbol", "interval", "status"})

var AnnotationsMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "crypto_list_annotations",
		Help: "number of finalized chart annotations",
	}, []string{"symbol"})

var StreamClientsMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "crypto_list_stream_clients",
		Help: "number of connected price stream clients",
	}, []string{"symbol"})

func init() {
	prometheus.MustRegister(
		TicksAppliedMetrics,
		HistoryFetchesMetrics,
		AnnotationsMetrics,
		StreamClientsMetrics,
	)
}
