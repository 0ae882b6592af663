package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchTotal 按难度统计选步次数
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tictactoe_engine_searches_total",
		Help: "Total move selections by difficulty level and result",
	}, []string{"level", "result"}) // result: "move" / "terminal" / "invalid"

	searchNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tictactoe_engine_search_nodes",
		Help:    "Nodes visited per move selection",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 .. ~262k
	})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tictactoe_engine_cache_lookups_total",
		Help: "Transposition table lookups by result",
	}, []string{"result"}) // "hit" / "miss"

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tictactoe_engine_search_duration_seconds",
		Help:    "Move selection duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us .. ~2.6s
	})
)

func recordAnalysis(a Analysis) {
	searchNodes.Observe(float64(a.Nodes))
	cacheLookups.WithLabelValues("hit").Add(float64(a.CacheHits))
	cacheLookups.WithLabelValues("miss").Add(float64(a.CacheMisses))
	searchDuration.Observe(a.Elapsed.Seconds())
}
