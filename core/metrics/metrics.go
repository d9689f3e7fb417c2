package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pss_assistant"

var (
	// RetrieverFetches counts design fetches per retriever and result.
	RetrieverFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "retriever_fetches_total",
		Help:      "Design payload fetches by retriever and result.",
	}, []string{"retriever", "result"})

	// RetrieverCacheHits counts reads served from a fresh snapshot.
	RetrieverCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "retriever_cache_hits_total",
		Help:      "Design reads served from the cached snapshot.",
	}, []string{"retriever"})

	// RetrieverRecords tracks the size of the latest snapshot.
	RetrieverRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "retriever_records",
		Help:      "Number of records in the latest snapshot.",
	}, []string{"retriever"})

	// WikiExports counts wiki data exports by entity and result.
	WikiExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wiki_exports_total",
		Help:      "Wiki Lua exports by entity and result.",
	}, []string{"entity", "result"})
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ResultLabel maps an error to a result label value.
func ResultLabel(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
