package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal 라우트/상태별 요청 수
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fridge_http_requests_total",
		Help: "Total number of HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fridge_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// SearchLatency 재료 검색 플래너 지연 (정렬 모드별)
	SearchLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fridge_recipe_search_latency_seconds",
		Help:    "Ingredient match search latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"sort"})

	EnrichmentRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fridge_enrichment_rows_total",
		Help: "Total number of viewer interaction rows merged into result pages",
	})

	ImageCleanupJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fridge_image_cleanup_jobs_total",
		Help: "Image cleanup jobs by result",
	}, []string{"result"})
)

// ObserveSearch defer 로 호출
func ObserveSearch(sort string) func() {
	start := time.Now()
	return func() {
		SearchLatency.WithLabelValues(sort).Observe(time.Since(start).Seconds())
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
