package server

import "github.com/prometheus/client_golang/prometheus"

var (
	relayedRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pulsegate_relayed_requests_total",
		Help: "Requests forwarded to the user service, by method and upstream status.",
	}, []string{"method", "status"})

	upstreamFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pulsegate_upstream_failures_total",
		Help: "Forwarded requests that failed before any upstream response arrived.",
	})

	cacheReadFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pulsegate_cache_read_failures_total",
		Help: "Cache store read errors, by read kind.",
	}, []string{"kind"})

	purgeFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pulsegate_cache_purge_failures_total",
		Help: "Individual cache key purge failures after a successful authoritative delete.",
	})
)

func init() {
	prometheus.MustRegister(relayedRequests, upstreamFailures, cacheReadFailures, purgeFailures)
}
