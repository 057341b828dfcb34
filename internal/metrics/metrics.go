package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal   *prometheus.CounterVec
	registryEventsTotal *prometheus.CounterVec
	droppedEventsTotal  prometheus.Counter
	registerOnce        sync.Once
)

// Register initializes Prometheus metrics on the default registry.
func Register() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "votingpoll",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by the voting poll API.",
		}, []string{"method", "path", "status"})

		registryEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "votingpoll",
			Name:      "registry_events_total",
			Help:      "Registry mutations processed by the event worker, by kind.",
		}, []string{"kind"})

		droppedEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "votingpoll",
			Name:      "registry_events_dropped_total",
			Help:      "Registry events dropped because the worker queue was full.",
		})
	})
}

// IncRequest increments the http_requests_total counter with the given labels.
func IncRequest(method, path string, status int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

func IncEvent(kind string) {
	if registryEventsTotal == nil {
		return
	}
	registryEventsTotal.WithLabelValues(kind).Inc()
}

func IncDroppedEvent() {
	if droppedEventsTotal == nil {
		return
	}
	droppedEventsTotal.Inc()
}
