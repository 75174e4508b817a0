package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Collection store, remote backend and key-value store Prometheus metrics.
var (
	StoreEntities = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "backoffice",
			Name:      "store_entities",
			Help:      "Number of entities held by each collection store",
		},
		[]string{"store"},
	)

	StoreMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "store_mutations_total",
			Help:      "Total collection store mutations",
		},
		[]string{"store", "op", "result"},
	)

	RemoteRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "remote_requests_total",
			Help:      "Total requests to remote collaborators",
		},
		[]string{"backend", "op", "result"},
	)

	RemoteRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "backoffice",
			Name:      "remote_request_duration_seconds",
			Help:      "Remote collaborator request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"backend", "op"},
	)

	DBCommandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "backoffice",
			Name:      "db_command_duration_seconds",
			Help:      "Key-value store command duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
		[]string{"op", "result"},
	)
)

var registerOnce sync.Once

// RegisterStoreMetrics registers store and remote metrics. Safe to call more than once.
func RegisterStoreMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(StoreEntities)
		prometheus.MustRegister(StoreMutationsTotal)
		prometheus.MustRegister(RemoteRequestsTotal)
		prometheus.MustRegister(RemoteRequestDuration)
		prometheus.MustRegister(DBCommandDuration)
	})
}

// Result maps an error to a metric result label.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// StoreObserver feeds collection store events into Prometheus.
type StoreObserver struct{}

// ObserveSize records the current entity count of a store.
func (StoreObserver) ObserveSize(store string, size int) {
	StoreEntities.WithLabelValues(store).Set(float64(size))
}

// ObserveMutation counts a store mutation by outcome.
func (StoreObserver) ObserveMutation(store, op string, err error) {
	StoreMutationsTotal.WithLabelValues(store, op, Result(err)).Inc()
}
