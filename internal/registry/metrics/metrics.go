package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics tracks registry operations and the chain height.
type Metrics struct {
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	BlockHeight       prometheus.Gauge
	RegistriesTotal   prometheus.Counter
}

// New registers the registry metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tokenregistry_operations_total",
			Help: "Registry operations by name and result (ok, rejected, error)",
		}, []string{"op", "result"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tokenregistry_operation_duration_seconds",
			Help:    "Duration of registry operations including ledger lock wait",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"op"}),
		BlockHeight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tokenregistry_block_height",
			Help: "Current logical block height",
		}),
		RegistriesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "tokenregistry_registries_deployed_total",
			Help: "Registries deployed since start",
		}),
	}
}

// ObserveOperation records one finished operation started at start.
func (m *Metrics) ObserveOperation(op, result string, start time.Time) {
	m.Operations.WithLabelValues(op, result).Inc()
	m.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) SetBlockHeight(h uint64) {
	m.BlockHeight.Set(float64(h))
}

func (m *Metrics) IncrementRegistriesDeployed() {
	m.RegistriesTotal.Inc()
}
