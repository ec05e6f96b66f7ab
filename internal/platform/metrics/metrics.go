// Package metrics は社員名簿の Prometheus メトリクスを提供します。
package metrics

import (
	"github.com/ogurasousui/codex-employee-directory/internal/core/employee"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "directory"

// Recorder は employee.Recorder の Prometheus 実装です。
type Recorder struct {
	dispatches       *prometheus.CounterVec
	persistFailures  prometheus.Counter
	listenerFailures prometheus.Counter
	employees        prometheus.Gauge
}

var _ employee.Recorder = (*Recorder)(nil)

// NewRecorder はメトリクスを生成し reg に登録します。
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_total",
			Help:      "Number of store dispatches by action kind and result.",
		}, []string{"kind", "result"}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Number of failed writes to durable storage.",
		}),
		listenerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listener_failures_total",
			Help:      "Number of subscriber notifications that failed.",
		}),
		employees: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "employees",
			Help:      "Number of employees currently held by the store.",
		}),
	}

	for _, c := range []prometheus.Collector{r.dispatches, r.persistFailures, r.listenerFailures, r.employees} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ObserveDispatch(kind employee.Kind, ok bool) {
	result := "applied"
	if !ok {
		result = "rejected"
	}
	r.dispatches.WithLabelValues(string(kind), result).Inc()
}

func (r *Recorder) ObservePersistFailure() {
	r.persistFailures.Inc()
}

func (r *Recorder) ObserveListenerFailure() {
	r.listenerFailures.Inc()
}

func (r *Recorder) SetCollectionSize(n int) {
	r.employees.Set(float64(n))
}
