package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cockroachdb/errors"
	"github.com/overlaynet/overlayd/pkg/utils"
)

var (
	// DefaultLabels .
	DefaultLabels = []string{"host"}

	// MetricErrorCount .
	MetricErrorCount = "overlayd_error_total"
	// MetricTranslationCount counts finished translations by kind and op.
	MetricTranslationCount = "overlayd_translation_total"
	// MetricOperationCount counts emitted topology operations.
	MetricOperationCount = "overlayd_operation_total"
	// MetricApplyConflictCount counts version-guard conflicts at apply.
	MetricApplyConflictCount = "overlayd_apply_conflict_total"

	metr *Metrics
)

// Setup registers the daemon's collectors under the given host label.
func Setup(hn string, cols ...prometheus.Collector) {
	metr = New(hn)
	metr.RegisterCounter(MetricErrorCount, "overlayd errors", nil)                                       //nolint
	metr.RegisterCounter(MetricTranslationCount, "finished translations", []string{"kind", "op"})        //nolint
	metr.RegisterCounter(MetricOperationCount, "emitted topology operations", []string{"op"})            //nolint
	metr.RegisterCounter(MetricApplyConflictCount, "optimistic-concurrency conflicts during apply", nil) //nolint
	if len(cols) > 0 {
		prometheus.MustRegister(cols...)
	}
}

// Metrics .
type Metrics struct {
	host       string
	collectors map[string]prometheus.Collector
}

// New .
func New(host string) *Metrics {
	return &Metrics{
		host:       host,
		collectors: map[string]prometheus.Collector{},
	}
}

// RegisterCounter .
func (m *Metrics) RegisterCounter(name, desc string, labels []string) error {
	var col = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: desc,
		},
		utils.MergeStrings(labels, DefaultLabels),
	)

	if err := prometheus.Register(col); err != nil {
		return errors.Wrap(err, "")
	}
	m.collectors[name] = col

	return nil
}

// RegisterGauge .
func (m *Metrics) RegisterGauge(name, desc string, labels []string) error {
	var col = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: desc,
		},
		utils.MergeStrings(labels, DefaultLabels),
	)

	if err := prometheus.Register(col); err != nil {
		return errors.Wrap(err, "")
	}

	m.collectors[name] = col

	return nil
}

// Incr .
func (m *Metrics) Incr(name string, labels map[string]string) error {
	return m.Add(name, 1, labels)
}

// Add .
func (m *Metrics) Add(name string, delta float64, labels map[string]string) error {
	var collector, exists = m.collectors[name]
	if !exists {
		return errors.Errorf("collector %s not found", name)
	}

	labels = m.appendLabel(labels, "host", m.host)
	switch col := collector.(type) {
	case *prometheus.GaugeVec:
		col.With(labels).Add(delta)
	case *prometheus.CounterVec:
		col.With(labels).Add(delta)
	default:
		return errors.Errorf("collector %s is not counter or gauge", name)
	}

	return nil
}

// Store .
func (m *Metrics) Store(name string, value float64, labels map[string]string) error {
	var collector, exists = m.collectors[name]
	if !exists {
		return errors.Errorf("collector %s not found", name)
	}

	labels = m.appendLabel(labels, "host", m.host)
	switch col := collector.(type) {
	case *prometheus.GaugeVec:
		col.With(labels).Set(value)
	default:
		return errors.Errorf("collector %s is not gauge", name)
	}

	return nil
}

func (m *Metrics) appendLabel(labels map[string]string, key, value string) map[string]string {
	if labels != nil {
		labels[key] = value
	} else {
		labels = map[string]string{key: value}
	}
	return labels
}

// Handler .
func Handler() http.Handler {
	return promhttp.Handler()
}

// IncrError .
func IncrError() {
	Incr(MetricErrorCount, nil) //nolint
}

// IncrTranslation .
func IncrTranslation(kind, op string, opCount int) {
	Incr(MetricTranslationCount, map[string]string{"kind": kind, "op": op}) //nolint
	Add(MetricOperationCount, float64(opCount), map[string]string{"op": op}) //nolint
}

// IncrApplyConflict .
func IncrApplyConflict() {
	Incr(MetricApplyConflictCount, nil) //nolint
}

// Incr .
func Incr(name string, labels map[string]string) error {
	if metr == nil {
		return nil
	}
	return metr.Incr(name, labels)
}

// Add .
func Add(name string, delta float64, labels map[string]string) error {
	if metr == nil {
		return nil
	}
	return metr.Add(name, delta, labels)
}

// Store .
func Store(name string, value float64, labels map[string]string) error {
	if metr == nil {
		return nil
	}
	return metr.Store(name, value, labels)
}

// RegisterGauge .
func RegisterGauge(name, desc string, labels []string) error {
	return metr.RegisterGauge(name, desc, labels)
}

// RegisterCounter .
func RegisterCounter(name, desc string, labels []string) error {
	return metr.RegisterCounter(name, desc, labels)
}
