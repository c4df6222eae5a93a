// Package metrics expõe os coletores Prometheus das execuções de análise.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smartvend"

// Origem da execução
const (
	SourceUpload    = "upload"
	SourceScheduler = "scheduler"
)

// Resultado da execução
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Recorder registra os resultados do pipeline. A implementação padrão usa Prometheus.
type Recorder interface {
	ObserveRun(source, status string, records int, duration time.Duration)
}

type PrometheusRecorder struct {
	runs     *prometheus.CounterVec
	records  prometheus.Histogram
	duration *prometheus.HistogramVec
}

// NewPrometheusRecorder cria e registra os coletores no registerer informado
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_runs_total",
			Help:      "Total de execuções do pipeline de análise por origem e resultado.",
		}, []string{"source", "status"}),
		records: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_records",
			Help:      "Quantidade de registros de venda por execução bem sucedida.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Duração das execuções do pipeline de análise.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
	}

	reg.MustRegister(r.runs, r.records, r.duration)
	return r
}

func (r *PrometheusRecorder) ObserveRun(source, status string, records int, duration time.Duration) {
	r.runs.WithLabelValues(source, status).Inc()
	r.duration.WithLabelValues(source).Observe(duration.Seconds())
	if status == StatusSuccess {
		r.records.Observe(float64(records))
	}
}

// Nop descarta as observações. Útil em testes e quando as métricas estão desabilitadas.
type Nop struct{}

func (Nop) ObserveRun(string, string, int, time.Duration) {}
