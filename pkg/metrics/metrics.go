package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry guarda os coletores da aplicação
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "install_growth",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requisições HTTP atendidas.",
		},
		[]string{"method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "install_growth",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms a ~5s
		},
		[]string{"method"},
	)

	sourceQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "install_growth",
			Subsystem: "attribution",
			Name:      "source_queries_total",
			Help:      "Consultas de fontes diárias por canal.",
		},
		[]string{"channel", "status"},
	)

	sourceQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "install_growth",
			Subsystem: "attribution",
			Name:      "source_query_duration_seconds",
			Help:      "Duração das consultas de fontes diárias.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms a ~4s
		},
		[]string{"channel"},
	)

	reconciliations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "install_growth",
			Subsystem: "attribution",
			Name:      "reconciliations_total",
			Help:      "Total de reconciliações de instalações.",
		},
	)

	growthComputations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "install_growth",
			Subsystem: "growth",
			Name:      "computations_total",
			Help:      "Cálculos de crescimento por família de métricas.",
		},
		[]string{"family", "status"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		sourceQueries,
		sourceQueryDuration,
		reconciliations,
		growthComputations,
	)
}

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest registra uma requisição HTTP finalizada
func RecordHTTPRequest(method string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordSourceQuery registra uma consulta de fonte de um canal
func RecordSourceQuery(channel string, err error, duration time.Duration) {
	sourceQueries.WithLabelValues(channel, status(err)).Inc()
	sourceQueryDuration.WithLabelValues(channel).Observe(duration.Seconds())
}

// RecordReconciliation registra uma reconciliação concluída
func RecordReconciliation() {
	reconciliations.Inc()
}

// RecordGrowth registra um cálculo de crescimento de uma família
func RecordGrowth(family string, err error) {
	growthComputations.WithLabelValues(family, status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
