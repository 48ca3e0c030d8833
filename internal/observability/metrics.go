// Package observability métricas Prometheus do serviço.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/receipts"
)

var _ receipts.BatchMetrics = (*Metrics)(nil)

// Metrics registry próprio com as métricas HTTP e de lotes de recibos.
// Todos os métodos aceitam receptor nil.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	batchesTotal    *prometheus.CounterVec
	batchDuration   prometheus.Histogram
	renderedTotal   prometheus.Counter
}

// NewMetrics inicializa o registry e as métricas.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recibos_http_requests_total",
		Help: "Requisições HTTP por rota e status.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recibos_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP por rota.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	batches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recibos_batches_total",
		Help: "Lotes de recibos por resultado.",
	}, []string{"outcome"})
	batchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recibos_batch_duration_seconds",
		Help:    "Duração da geração de um lote.",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	})
	rendered := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recibos_rendered_total",
		Help: "Recibos renderizados com sucesso.",
	})
	registry.MustRegister(requests, duration, batches, batchDuration, rendered)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		batchesTotal:    batches,
		batchDuration:   batchDuration,
		renderedTotal:   rendered,
	}
}

// Handler http.Handler do endpoint /metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware registra contagem e duração de cada requisição pela rota casada.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		if route == "" || route == "/" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}

// BatchFinished contabiliza um lote encerrado.
func (m *Metrics) BatchFinished(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.batchesTotal.WithLabelValues(outcome).Inc()
	if outcome == receipts.OutcomeOK {
		m.batchDuration.Observe(elapsed.Seconds())
	}
}

// ReceiptRendered contabiliza um recibo gerado.
func (m *Metrics) ReceiptRendered() {
	if m == nil {
		return
	}
	m.renderedTotal.Inc()
}
