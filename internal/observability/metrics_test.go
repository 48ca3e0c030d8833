package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/receipts"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/observability"
)

func scrape(t *testing.T, m *observability.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_Lotes(t *testing.T) {
	m := observability.NewMetrics()
	m.BatchFinished(receipts.OutcomeOK, 2*time.Second)
	m.BatchFinished(receipts.OutcomeNoEmployees, 0)
	m.ReceiptRendered()
	m.ReceiptRendered()

	body := scrape(t, m)
	assert.Contains(t, body, `recibos_batches_total{outcome="ok"} 1`)
	assert.Contains(t, body, `recibos_batches_total{outcome="sem_funcionarios"} 1`)
	assert.Contains(t, body, `recibos_rendered_total 2`)
	assert.Contains(t, body, `recibos_batch_duration_seconds_count 1`)
}

func TestMetrics_Middleware(t *testing.T) {
	m := observability.NewMetrics()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/funcionarios/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/funcionarios/7", nil))
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)

	body := scrape(t, m)
	assert.Contains(t, body, `recibos_http_requests_total{code="404",route="/api/funcionarios/:id"} 1`)
}

func TestMetrics_ReceptorNil(t *testing.T) {
	var m *observability.Metrics
	assert.NotPanics(t, func() {
		m.BatchFinished(receipts.OutcomeOK, time.Second)
		m.ReceiptRendered()
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
