package server

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/mortgage-calculator-go/internal/chart"
	"github.com/cloud-ru/mortgage-calculator-go/internal/config"
	"github.com/cloud-ru/mortgage-calculator-go/internal/tools"
)

func newTestServer(t *testing.T, capacity int) *Server {
	t.Helper()
	cfg := &config.Config{
		MinPrincipal:      1000,
		MaxPrincipal:      10_000_000,
		MaxRate:           20,
		MaxTermYears:      50,
		RateLimitCapacity: capacity,
		RateLimitWindow:   time.Minute,
	}
	registry := tools.NewRegistry(cfg, noop.NewTracerProvider().Tracer("test"))
	s := New(cfg, registry, chart.NewRenderer(320, 240))
	t.Cleanup(s.Close)
	return s
}

func do(s *Server, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(newTestServer(t, 100), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListTools(t *testing.T) {
	w := do(newTestServer(t, 100), http.MethodGet, "/api/v1/tools", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Tools []string `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Tools, tools.AmortizationScheduleTool)
}

func TestCallTool(t *testing.T) {
	s := newTestServer(t, 100)

	w := do(s, http.MethodPost, "/api/v1/tools/monthly_payment",
		[]byte(`{"principal": 300000, "annual_rate_percent": 6.5, "term_years": 30}`))
	require.Equal(t, http.StatusOK, w.Code)

	var result tools.MonthlyPaymentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.InDelta(t, 1896.20, result.MonthlyPayment, 0.01)
}

func TestCallToolErrors(t *testing.T) {
	s := newTestServer(t, 100)

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{name: "invalid json", target: "/api/v1/tools/monthly_payment", body: `{invalid-json}`, status: http.StatusBadRequest},
		{name: "out of range", target: "/api/v1/tools/monthly_payment", body: `{"principal": 10, "annual_rate_percent": 6.5, "term_years": 30}`, status: http.StatusBadRequest},
		{name: "negative rate", target: "/api/v1/tools/mortgage_summary", body: `{"principal": 300000, "annual_rate_percent": -1, "term_years": 30}`, status: http.StatusBadRequest},
		{name: "unknown tool", target: "/api/v1/tools/deposit_schedule", body: `{"principal": 300000, "annual_rate_percent": 6.5, "term_years": 30}`, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(s, http.MethodPost, tt.target, []byte(tt.body))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestScheduleEndpoint(t *testing.T) {
	w := do(newTestServer(t, 100), http.MethodGet, "/api/v1/schedule?principal=300000&rate=6.5&years=30&view=first12", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Summary struct {
			MonthlyPayment float64 `json:"monthly_payment"`
			Months         int     `json:"months"`
		} `json:"summary"`
		Schedule []struct {
			PaymentNumber   int     `json:"payment_number"`
			InterestPayment float64 `json:"interest_payment"`
		} `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 360, result.Summary.Months)
	require.Len(t, result.Schedule, 12)
	assert.InDelta(t, 1625.00, result.Schedule[0].InterestPayment, 0.01)
}

func TestScheduleEndpointBadQuery(t *testing.T) {
	s := newTestServer(t, 100)

	w := do(s, http.MethodGet, "/api/v1/schedule?principal=abc&rate=6.5&years=30", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(s, http.MethodGet, "/api/v1/schedule?principal=300000&rate=6.5", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleCSVDownload(t *testing.T) {
	w := do(newTestServer(t, 100), http.MethodGet, "/api/v1/schedule.csv?principal=300000&annual_rate_percent=6.5&term_years=30", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="mortgage_schedule_300000_6.5_30y.csv"`, w.Header().Get("Content-Disposition"))

	records, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 361)
}

func TestSummaryCSVDownload(t *testing.T) {
	w := do(newTestServer(t, 100), http.MethodGet, "/api/v1/summary.csv?principal=100000&rate=0&years=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="mortgage_summary_100000_0.0_10y.csv"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "Monthly Payment,$833.33")
}

func TestBinaryDownloads(t *testing.T) {
	s := newTestServer(t, 100)

	w := do(s, http.MethodGet, "/api/v1/schedule.pdf?principal=200000&rate=4&years=15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = do(s, http.MethodGet, "/api/v1/chart.png?principal=200000&rate=4&years=15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, 2)

	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/api/v1/tools", nil).Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/api/v1/tools", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(s, http.MethodGet, "/api/v1/tools", nil).Code)

	// служебные маршруты не ограничиваются
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/healthz", nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, 100)
	do(s, http.MethodGet, "/api/v1/schedule?principal=300000&rate=6.5&years=30", nil)

	w := do(s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mortgage_tool_calls_total")
}
