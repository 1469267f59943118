package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	// given
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := chi.NewRouter()
	r.Use(m.Middleware("product", ChiRoutePatternOrPath))
	r.Get("/api/products/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	// when
	for _, target := range []string{"/api/products/1", "/api/products/2", "/ok"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	// then
	assert.InDelta(t, 2, testutil.ToFloat64(m.Requests.WithLabelValues("product", http.MethodGet, "/api/products/{id}", "404")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues("product", http.MethodGet, "/ok", "200")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.Latency))
}

func TestMiddleware_CountsPanickingRequests(t *testing.T) {
	// given
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := chi.NewRouter()
	r.Use(m.Middleware("product", ChiRoutePatternOrPath))
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	// when
	assert.PanicsWithValue(t, "boom", func() {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	})

	// then
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues("product", http.MethodGet, "/boom", "500")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.Latency))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	// given
	reg := NewRegistry()
	m := NewMetrics(reg)
	m.Requests.WithLabelValues("product", http.MethodGet, "/x", "200").Inc()
	rr := httptest.NewRecorder()

	// when
	Handler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// then
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",path="/x",service="product",status="200"} 1`))
	assert.Contains(t, body, "go_goroutines")
}

func TestChiRoutePatternOrPath_OutsideChi(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/plain", nil)

	assert.Equal(t, "/plain", ChiRoutePatternOrPath(req))
}
