package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestDomainCounters(t *testing.T) {
	m := New()

	m.OrderCreated("checkout")
	m.OrderCreated("checkout")
	m.OrderCreated("")
	m.StoreRequestResolved("Approved")

	require.Equal(t, 2.0, testutil.ToFloat64(m.ordersCreated.WithLabelValues("checkout")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ordersCreated.WithLabelValues("unknown")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requestsResolved.WithLabelValues("Approved")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	require.NotPanics(t, func() {
		m.OrderCreated("direct")
		m.StoreRequestResolved("Rejected")
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	require.NotNil(t, m.Middleware(next))

	empty := NewWithRegistry(nil, nil)
	require.NotPanics(t, func() { empty.OrderCreated("direct") })
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New()

	router := chi.NewRouter()
	router.Use(m.Middleware)
	router.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"1", "2"} {
		req := httptest.NewRequest(http.MethodGet, "/products/"+id, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/products/{id}", "404")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, reg)
	m.OrderCreated("direct")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `orders_created_total{source="direct"} 1`))
}
