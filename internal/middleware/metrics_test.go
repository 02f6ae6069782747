package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	}

	// оба запроса к /items/{id} попали в одну серию
	got := testutil.ToFloat64(m.requests.WithLabelValues("/items/{id}", http.MethodGet, "404"))
	if got != 2 {
		t.Fatalf("expected 2 requests for /items/{id}, got %v", got)
	}
	if n := testutil.CollectAndCount(m.duration); n != 2 {
		t.Fatalf("expected 2 duration series (matched + unmatched), got %d", n)
	}
}
