package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/api/v1/sales/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Delete("/api/v1/sales/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPreconditionRequired)
	})
	r.Post("/api/v1/categories", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	return r
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	h := newRouter()
	for _, id := range []string{"VD001", "VD002", "VD003"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/sales/"+id, http.NoBody))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/v1/sales/{id}", "200"))
	if got < 3 {
		t.Errorf("expected 3 requests under one route label, got %v", got)
	}
	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected duration observations")
	}
}

func TestMiddleware_StatusCodes(t *testing.T) {
	h := newRouter()
	tests := []struct {
		method string
		path   string
		route  string
		status string
	}{
		{http.MethodDelete, "/api/v1/sales/VD001", "/api/v1/sales/{id}", "428"},
		{http.MethodPost, "/api/v1/categories", "/api/v1/categories", "502"},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tc.method, tc.path, http.NoBody))
			if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(tc.method, tc.route, tc.status)); got < 1 {
				t.Errorf("expected request counted with status %s, got %v", tc.status, got)
			}
		})
	}
}

func TestMiddleware_Unmatched(t *testing.T) {
	h := newRouter()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))
	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unmatched", "404")); got < 1 {
		t.Errorf("expected unmatched 404 counted, got %v", got)
	}
}

func TestNormalizePath(t *testing.T) {
	if normalizePath("") != "unmatched" {
		t.Error("empty pattern should be unmatched")
	}
	if normalizePath("/health") != "/health" {
		t.Error("pattern should pass through")
	}
}
