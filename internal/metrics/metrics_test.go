package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/remaimber-it/quiz-backend/internal/metrics"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.Register(reg)

	defer func() {
		if recover() == nil {
			t.Error("expected second registration to panic")
		}
	}()
	metrics.Register(reg)
}

func TestMiddleware_CountsByPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := metrics.Middleware(mux)

	before := testutil.ToFloat64(metrics.RequestCounter.WithLabelValues("GET", "GET /things/{id}", "418"))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/42", nil))
	}

	after := testutil.ToFloat64(metrics.RequestCounter.WithLabelValues("GET", "GET /things/{id}", "418"))
	if after-before != 2 {
		t.Errorf("expected 2 counted requests, got %v", after-before)
	}
}

func TestObserveScore(t *testing.T) {
	before := testutil.ToFloat64(metrics.SessionsFinished)

	metrics.ObserveScore(6, 10)
	metrics.ObserveScore(0, 0)

	if got := testutil.ToFloat64(metrics.SessionsFinished) - before; got != 2 {
		t.Errorf("expected 2 finished sessions, got %v", got)
	}
}
