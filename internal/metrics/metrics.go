package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "route"},
	)

	FetchCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_question_fetches_total",
			Help: "Question bank fetches by path (filtered, random) and outcome (success, failure, stale)",
		},
		[]string{"path", "outcome"},
	)

	SessionsFinished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_sessions_finished_total",
			Help: "Quiz sessions that reached the results screen",
		},
	)

	ScoreRatio = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quiz_score_ratio",
			Help:    "Share of correct answers in finished sessions",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)

// Register adds every collector to reg. main registers once against the
// default registry.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(RequestCounter, RequestDuration, FetchCounter, SessionsFinished, ScoreRatio)
}

// ObserveScore records a finished session.
func ObserveScore(score, total int) {
	SessionsFinished.Inc()
	if total > 0 {
		ScoreRatio.Observe(float64(score) / float64(total))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware counts requests by the mux pattern that served them.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}

		RequestCounter.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
