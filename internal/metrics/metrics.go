package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geoguess",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "geoguess",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "route"})

	// Game metrics
	GuessScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "geoguess",
		Subsystem: "game",
		Name:      "guess_score",
		Help:      "Scores awarded to guesses",
		Buckets:   prometheus.LinearBuckets(0, 500, 11),
	})

	GuessDistance = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "geoguess",
		Subsystem: "game",
		Name:      "guess_distance_km",
		Help:      "Distance between guess and actual location",
		Buckets:   []float64{1, 10, 100, 500, 1000, 2500, 5000, 10000, 20000},
	})

	SignedURLs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geoguess",
		Subsystem: "streetview",
		Name:      "signed_urls_total",
		Help:      "Street View URL signing attempts by outcome",
	}, []string{"outcome"})
)

// ObserveGuess records one scored guess.
func ObserveGuess(distanceKm float64, score int) {
	GuessDistance.Observe(distanceKm)
	GuessScores.Observe(float64(score))
}

// ObserveSignedURL records one signing attempt; outcome is "ok" or an error kind.
func ObserveSignedURL(outcome string) {
	SignedURLs.WithLabelValues(outcome).Inc()
}

// Middleware records request count and latency labelled by route template,
// so path parameters never blow up label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := routeName(r)
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
