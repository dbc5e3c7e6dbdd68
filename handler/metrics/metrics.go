// Package metrics exposes prometheus instrumentation for the API surface.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "wallet_api_requests_total",
		Help: "API requests by method, path and status.",
	},
	[]string{"method", "path", "status"},
)

// Instrument counts every request once the response status is known.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		requestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(ww.Status())).Inc()
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
