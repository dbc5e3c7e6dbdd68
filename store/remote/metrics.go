package remote

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var callDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "wallet_store_call_duration_seconds",
		Help:    "Duration of calls to the remote data-store service.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"op", "outcome"},
)

func observeCall(op string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	callDuration.WithLabelValues(op, outcome).Observe(elapsed.Seconds())
}
