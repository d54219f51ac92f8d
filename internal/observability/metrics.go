package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful signups per activity.",
	}, []string{"activity"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Number of successful unregistrations per activity.",
	}, []string{"activity"})

	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "rejections_total",
		Help:      "Number of rejected membership changes grouped by operation and reason.",
	}, []string{"operation", "reason"})

	lastSignupGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "last_signup_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful signup.",
	})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter, lastSignupGauge)
}

// RecordSignUp updates the signup counter and watermark gauge.
func RecordSignUp(activity string, ts time.Time) {
	signupCounter.WithLabelValues(activity).Inc()
	if !ts.IsZero() {
		lastSignupGauge.Set(float64(ts.Unix()))
	}
}

// RecordUnregister updates the unregistration counter.
func RecordUnregister(activity string) {
	unregisterCounter.WithLabelValues(activity).Inc()
}

// RecordRejection counts a rejected signup or unregistration.
func RecordRejection(operation, reason string) {
	rejectionCounter.WithLabelValues(operation, reason).Inc()
}
