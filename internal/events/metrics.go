package events

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Number of membership events successfully published.",
	}, []string{"event_type"})

	publishErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "events",
		Name:      "publish_errors_total",
		Help:      "Number of membership events dropped due to encode or broker errors.",
	}, []string{"event_type"})
)

func init() {
	prometheus.MustRegister(publishedCounter, publishErrorCounter)
}

func recordPublished(eventType string) {
	publishedCounter.WithLabelValues(eventType).Inc()
}

func recordPublishError(eventType string) {
	publishErrorCounter.WithLabelValues(eventType).Inc()
}
