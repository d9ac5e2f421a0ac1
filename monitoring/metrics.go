package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DBDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "db_call_duration_seconds",
		Help: "Duration of MongoDB calls.",
	}, []string{"operation"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "http_request_duration_seconds",
		Help: "Duration of HTTP requests.",
	}, []string{"path"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"path", "method", "code"})

	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "survey_submissions_total",
		Help: "Submission gate outcomes.",
	}, []string{"outcome"})
)

// RecordDBTime measures a single store call under the given operation label.
func RecordDBTime(operation string, f func() error) error {
	start := time.Now()
	err := f()
	DBDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	return err
}
