package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reporthub",
		Name:      "submissions_created_total",
		Help:      "Report submissions created, by initial status.",
	}, []string{"status"})

	SubmissionTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reporthub",
		Name:      "submission_transitions_total",
		Help:      "Report submission status transitions.",
	}, []string{"from", "to"})

	SubmissionCapRejections = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "reporthub",
		Name:      "submission_cap_rejections_total",
		Help:      "Submission creates refused because the template cap was reached.",
	})

	NotificationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reporthub",
		Name:      "notification_failures_total",
		Help:      "Failed notification deliveries, by sink.",
	}, []string{"sink"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reporthub",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

var registerOnce sync.Once

// Register adds every collector to reg. Later calls are no-ops.
func Register(reg prometheus.Registerer) error {
	var err error
	registerOnce.Do(func() {
		for _, c := range []prometheus.Collector{
			SubmissionsCreated,
			SubmissionTransitions,
			SubmissionCapRejections,
			NotificationFailures,
			HTTPRequestDuration,
		} {
			if err = reg.Register(c); err != nil {
				return
			}
		}
	})
	return err
}

// Middleware observes request latency by route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
