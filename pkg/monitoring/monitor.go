package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// ReportDuration 各类报告的计算耗时（含数据读取）
	ReportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_generation_duration_seconds",
			Help:    "Duration of report generation by kind",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"kind", "filter"},
	)

	ReportErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_generation_errors_total",
			Help: "Total number of failed report generations by kind",
		},
		[]string{"kind"},
	)

	PopulationCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_population_cache_lookups_total",
			Help: "Population score cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	registerOnce sync.Once
)

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(ReportDuration)
		prometheus.MustRegister(ReportErrors)
		prometheus.MustRegister(PopulationCacheLookups)
	})
}

// ObserveReport 记录一次报告生成，err 非空时计入失败
func ObserveReport(kind, filter string, start time.Time, err error) {
	if err != nil {
		ReportErrors.WithLabelValues(kind).Inc()
		return
	}
	ReportDuration.WithLabelValues(kind, filter).Observe(time.Since(start).Seconds())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
