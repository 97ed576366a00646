package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveReport(t *testing.T) {
	before := testutil.ToFloat64(ReportErrors.WithLabelValues("comparative"))
	ObserveReport("comparative", "all", time.Now(), errors.New("db down"))
	assert.Equal(t, before+1, testutil.ToFloat64(ReportErrors.WithLabelValues("comparative")))

	ObserveReport("user", "week", time.Now(), nil)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(ReportDuration), 1)
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	before := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/ping", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/ping", "200")))
}

func TestInitIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})
}
