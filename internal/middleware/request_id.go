package middleware

import (
	"skill_assessment_backend/internal/util"
	"skill_assessment_backend/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestID 沿用上游传入的请求 ID，否则生成新的 UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(util.RequestIDKey, rid)
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}

// AccessLog 每个请求一条结构化日志
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(util.RequestIDKey)),
		}
		if claims := util.GetUserFromContext(c); claims != nil {
			fields = append(fields, zap.Uint("user_id", claims.UserID))
		}

		if c.Writer.Status() >= 500 {
			logger.Log.Error("Request failed", fields...)
			return
		}
		logger.Log.Info("Request handled", fields...)
	}
}
