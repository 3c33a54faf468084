package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger logs each request with method, path, status and latency
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if requestID := c.GetString(requestIDKey); requestID != "" {
			entry = entry.WithField("request_id", requestID)
		}
		if tenantID := TenantIDFrom(c); tenantID != nil {
			entry = entry.WithField("tenant_id", tenantID.String())
		}

		if c.Writer.Status() >= 500 {
			entry.Error("request completed")
		} else {
			entry.Info("request completed")
		}
	}
}

const requestIDKey = "request_id"

// RequestID assigns each request a unique id, echoed in the X-Request-Id
// response header
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Next()
	}
}

// Recovery converts panics into 500 responses with a structured log entry
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithFields(logrus.Fields{
			"path":  c.Request.URL.Path,
			"panic": recovered,
		}).Error("panic recovered")
		c.AbortWithStatusJSON(500, gin.H{"error": "Internal server error"})
	})
}
