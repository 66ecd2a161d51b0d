package config

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Process request
		c.Next()

		latency := time.Since(start)

		Log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": latency.String(),
		}).Debug("Request completed")

		// Alert for slow requests
		if latency > 200*time.Millisecond {
			Log.WithFields(logrus.Fields{
				"method":  c.Request.Method,
				"path":    c.Request.URL.Path,
				"latency": latency.String(),
			}).Warn("Slow request")
		}
	}
}
