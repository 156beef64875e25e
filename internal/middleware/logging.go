package middleware

import (
	"strconv"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/metrics"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(elapsed.Seconds())

		level := logger.InfoLevel
		switch {
		case status >= 500:
			level = logger.ErrorLevel
		case status >= 400:
			level = logger.WarnLevel
		}

		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("request_id", GetRequestID(c)),
			logger.String("method", c.Request.Method),
			logger.String("route", route),
			logger.Int("status", status),
			logger.Duration("latency", elapsed),
			logger.String("actor", ActorID(c)),
			logger.String("error", c.GetString("error")),
		)
	}
}
