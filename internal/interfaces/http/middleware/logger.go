// internal/interfaces/http/middleware/logger.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/config"
)

// Logger returns a middleware writing one structured logrus line per
// request, correlated with the request id set by RequestID. The severity
// follows the response class: 5xx errors, 4xx warnings, everything else
// info.
func Logger(cfg *config.Config) gin.HandlerFunc {
	logger := newAccessLogger(cfg)

	return gin.LoggerWithFormatter(func(p gin.LogFormatterParams) string {
		entry := logger.WithFields(logrus.Fields{
			"request_id": p.Keys["request_id"],
			"method":     p.Method,
			"path":       p.Path,
			"status":     p.StatusCode,
			"latency_ms": p.Latency.Milliseconds(),
			"client_ip":  p.ClientIP,
			"size":       p.BodySize,
		})
		if p.ErrorMessage != "" {
			entry = entry.WithField("error", p.ErrorMessage)
		}

		switch {
		case p.StatusCode >= 500:
			entry.Error("request failed")
		case p.StatusCode >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}

		// gin's own access line is suppressed
		return ""
	})
}

func newAccessLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
