// internal/interfaces/http/middleware/logger_test.go
package middleware

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-engine/internal/config"
)

func TestNewAccessLogger(t *testing.T) {
	t.Run("json format selects the JSON formatter", func(t *testing.T) {
		logger := newAccessLogger(&config.Config{
			Logging: config.LoggingConfig{Format: "json", Level: "debug"},
		})

		assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
		assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	})

	t.Run("text format with full timestamps otherwise", func(t *testing.T) {
		logger := newAccessLogger(&config.Config{
			Logging: config.LoggingConfig{Format: "text", Level: "warn"},
		})

		formatter, ok := logger.Formatter.(*logrus.TextFormatter)
		assert.True(t, ok)
		assert.True(t, formatter.FullTimestamp)
		assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	})

	t.Run("unparseable level falls back to info", func(t *testing.T) {
		logger := newAccessLogger(&config.Config{
			Logging: config.LoggingConfig{Level: "chatty"},
		})

		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	})
}
