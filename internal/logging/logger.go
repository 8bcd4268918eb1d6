package logging

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pzshine/membit-prediction-market-insight/internal/config"
)

// Logger represents a logger instance
type Logger = *logrus.Logger

// Fields represents structured logging fields
type Fields = logrus.Fields

// NewLogger creates a new configured logger instance. Diagnostics go to
// stderr; stdout is reserved for query results.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{})
	logger.SetLevel(config.GetLogLevel())
	return logger
}
