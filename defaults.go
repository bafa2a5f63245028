// ABOUTME: Default dependency implementations for the greader client
// ABOUTME: Supplies the HTTP client and loggers used when no override is given

package greader

import (
	"time"

	"greader-client/core/interfaces"
	"greader-client/infrastructure/http/standard"
	logruslogger "greader-client/infrastructure/logger/logrus"
)

// DefaultTimeout is the per-request timeout used when none is configured.
const DefaultTimeout = 30 * time.Second

func defaultConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
	}
}

// DefaultHTTPClient returns the stock HTTP client with the given timeout.
func DefaultHTTPClient(timeout time.Duration) interfaces.HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return standard.NewStandardHTTPClient(timeout)
}

// DefaultLogger returns a logrus-backed logger at info level.
func DefaultLogger() interfaces.Logger {
	return logruslogger.NewLogger()
}

// QuietLogger returns a logger that discards everything.
func QuietLogger() interfaces.Logger {
	return quietLogger{}
}

type quietLogger struct{}

func (quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (quietLogger) Info(msg string, fields map[string]interface{})  {}
func (quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (quietLogger) Error(msg string, fields map[string]interface{}) {}
