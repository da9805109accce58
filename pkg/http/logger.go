package http

import (
	"time"

	"go.uber.org/zap"
)

// HTTPLogger defines methods for logging outbound HTTP requests and responses.
// Request and response bodies are never handed to the logger, and URLs arrive already masked.
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string)

	// LogResponseSuccess is called after receiving a 2xx response
	LogResponseSuccess(method, url string, httpStatus int, latency time.Duration)

	// LogResponseError is called after a non-2xx response or a transport failure (httpStatus 0)
	LogResponseError(method, url string, httpStatus int, latency time.Duration, err error)
}

// ZapHTTPLogger writes outbound calls to zap.
type ZapHTTPLogger struct {
	logger *zap.Logger
}

func NewZapHTTPLogger(logger *zap.Logger) *ZapHTTPLogger {
	return &ZapHTTPLogger{logger: logger}
}

func (l *ZapHTTPLogger) LogRequest(method, rawURL string) {
	l.logger.Debug("Sending HTTP request",
		zap.String("method", method),
		zap.String("url", rawURL))
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, rawURL string, httpStatus int, latency time.Duration) {
	l.logger.Info("HTTP request succeeded",
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency))
}

func (l *ZapHTTPLogger) LogResponseError(method, rawURL string, httpStatus int, latency time.Duration, err error) {
	l.logger.Warn("HTTP request failed",
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.Error(err))
}
