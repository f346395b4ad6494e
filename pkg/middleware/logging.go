package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/backbone-api/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra o início e o fim de cada requisição HTTP com o
// ID de correlação propagado pelo contexto
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			logRequestStart(r, correlationID)

			next.ServeHTTP(lrw, r)

			logRequestEnd(r, correlationID, lrw.statusCode, time.Since(startTime))
		})
	}
}

func logRequestStart(r *http.Request, correlationID string) {
	if log.IsDevelopment() {
		log.L.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Info("→ Iniciando requisição")
		return
	}

	log.L.WithFields(log.Fields{
		"correlation_id": correlationID,
		"remote_addr":    r.RemoteAddr,
		"method":         r.Method,
		"path":           r.URL.Path,
		"query":          r.URL.RawQuery,
		"user_agent":     r.UserAgent(),
		"content_type":   r.Header.Get("Content-Type"),
		"content_length": r.ContentLength,
	}).Info("Requisição iniciada")
}

func logRequestEnd(r *http.Request, correlationID string, statusCode int, duration time.Duration) {
	if log.IsDevelopment() {
		statusSymbol := "✓"
		if statusCode >= 400 {
			statusSymbol = "✗"
		}

		logger := log.L.WithFields(log.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status_code": statusCode,
		})

		message := fmt.Sprintf("%s Completada em %s", statusSymbol, formatDuration(duration))
		logByStatus(logger, statusCode, message)

		if duration > slowRequestThreshold {
			log.L.Warnf("⚠ Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, duration.Milliseconds())
		}
		return
	}

	logFields := log.Fields{
		"correlation_id": correlationID,
		"method":         r.Method,
		"path":           r.URL.Path,
		"duration_ms":    duration.Milliseconds(),
		"status_code":    statusCode,
	}

	logByStatus(log.L.WithFields(logFields), statusCode, "Requisição finalizada")

	if duration > slowRequestThreshold {
		log.L.WithFields(logFields).Warnf("Requisição lenta: %s", duration)
	}
}

// logByStatus escolhe o nível do log conforme a classe do status HTTP
func logByStatus(logger log.Logger, statusCode int, message string) {
	switch {
	case statusCode >= 500:
		logger.Error(message)
	case statusCode >= 400:
		logger.Warn(message)
	default:
		logger.Info(message)
	}
}

// formatDuration formata a duração de forma legível
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

// loggingResponseWriter captura o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware captura panics nos handlers, loga o stack trace e
// devolve 500 para o cliente
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					if log.IsDevelopment() {
						log.L.WithFields(log.Fields{
							"error": err,
							"path":  r.URL.Path,
						}).Error("❌ PANIC na aplicação")

						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger := log.L.WithFields(log.Fields{
							"correlation_id": log.GetCorrelationID(r.Context()),
							"panic_error":    err,
							"method":         r.Method,
							"path":           r.URL.Path,
						})

						logger.Error("Erro não tratado na aplicação")
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
