package middleware

import (
	"fmt"
	"net/http"
	"time"

	"pet-health-log/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger es chimw.RequestLogger con salida por nuestro logger.
// Va después de chimw.RequestID y antes de chimw.Recoverer, que reporta el panic en la misma entrada.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return chimw.RequestLogger(&logFormatter{log: log})
}

type logFormatter struct {
	log logger.Logger
}

func (f *logFormatter) NewLogEntry(r *http.Request) chimw.LogEntry {
	return &logEntry{log: f.log.With(map[string]any{
		"request_id": chimw.GetReqID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
	})}
}

type logEntry struct {
	log logger.Logger
}

func (e *logEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	fields := map[string]any{
		"status":      status,
		"bytes":       bytes,
		"duration_ms": elapsed.Milliseconds(),
	}
	if status >= http.StatusInternalServerError {
		e.log.Warn("http request", fields)
		return
	}
	e.log.Info("http request", fields)
}

func (e *logEntry) Panic(v interface{}, stack []byte) {
	e.log.Error("panic serving request", map[string]any{
		"panic": fmt.Sprint(v),
		"stack": string(stack),
	})
}
