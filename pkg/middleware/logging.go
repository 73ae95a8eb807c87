package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/vfg2006/install-growth-api/pkg/apiErrors"
	"github.com/vfg2006/install-growth-api/pkg/log"
	"github.com/vfg2006/install-growth-api/pkg/metrics"
)

const requestIDHeader = "X-Request-ID"

// statusRecorder guarda o status e o tamanho da resposta escrita pelo handler
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.wroteHeader {
		return
	}
	rec.status = code
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if !rec.wroteHeader {
		rec.WriteHeader(http.StatusOK)
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// RequestLogger atribui o ID de correlação, mede a requisição e registra o resultado.
// Requisições acima de slow também geram um aviso; zero desativa o aviso.
func RequestLogger(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(requestIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(requestIDHeader, correlationID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			startedAt := time.Now()

			next.ServeHTTP(rec, r)

			elapsed := time.Since(startedAt)
			metrics.RecordHTTPRequest(r.Method, rec.status, elapsed)

			logger := log.ForContext(ctx).WithFields(requestFields(r, rec, elapsed))
			msg := fmt.Sprintf("%s %s -> %d em %s", r.Method, r.URL.Path, rec.status, formatDuration(elapsed))

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error(msg)
			case rec.status >= http.StatusBadRequest:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if slow > 0 && elapsed > slow {
				logger.Warnf("Requisição lenta: %s %s (limite %s)", r.Method, r.URL.Path, slow)
			}
		})
	}
}

// requestFields monta os campos do log da requisição; a janela consultada vem da query string
func requestFields(r *http.Request, rec *statusRecorder, elapsed time.Duration) log.Fields {
	fields := log.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"status_code": rec.status,
		"duration_ms": elapsed.Milliseconds(),
		"bytes":       rec.bytes,
	}

	query := r.URL.Query()
	if from, to := query.Get("start_date"), query.Get("end_date"); from != "" || to != "" {
		fields["window"] = from + ".." + to
	}
	if keys := query.Get("metrics"); keys != "" {
		fields["metrics"] = keys
	}

	if !log.IsDevelopment() {
		fields["remote_addr"] = r.RemoteAddr
		fields["user_agent"] = r.UserAgent()
	}

	return fields
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// Recover transforma um pânico no handler em SRV_001 e registra a pilha
func Recover() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startedAt := time.Now()

			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				stack := debug.Stack()
				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  fmt.Sprint(p),
					"method": r.Method,
					"path":   r.URL.Path,
				})
				logger.Error("Pânico ao processar requisição")

				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stack)
				} else {
					logger.WithField("stack_trace", string(stack)).Error("Stack trace do pânico")
				}

				metrics.RecordHTTPRequest(r.Method, http.StatusInternalServerError, time.Since(startedAt))
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
