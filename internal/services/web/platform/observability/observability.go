// Package observability provides request logging and tracing middleware.
package observability

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/options-pricing-and-greeks/dashboard/internal/services/web/platform/httpx"
)

// statusRecorder captures the status code and body size written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(body []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(body)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) statusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w}
}

// RequestLogger logs one line per request with method, path, status, bytes,
// latency and request id.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := newStatusRecorder(w)
			defer func() {
				// A panic is logged as the 500 the recovery middleware will write,
				// then handed on to it.
				recovered := recover()
				status := rec.statusCode()
				if recovered != nil {
					status = http.StatusInternalServerError
				}
				requestID := strings.TrimSpace(r.Header.Get(httpx.RequestIDHeader))
				if requestID == "" {
					requestID = "-"
				}
				logger.Printf(
					"http request method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
					r.Method,
					r.URL.Path,
					status,
					rec.bytes,
					time.Since(started).Round(time.Microsecond),
					requestID,
				)
				if recovered != nil {
					panic(recovered)
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
