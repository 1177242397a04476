package observability

import (
	"fmt"
	"net/http"

	"github.com/options-pricing-and-greeks/dashboard/internal/services/web/platform/httpx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/options-pricing-and-greeks/dashboard/internal/services/web"

// Tracing starts a server span per request. A nil provider resolves to the
// global provider at request time, so Setup may run after the handler is built.
func Tracing(provider trace.TracerProvider) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tp := provider
			if tp == nil {
				tp = otel.GetTracerProvider()
			}
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tp.Tracer(tracerName).Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
					attribute.String("http.request.id", r.Header.Get(httpx.RequestIDHeader)),
				),
			)
			defer span.End()

			rec := newStatusRecorder(w)
			defer func() {
				recovered := recover()
				status := rec.statusCode()
				if recovered != nil {
					status = http.StatusInternalServerError
					span.SetAttributes(attribute.String("http.panic", fmt.Sprint(recovered)))
				}
				span.SetAttributes(attribute.Int("http.response.status_code", status))
				if status >= http.StatusInternalServerError {
					span.SetStatus(codes.Error, http.StatusText(status))
				}
				if recovered != nil {
					panic(recovered)
				}
			}()
			next.ServeHTTP(rec, r.WithContext(ctx))
		})
	}
}
