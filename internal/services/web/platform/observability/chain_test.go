package observability

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/options-pricing-and-greeks/dashboard/internal/services/web/platform/httpx"
	"go.opentelemetry.io/otel/codes"
)

func TestChainRecordsPanicsAsServerErrors(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	tp, recorder := newRecordingProvider()
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("render exploded")
	})
	h := httpx.Chain(panicking,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		Tracing(tp),
		RequestLogger(log.New(&buffer, "", 0)),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(httpx.RequestIDHeader, "req-panic")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	logLine := buffer.String()
	for _, marker := range []string{"method=GET", "path=/", "status=500", "request_id=req-panic"} {
		if !strings.Contains(logLine, marker) {
			t.Fatalf("log line %q missing %q", logLine, marker)
		}
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Fatalf("span status = %v, want error", spans[0].Status().Code)
	}
	if got, ok := statusAttribute(spans[0].Attributes()); !ok || got != http.StatusInternalServerError {
		t.Fatalf("status attribute = %d (%t), want %d", got, ok, http.StatusInternalServerError)
	}
}
