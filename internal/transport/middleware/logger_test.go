package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openanonymiser/openanonymiser-backend/pkg/ctxutil"
)

func serveLogged(t *testing.T, status int, body string, req *http.Request) string {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})

	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)
	return buf.String()
}

func TestLogger_Success(t *testing.T) {
	out := serveLogged(t, http.StatusOK, `{"lix":4}`, httptest.NewRequest(http.MethodPost, "/api/v1/analyze/readability", nil))

	for _, want := range []string{"http.request", `"method":"POST"`, "/api/v1/analyze/readability", `"status":200`, `"bytes":9`, "duration", `"level":"INFO"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %q, got %q", want, out)
		}
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusBadRequest, "WARN"},
		{http.StatusTooManyRequests, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
		{http.StatusServiceUnavailable, "ERROR"},
	}

	for _, tt := range tests {
		out := serveLogged(t, tt.status, "", httptest.NewRequest(http.MethodGet, "/", nil))
		if !strings.Contains(out, `"level":"`+tt.level+`"`) {
			t.Errorf("status %d: expected level %s, got %q", tt.status, tt.level, out)
		}
	}
}

func TestLogger_IncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "test-request-id-123"))

	out := serveLogged(t, http.StatusOK, "", req)
	if !strings.Contains(out, "test-request-id-123") {
		t.Errorf("expected log to contain request_id, got %q", out)
	}
}

func TestLogger_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
		w.WriteHeader(http.StatusTeapot) // ignored after the body started
	})

	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.Contains(buf.String(), `"status":200`) {
		t.Errorf("expected status 200, got %q", buf.String())
	}
}
