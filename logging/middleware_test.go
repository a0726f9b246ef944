package logging

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoggingMiddlewareSkipsOperationalEndpoints(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := LoggingMiddleware(logger)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/health", "/metrics"} {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if buf.Len() != 0 {
			t.Errorf("%s should not be logged, got %q", path, buf.String())
		}
	}
}

func TestLoggingMiddlewareLogsRequests(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := LoggingMiddleware(logger)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v2/medicine/9999?page=2", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	logged := buf.String()
	if !strings.Contains(logged, "HTTP request") {
		t.Errorf("expected a request log line, got %q", logged)
	}
	if !strings.Contains(logged, "path=/api/v2/medicine/9999") {
		t.Errorf("log should carry the path, got %q", logged)
	}
	if !strings.Contains(logged, "query=page=2") {
		t.Errorf("log should carry the query string, got %q", logged)
	}
	if !strings.Contains(logged, "status_code=404") {
		t.Errorf("log should carry the status code, got %q", logged)
	}
	if !strings.Contains(logged, "bytes_written=9") {
		t.Errorf("log should carry bytes written, got %q", logged)
	}
}

func TestResponseWriterWrapperDefaultsTo200(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := LoggingMiddleware(logger)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("implicit ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v2/medicine", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), "status_code=200") {
		t.Errorf("implicit WriteHeader should log as 200, got %q", buf.String())
	}
}
