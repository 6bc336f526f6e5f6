package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(buf *bytes.Buffer) *chi.Mux {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(NewStructuredLogger(logger))
	r.Get("/api/debts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"items":[]}`))
	})
	r.Post("/api/debts/pay", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})
	r.Get("/api/audit", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg"))
	})
	return r
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestNewStructuredLogger(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var buf bytes.Buffer
		rr := httptest.NewRecorder()
		newRouter(&buf).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/debts", nil))

		line := decodeLine(t, &buf)
		assert.Equal(t, "INFO", line["level"])
		assert.Equal(t, "request completed", line["msg"])

		request := line["request"].(map[string]any)
		assert.Equal(t, "GET", request["method"])
		assert.Equal(t, "/api/debts", request["route"])
		assert.NotEmpty(t, request["id"])

		response := line["response"].(map[string]any)
		assert.Equal(t, float64(http.StatusOK), response["status"])
		assert.Equal(t, float64(len(`{"items":[]}`)), response["bytes"])
	})

	t.Run("Client Error", func(t *testing.T) {
		var buf bytes.Buffer
		rr := httptest.NewRecorder()
		newRouter(&buf).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/debts/pay", nil))

		line := decodeLine(t, &buf)
		assert.Equal(t, "WARN", line["level"])
		assert.Equal(t, "request rejected", line["msg"])
	})

	t.Run("Server Error", func(t *testing.T) {
		var buf bytes.Buffer
		rr := httptest.NewRecorder()
		newRouter(&buf).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/audit", nil))

		line := decodeLine(t, &buf)
		assert.Equal(t, "ERROR", line["level"])
		assert.Equal(t, "server error", line["msg"])
	})

	t.Run("Uploads Are Not Logged", func(t *testing.T) {
		var buf bytes.Buffer
		rr := httptest.NewRecorder()
		newRouter(&buf).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/2024-05/a.jpg", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, buf.String())
	})
}
