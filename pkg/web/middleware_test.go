package web

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAPIKeyAuth(t *testing.T) {
	testCases := []struct {
		name           string
		headerValue    string
		expectedStatus int
	}{
		{name: "Valid key", headerValue: "my-secret-key", expectedStatus: http.StatusOK},
		{name: "Missing key", headerValue: "", expectedStatus: http.StatusUnauthorized},
		{name: "Wrong key", headerValue: "nope", expectedStatus: http.StatusUnauthorized},
		{name: "Key with extra suffix", headerValue: "my-secret-key2", expectedStatus: http.StatusUnauthorized},
	}

	handler := APIKeyAuth(XAPIKey, "my-secret-key", discardLogger())(okHandler)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			if tc.headerValue != "" {
				req.Header.Set(XAPIKey, tc.headerValue)
			}
			rr := httptest.NewRecorder()

			// when
			handler.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"message":"Unauthorized: Invalid API Key"}`, rr.Body.String())
			}
		})
	}
}

func TestRecoverer(t *testing.T) {
	// given
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	rr := httptest.NewRecorder()

	// when
	Recoverer(logger)(panicking).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	// then
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rr.Body.String())
	assert.Contains(t, buf.String(), "Panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestRequestIDInjector(t *testing.T) {
	t.Run("Uses chi request id", func(t *testing.T) {
		var got string
		handler := middleware.RequestID(RequestIDInjector(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got, _ = GetRequestID(r.Context())
		})))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")

		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "abc-123", got)
	})

	t.Run("Generates one when missing", func(t *testing.T) {
		var got string
		var ok bool
		handler := RequestIDInjector(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got, ok = GetRequestID(r.Context())
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.True(t, ok)
		assert.Len(t, got, 36)
	})
}

func TestStructuredLogger(t *testing.T) {
	// given
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := StructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	}))

	// when
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/brew", nil))

	// then
	out := buf.String()
	assert.Contains(t, out, `"msg":"Request completed"`)
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"path":"/brew"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"bytes_written":3`)
}

func TestRespondJSON(t *testing.T) {
	t.Run("Encodes payload", func(t *testing.T) {
		rr := httptest.NewRecorder()

		RespondJSON(rr, discardLogger(), http.StatusCreated, map[string]int{"id": 3})

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"id":3}`, rr.Body.String())
	})

	t.Run("Unencodable payload", func(t *testing.T) {
		rr := httptest.NewRecorder()

		RespondJSON(rr, discardLogger(), http.StatusOK, map[string]any{"bad": make(chan int)})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"message":"Internal Server Error"}`, rr.Body.String())
	})

	t.Run("Nil payload", func(t *testing.T) {
		rr := httptest.NewRecorder()

		RespondJSON(rr, discardLogger(), http.StatusNoContent, nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}
