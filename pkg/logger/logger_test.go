package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/abgdnv/productapi/pkg/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestContextHandler_Handle(t *testing.T) {
	testCases := []struct {
		name          string
		ctx           func() context.Context
		expectReqID   string
		expectTraceID bool
	}{
		{
			name:        "No context values",
			ctx:         context.Background,
			expectReqID: "",
		},
		{
			name: "Request ID",
			ctx: func() context.Context {
				return web.WithRequestID(context.Background(), "req-42")
			},
			expectReqID: "req-42",
		},
		{
			name: "Recording span",
			ctx: func() context.Context {
				tp := sdktrace.NewTracerProvider()
				ctx, _ := tp.Tracer("test").Start(context.Background(), "op")
				return ctx
			},
			expectTraceID: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var buf bytes.Buffer
			log := slog.New(NewContextHandler(slog.NewJSONHandler(&buf, nil))).With("component", "test")

			// when
			log.InfoContext(tc.ctx(), "hello")

			// then
			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, "test", record["component"])
			if tc.expectReqID != "" {
				assert.Equal(t, tc.expectReqID, record["request_id"])
			} else {
				assert.NotContains(t, record, "request_id")
			}
			if tc.expectTraceID {
				assert.NotEmpty(t, record["trace_id"])
			} else {
				assert.NotContains(t, record, "trace_id")
			}
		})
	}
}
