package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cafeteria/config"
	deliverycontext "cafeteria/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		reuseIn bool
	}{
		{name: "client id reused", header: "order-client-42", reuseIn: true},
		{name: "missing id generated"},
		{name: "id with spaces replaced", header: "bad id"},
		{name: "oversized id replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInContext string
			handler := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process(func(c echo.Context) error {
				seenInContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(echo.HeaderXRequestID)
			assert.Equal(t, got, seenInContext)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			if tt.reuseIn {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func newAccessLogger(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg), &buf
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	t.Run("error status is logged after rendering", func(t *testing.T) {
		m, buf := newAccessLogger(true)
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/orders?page=1", nil), rec)

		err := m.Handle(func(echo.Context) error { return echo.ErrNotFound })(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.EqualValues(t, http.StatusNotFound, entry["status"])
		assert.Equal(t, "page=1", entry["query"])
	})

	t.Run("health is silent", func(t *testing.T) {
		m, buf := newAccessLogger(true)
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, healthPath, nil), httptest.NewRecorder())

		require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
		assert.Zero(t, buf.Len())
	})

	t.Run("without debug only server errors", func(t *testing.T) {
		m, buf := newAccessLogger(false)
		e := echo.New()

		ok := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/products", nil), httptest.NewRecorder())
		require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(ok))
		assert.Zero(t, buf.Len())

		failed := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/products", nil), httptest.NewRecorder())
		require.NoError(t, m.Handle(func(echo.Context) error { return echo.ErrInternalServerError })(failed))
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})
}
