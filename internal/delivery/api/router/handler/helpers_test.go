package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"cafeteria/internal/delivery/api/middleware"
	"cafeteria/internal/delivery/api/response"
	"cafeteria/internal/delivery/api/validator"
	"cafeteria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testRequest describes one call against a single registered route.
type testRequest struct {
	method  string
	route   string
	target  string
	body    string
	headers map[string]string
	userID  uuid.UUID
	roles   entity.Roles
}

// serve registers h on a fresh echo instance wired like the API server and runs req through it.
func serve(h echo.HandlerFunc, req testRequest) *httptest.ResponseRecorder {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	var mws []echo.MiddlewareFunc
	if req.userID != uuid.Nil {
		mws = append(mws, func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				middleware.SetIdentity(c, req.userID, req.roles)

				return next(c)
			}
		})
	}
	e.Add(req.method, req.route, h, mws...)

	httpReq := httptest.NewRequest(req.method, req.target, strings.NewReader(req.body))
	if req.body != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httpReq)

	return rec
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))

	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)

	return env.Error.Code
}
