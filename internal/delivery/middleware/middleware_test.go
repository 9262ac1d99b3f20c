package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"zakaz/config"
	deliverycontext "zakaz/internal/delivery/context"
	domainerrors "zakaz/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeCounter struct {
	mu   sync.Mutex
	hits map[string]int64
	err  error
}

func (f *fakeCounter) Hit(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return 0, f.err
	}
	f.hits[key]++

	return f.hits[key], nil
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(newDiscardLogger())

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id kept", header: "req-from-client", wantSame: true},
		{name: "missing id generated"},
		{name: "overlong id replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			respID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, respID, ctxID)
			assert.Equal(t, respID, deliverycontext.GetRequestID(c))
			if tt.wantSame {
				assert.Equal(t, tt.header, respID)
			} else {
				assert.NotEqual(t, tt.header, respID)
				assert.NotEmpty(t, respID)
			}
		})
	}
}

func TestRateLimitMiddleware_RejectsOverLimit(t *testing.T) {
	e := echo.New()
	counter := &fakeCounter{hits: map[string]int64{}}
	mw := newRateLimitMiddleware(counter, 2, time.Minute, newDiscardLogger())

	serve := func() (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shops", nil)
		req.RemoteAddr = "10.0.0.7:51000"
		rec := httptest.NewRecorder()

		return rec, mw.Handle(okHandler)(e.NewContext(req, rec))
	}

	for _, wantRemaining := range []string{"1", "0"} {
		rec, err := serve()
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, wantRemaining, rec.Header().Get("X-RateLimit-Remaining"))
	}

	rec, err := serve()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.EqualValues(t, 3, counter.hits[rateLimitKeyPrefix+"10.0.0.7"])
}

func TestRateLimitMiddleware_CounterFailureLetsRequestThrough(t *testing.T) {
	e := echo.New()
	mw := newRateLimitMiddleware(&fakeCounter{err: errors.New("connection refused")}, 1, time.Minute, newDiscardLogger())

	rec := httptest.NewRecorder()
	err := mw.Handle(okHandler)(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRateLimitMiddleware_DisabledWithoutRedis(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Limit: 10, Window: time.Minute}}
	assert.Nil(t, NewRateLimitMiddleware(nil, cfg, newDiscardLogger()))
}

func TestLoggerMiddleware_LogsStatusOfUnrenderedError(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil), httptest.NewRecorder())

	err := mw.Handle(func(echo.Context) error {
		return errors.Wrap(domainerrors.ErrInsufficientStock, "failed to create order")
	})(c)
	require.Error(t, err)

	assert.Contains(t, buf.String(), `"status":409`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(okHandler)(c))
	assert.Empty(t, buf.String())
}
