package middlewares

import (
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedMiddlewares() (*Middlewares, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	internalConfig := &config.InternalConfig{
		App: config.App{RequestBodyLimitInMegabyte: 6},
	}
	return NewMiddlewares(zap.New(core), internalConfig), logs
}

func serveWithRequestID(m *Middlewares, request *http.Request) *httptest.ResponseRecorder {
	handler := m.RequestID(m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestLogging_ClientSuppliedRequestID(t *testing.T) {
	m, logs := newObservedMiddlewares()

	request := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	request.Header.Set(constvars.HeaderXRequestID, "req-123")
	recorder := serveWithRequestID(m, request)

	assert.Equal(t, "req-123", recorder.Header().Get(constvars.HeaderXRequestID))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-123", fields[constvars.LoggingRequestIDKey])
	assert.Equal(t, true, fields[constvars.LoggingClientRequestIDKey])
}

func TestLogging_GeneratedRequestID(t *testing.T) {
	m, logs := newObservedMiddlewares()

	recorder := serveWithRequestID(m, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.NotEmpty(t, recorder.Header().Get(constvars.HeaderXRequestID))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotEmpty(t, fields[constvars.LoggingRequestIDKey])
	assert.Equal(t, false, fields[constvars.LoggingClientRequestIDKey])
}
