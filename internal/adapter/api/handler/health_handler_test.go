package handler

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, NewHealthHandler(nil).CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Server is running")
	}
}

func TestDatabaseHealth(t *testing.T) {
	tests := []struct {
		name   string
		ping   Pinger
		status int
	}{
		{"reachable", func() error { return nil }, http.StatusOK},
		{"unreachable", func() error { return stderrors.New("dial tcp: refused") }, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho()
			req := httptest.NewRequest(http.MethodGet, "/health/database", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.NoError(t, NewHealthHandler(tt.ping).CheckDatabaseHealth(c))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
