package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	h := &Handler{health: &MockHealthChecker{}}

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestReady(t *testing.T) {
	t.Run("database available", func(t *testing.T) {
		h := &Handler{health: &MockHealthChecker{}}

		rr := httptest.NewRecorder()
		h.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok", rr.Body.String())
	})

	t.Run("database unavailable", func(t *testing.T) {
		h := &Handler{health: &MockHealthChecker{
			PingFunc: func(ctx context.Context) error { return errors.New("connection refused") },
		}}

		rr := httptest.NewRecorder()
		h.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "database unavailable", rr.Body.String())
	})

	t.Run("ping gets a deadline", func(t *testing.T) {
		var hasDeadline bool
		h := &Handler{health: &MockHealthChecker{
			PingFunc: func(ctx context.Context) error {
				deadline, ok := ctx.Deadline()
				hasDeadline = ok && time.Until(deadline) <= 2*time.Second
				return nil
			},
		}}

		h.Ready(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.True(t, hasDeadline)
	})
}
