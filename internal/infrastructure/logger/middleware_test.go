package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedRouter() (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	r := gin.New()
	r.Use(GinMiddleware(log), Recovery(log))
	r.GET("/ok/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r, logs
}

func TestGinMiddleware(t *testing.T) {
	t.Run("generates a request id", func(t *testing.T) {
		r, logs := newObservedRouter()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok/1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(HeaderRequestID)
		assert.NotEmpty(t, id)

		entries := logs.FilterMessage("[http] request served").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, id, fields["request_id"])
		assert.Equal(t, "/ok/:id", fields["route"])
	})

	t.Run("propagates the caller request id", func(t *testing.T) {
		r, _ := newObservedRouter()
		req := httptest.NewRequest(http.MethodGet, "/ok/1", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	})

	t.Run("client errors are warnings", func(t *testing.T) {
		r, logs := newObservedRouter()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, 1, logs.FilterMessage("[http] request rejected").Len())
	})

	t.Run("panics are recovered", func(t *testing.T) {
		r, logs := newObservedRouter()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, 1, logs.FilterMessage("[http] recovered from panic").Len())
	})
}
