package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func serve(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := serve(r, http.MethodGet, "/", nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	w = serve(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "upstream-1"})
	assert.Equal(t, "upstream-1", w.Header().Get(RequestIDHeader))
}

func TestActor(t *testing.T) {
	r := ginext.New("test")
	r.Use(Actor())
	r.GET("/open", func(c *ginext.Context) {
		c.String(http.StatusOK, ActorID(c))
	})
	r.GET("/closed", RequireActor(), func(c *ginext.Context) {
		c.Status(http.StatusNoContent)
	})

	w := serve(r, http.MethodGet, "/open", map[string]string{ActorHeader: "u1"})
	assert.Equal(t, "u1", w.Body.String())

	w = serve(r, http.MethodGet, "/closed", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, http.MethodGet, "/closed", map[string]string{ActorHeader: "u1"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimiter_PerActor(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	r := ginext.New("test")
	r.Use(Actor(), rl.Middleware())
	r.POST("/scan", func(c *ginext.Context) {
		c.Status(http.StatusOK)
	})

	alice := map[string]string{ActorHeader: "alice"}
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/scan", alice).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/scan", alice).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/scan", alice).Code)

	bob := map[string]string{ActorHeader: "bob"}
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/scan", bob).Code)
}

func TestRateLimiter_SweepDropsIdle(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Allow("a")

	rl.sweep(time.Now().Add(-time.Minute))
	assert.Len(t, rl.limiters, 1)

	rl.sweep(time.Now().Add(time.Minute))
	assert.Empty(t, rl.limiters)
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), Recovery(newTestLogger(t)))
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})

	w := serve(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}
