package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avestaexchange/avesta/internal/shared/logger"
)

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":40000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newLimitedRouter(t *testing.T, client *redis.Client) *gin.Engine {
	t.Helper()
	l, err := NewLimiter("2-M", "login", client)
	require.NoError(t, err)

	r := gin.New()
	r.POST("/login", RateLimit(l, logger.NewNopLogger()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimit_MemoryStore(t *testing.T) {
	r := newLimitedRouter(t, nil)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1").Code)
	w := hit(r, "10.0.0.1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1").Code)

	// counters are per client
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2").Code)
}

func TestRateLimit_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	first := newLimitedRouter(t, client)
	second := newLimitedRouter(t, client)

	assert.Equal(t, http.StatusOK, hit(first, "10.0.0.9").Code)
	assert.Equal(t, http.StatusOK, hit(second, "10.0.0.9").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(first, "10.0.0.9").Code)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := NewLimiter("ten-per-minute", "public", nil)
	assert.Error(t, err)
}
