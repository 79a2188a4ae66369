package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, window), server
}

func performRequest(limiter *RateLimiter) int {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	router.ServeHTTP(recorder, req)
	return recorder.Code
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows requests under the limit", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 3, time.Minute)

		for i := 0; i < 3; i++ {
			if code := performRequest(limiter); code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, code)
			}
		}
	})

	t.Run("rejects requests over the limit", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 2, time.Minute)

		performRequest(limiter)
		performRequest(limiter)
		if code := performRequest(limiter); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 after the limit, got %d", code)
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		limiter, server := newTestLimiter(t, 1, time.Minute)

		performRequest(limiter)
		if code := performRequest(limiter); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 before expiry, got %d", code)
		}

		server.FastForward(2 * time.Minute)
		if code := performRequest(limiter); code != http.StatusOK {
			t.Fatalf("expected 200 after the window reset, got %d", code)
		}
	})
}
