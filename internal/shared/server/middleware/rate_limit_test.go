package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitUploadGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })

	groupFor := func(c *gin.Context) string {
		if c.Request.Method == http.MethodPost && c.FullPath() == "/upload" {
			return "UPLOAD"
		}
		return ""
	}

	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		GroupFor: groupFor,
		Limiter:  limiter,
		Rules: map[string]RateLimitRule{
			"UPLOAD": {Rate: 1, Burst: 2},
		},
	}))
	r.POST("/upload", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/api/text/1", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Burst allows two uploads, the third is rejected.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/upload", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("upload %d: expected 200, got %d", i+1, resp.Code)
		}
	}
	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if resp.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}

	// Routes without a matching rule are never limited.
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/text/1", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("read %d: expected 200, got %d", i+1, resp.Code)
		}
	}
}

func TestRateLimiterRefills(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if allowed, _ := limiter.Allow("ip|UPLOAD", rule); !allowed {
		t.Fatal("first request should pass")
	}
	if allowed, retryAfter := limiter.Allow("ip|UPLOAD", rule); allowed || retryAfter <= 0 {
		t.Fatalf("second request should be limited with retry hint, got allowed=%v retry=%v", allowed, retryAfter)
	}

	now = now.Add(2 * time.Second)
	if allowed, _ := limiter.Allow("ip|UPLOAD", rule); !allowed {
		t.Fatal("request after refill should pass")
	}
}
