package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if ok, _ := rl.allow("1.2.3.4 /import"); !ok {
			t.Fatalf("request %d rejected, want allowed", i+1)
		}
	}

	ok, retry := rl.allow("1.2.3.4 /import")
	if ok {
		t.Fatal("third request allowed, want rejected")
	}
	if retry != time.Minute {
		t.Errorf("retry after = %s, want 1m", retry)
	}

	if ok, _ := rl.allow("5.6.7.8 /import"); !ok {
		t.Error("other client rejected")
	}

	now = now.Add(time.Minute)
	if ok, _ := rl.allow("1.2.3.4 /import"); !ok {
		t.Error("request after window reset rejected")
	}
}

func TestRateLimiter_CleanupAndReset(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.allow("a")
	now = now.Add(2 * time.Second)
	rl.allow("b")
	rl.Cleanup()

	if len(rl.windows) != 1 {
		t.Errorf("windows after cleanup = %d, want 1", len(rl.windows))
	}

	rl.Reset()
	if len(rl.windows) != 0 {
		t.Errorf("windows after reset = %d, want 0", len(rl.windows))
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		env        string
		wantStatus int
	}{
		{name: "enforced", env: "development", wantStatus: http.StatusTooManyRequests},
		{name: "skipped in test environment", env: "test", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV", tt.env)
			t.Setenv("E2E_MODE", "")

			router := gin.New()
			router.POST("/import", NewRateLimiter(1, time.Minute).Middleware(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			var last *httptest.ResponseRecorder
			for i := 0; i < 2; i++ {
				last = httptest.NewRecorder()
				router.ServeHTTP(last, httptest.NewRequest(http.MethodPost, "/import", nil))
			}

			if last.Code != tt.wantStatus {
				t.Errorf("second request status = %d, want %d", last.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusTooManyRequests && last.Header().Get("Retry-After") == "" {
				t.Error("Retry-After header missing")
			}
		})
	}
}
