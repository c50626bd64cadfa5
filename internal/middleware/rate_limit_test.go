package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"rima-workspace/internal/middleware"
	"rima-workspace/pkg/log"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := middleware.New(log.NewNoop(), 1, 2)

	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	// Burst of 2 passes, the third is throttled.
	if code := do(); code != http.StatusOK {
		t.Errorf("first request = %d, want 200", code)
	}
	if code := do(); code != http.StatusOK {
		t.Errorf("second request = %d, want 200", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", code)
	}

	t.Run("Separate Clients Separate Buckets", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("fresh client = %d, want 200", w.Code)
		}
	})
}
