package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers = append(handlers, func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/", handlers...)
	return router
}

func TestOnlyAllowLocal(t *testing.T) {
	tests := []struct {
		remote string
		want   int
	}{
		{"127.0.0.1:50000", http.StatusOK},
		{"[::1]:50000", http.StatusOK},
		{"192.168.1.20:50000", http.StatusForbidden},
	}
	router := newRouter(OnlyAllowLocal)
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tt.remote
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.remote, w.Code, tt.want)
		}
	}
}

func TestRateLimit(t *testing.T) {
	router := newRouter(RateLimit(0.001, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("burst requests = %v, want 200s", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want %d", codes[2], http.StatusTooManyRequests)
	}
}

func TestIsLocalOrigin(t *testing.T) {
	tests := map[string]bool{
		"":                          true,
		"http://localhost:3000":     true,
		"http://127.0.0.1:53318":    true,
		"http://[::1]:8080":         true,
		"https://evil.example":      false,
		"http://localhost.evil.com": false,
		"null":                      false,
		"file://":                   false,
	}
	for origin, want := range tests {
		if got := IsLocalOrigin(origin); got != want {
			t.Errorf("IsLocalOrigin(%q) = %v, want %v", origin, got, want)
		}
	}
}

func TestOnlyAllowLocalOrigin(t *testing.T) {
	router := newRouter(OnlyAllowLocalOrigin)
	tests := []struct {
		origin string
		want   int
	}{
		{"", http.StatusOK},
		{"http://localhost:5173", http.StatusOK},
		{"https://evil.example", http.StatusForbidden},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("origin %q: status = %d, want %d", tt.origin, w.Code, tt.want)
		}
	}
}

func TestRequireJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", RequireJSON, func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		contentType string
		want        int
	}{
		{"application/json", http.StatusOK},
		{"application/json; charset=utf-8", http.StatusOK},
		{"text/plain", http.StatusUnsupportedMediaType},
		{"multipart/form-data; boundary=x", http.StatusUnsupportedMediaType},
		{"", http.StatusUnsupportedMediaType},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		if tt.contentType != "" {
			req.Header.Set("Content-Type", tt.contentType)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%q: status = %d, want %d", tt.contentType, w.Code, tt.want)
		}
	}
}
