package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	app_errors "sentsei/internal/errors"
	"sentsei/internal/i18n"
	"sentsei/internal/store"
	"sentsei/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := i18n.Init(); err != nil {
		panic("failed to initialize i18n for tests: " + err.Error())
	}
}

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestLogger(t *testing.T) {
	router := newTestRouter(Logger(types.LogConfig{Level: "info"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping?key=secret", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		config         types.CORSConfig
		origin         string
		method         string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name: "disabled passes through",
			config: types.CORSConfig{
				Enabled: false,
			},
			origin:         "https://example.com",
			method:         "GET",
			expectedStatus: http.StatusOK,
			expectedOrigin: "",
		},
		{
			name: "wildcard origin",
			config: types.CORSConfig{
				Enabled:        true,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST"},
				AllowedHeaders: []string{"Content-Type"},
			},
			origin:         "https://example.com",
			method:         "GET",
			expectedStatus: http.StatusOK,
			expectedOrigin: "*",
		},
		{
			name: "explicit origin allowed",
			config: types.CORSConfig{
				Enabled:        true,
				AllowedOrigins: []string{"https://example.com"},
				AllowedMethods: []string{"GET"},
				AllowedHeaders: []string{"Content-Type"},
			},
			origin:         "https://example.com",
			method:         "GET",
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://example.com",
		},
		{
			name: "origin not allowed",
			config: types.CORSConfig{
				Enabled:        true,
				AllowedOrigins: []string{"https://example.com"},
				AllowedMethods: []string{"GET"},
				AllowedHeaders: []string{"Content-Type"},
			},
			origin:         "https://evil.com",
			method:         "GET",
			expectedStatus: http.StatusOK,
			expectedOrigin: "",
		},
		{
			name: "preflight request",
			config: types.CORSConfig{
				Enabled:        true,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST"},
				AllowedHeaders: []string{"Content-Type"},
			},
			origin:         "https://example.com",
			method:         "OPTIONS",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(CORS(tt.config))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestAuth(t *testing.T) {
	authConfig := types.AuthConfig{Key: "test-password"}

	t.Run("no password configured skips auth", func(t *testing.T) {
		router := newTestRouter(Auth(types.AuthConfig{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		router := newTestRouter(Auth(authConfig))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		router := newTestRouter(Auth(authConfig))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-App-Password", "wrong")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("X-App-Password header accepted", func(t *testing.T) {
		router := newTestRouter(Auth(authConfig))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-App-Password", "test-password")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bearer token accepted", func(t *testing.T) {
		router := newTestRouter(Auth(authConfig))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("Authorization", "Bearer test-password")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bcrypt hashed key accepted", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)
		require.NoError(t, err)
		router := newTestRouter(Auth(types.AuthConfig{Key: string(hash)}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-App-Password", "test-password")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("query key accepted and stripped", func(t *testing.T) {
		var sawQuery string
		router := gin.New()
		router.Use(Auth(authConfig))
		router.GET("/ping", func(c *gin.Context) {
			sawQuery = c.Request.URL.RawQuery
			c.String(http.StatusOK, "pong")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping?key=test-password&foo=bar", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, sawQuery, "test-password")
		assert.Contains(t, sawQuery, "foo=bar")
	})

	t.Run("health endpoint bypasses auth", func(t *testing.T) {
		router := newTestRouter(Auth(authConfig))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	memStore := store.NewMemoryStore()
	defer memStore.Close()

	config := types.RateLimitConfig{Requests: 3, WindowSeconds: 60}
	router := newTestRouter(RateLimiter(config, memStore))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
	}

	// Fourth request within the window is rejected
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// A different client IP has its own window
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterDisabled(t *testing.T) {
	memStore := store.NewMemoryStore()
	defer memStore.Close()

	router := newTestRouter(RateLimiter(types.RateLimitConfig{Requests: 0}, memStore))

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestErrorHandler(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		router := gin.New()
		router.Use(ErrorHandler())
		router.GET("/fail", func(c *gin.Context) {
			c.Error(app_errors.ErrResourceNotFound)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/fail", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("generic error", func(t *testing.T) {
		router := gin.New()
		router.Use(ErrorHandler())
		router.GET("/fail", func(c *gin.Context) {
			c.Error(assert.AnError)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/fail", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/panic", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSecurityHeaders(t *testing.T) {
	router := newTestRouter(SecurityHeaders())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Referrer-Policy"))
}

func TestRequestBodySizeLimit(t *testing.T) {
	router := gin.New()
	router.Use(RequestBodySizeLimit(64))
	router.POST("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	t.Run("small body allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/echo", strings.NewReader("small"))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/echo", strings.NewReader(strings.Repeat("a", 128)))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestStaticCache(t *testing.T) {
	router := gin.New()
	router.Use(StaticCache())
	router.GET("/assets/app.js", func(c *gin.Context) {
		c.String(http.StatusOK, "js")
	})
	router.GET("/api/data", func(c *gin.Context) {
		c.String(http.StatusOK, "data")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/assets/app.js", nil)
	router.ServeHTTP(w, req)
	assert.Contains(t, w.Header().Get("Cache-Control"), "max-age")

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/data", nil)
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Cache-Control"))
}
