package daemon

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thand-io/console/internal/models"
)

func TestMatchOrigin(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		pattern  string
		expected bool
	}{
		{"exact match", "https://console.example.com", "https://console.example.com", true},
		{"wildcard subdomain", "https://tenant.console.example.com", "https://*.console.example.com", true},
		{"wildcard with hyphens", "https://my-tenant.console.example.com", "https://*.console.example.com", true},
		{"wildcard with port", "https://tenant.console.example.com:9443", "https://*.console.example.com:9443", true},
		{"nested subdomain", "https://a.b.console.example.com", "https://*.console.example.com", true},
		{"different domain", "https://tenant.evil.com", "https://*.console.example.com", false},
		{"different suffix", "https://tenant.console.example.org", "https://*.console.example.com", false},
		{"missing subdomain", "https://console.example.com", "https://*.console.example.com", false},
		{"pattern without dot", "https://evilexample.com", "https://*example.com", false},
		{"scheme mismatch", "http://tenant.console.example.com", "https://*.console.example.com", false},
		{"empty origin", "", "https://*.console.example.com", false},
		{"allow all", "https://anything.example.net", "*", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchOrigin(tt.origin, tt.pattern))
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name                string
		origin              string
		method              string
		allowedOrigins      []string
		expectedAllowOrigin string
		expectedStatus      int
	}{
		{
			name:                "wildcard match",
			origin:              "https://tenant.console.example.com",
			method:              http.MethodGet,
			allowedOrigins:      []string{"https://*.console.example.com"},
			expectedAllowOrigin: "https://tenant.console.example.com",
			expectedStatus:      http.StatusOK,
		},
		{
			name:                "exact match",
			origin:              "http://localhost:3000",
			method:              http.MethodGet,
			allowedOrigins:      []string{"http://localhost:3000"},
			expectedAllowOrigin: "http://localhost:3000",
			expectedStatus:      http.StatusOK,
		},
		{
			name:           "unknown origin is rejected",
			origin:         "https://evil.com",
			method:         http.MethodGet,
			allowedOrigins: []string{"https://*.console.example.com"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:                "preflight",
			origin:              "https://tenant.console.example.com",
			method:              http.MethodOptions,
			allowedOrigins:      []string{"https://*.console.example.com"},
			expectedAllowOrigin: "https://tenant.console.example.com",
			expectedStatus:      http.StatusNoContent,
		},
		{
			name:           "preflight from unknown origin",
			origin:         "https://evil.com",
			method:         http.MethodOptions,
			allowedOrigins: []string{"https://*.console.example.com"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "no origin header",
			method:         http.MethodGet,
			allowedOrigins: []string{"https://*.console.example.com"},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(corsMiddleware(models.CORSConfig{
				AllowedOrigins:   tt.allowedOrigins,
				AllowCredentials: true,
			}))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "OK")
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedAllowOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if len(tt.expectedAllowOrigin) > 0 {
				assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}

func TestEditorCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(sessions.Sessions(ConsoleCookieName, getSessionStore("test-secret", false)))
	router.POST("/remember/:id", func(c *gin.Context) {
		rememberEditor(c, c.Param("id"))
		c.Status(http.StatusNoContent)
	})
	router.DELETE("/forget/:id", func(c *gin.Context) {
		forgetEditor(c, c.Param("id"))
		c.Status(http.StatusNoContent)
	})
	router.GET("/current", func(c *gin.Context) {
		id, ok := currentEditor(c)
		if !ok {
			c.Status(http.StatusNotFound)
			return
		}
		c.String(http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/remember/abc", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	get := func(path, method string, cookies []*http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w = get("/current", http.MethodGet, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", w.Body.String())

	// Forgetting another editor keeps the current one
	w = get("/forget/other", http.MethodDelete, cookies)
	assert.Empty(t, w.Result().Cookies())

	w = get("/forget/abc", http.MethodDelete, cookies)
	cleared := w.Result().Cookies()
	require.NotEmpty(t, cleared)

	w = get("/current", http.MethodGet, cleared)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionKeys(t *testing.T) {
	authKey, encryptionKey, err := sessionKeys("test-secret")
	require.NoError(t, err)
	assert.Len(t, authKey, 64)
	assert.Len(t, encryptionKey, 32)
	assert.NotEqual(t, authKey[:32], encryptionKey)

	again, _, err := sessionKeys("test-secret")
	require.NoError(t, err)
	assert.Equal(t, authKey, again)

	other, _, err := sessionKeys("other-secret")
	require.NoError(t, err)
	assert.NotEqual(t, authKey, other)
}
